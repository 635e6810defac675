package v1

import (
	"net/http"

	"github.com/firmdir-simple/dto"
	"github.com/firmdir-simple/models"
	"github.com/firmdir-simple/services"
	"github.com/firmdir-simple/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobOfferController handles job opening endpoints.
type JobOfferController struct {
	offers *services.JobOfferService
	logger *zap.Logger
}

// NewJobOfferController creates a new job offer controller.
func NewJobOfferController(offers *services.JobOfferService, logger *zap.Logger) *JobOfferController {
	return &JobOfferController{offers: offers, logger: logger}
}

// RegisterRoutes registers job offer routes.
func (jc *JobOfferController) RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	{
		companies.GET("/:companyId/job-offers", jc.ListCompanyJobOffers)
		companies.POST("/:companyId/job-offers", jc.CreateJobOffer)
	}
	offers := router.Group("/job-offers")
	{
		offers.GET("/:id", jc.GetJobOffer)
		offers.PUT("/:id", jc.UpdateJobOffer)
		offers.DELETE("/:id", jc.DeleteJobOffer)
	}
}

// ListCompanyJobOffers returns a company's job openings.
func (jc *JobOfferController) ListCompanyJobOffers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	offers, err := jc.offers.ListByCompany(c.Request.Context(), userID, c.Param("companyId"))
	if err != nil {
		respondError(c, jc.logger, err)
		return
	}

	response := make([]dto.JobOfferResponse, 0, len(offers))
	for i := range offers {
		response = append(response, dto.NewJobOfferResponse(&offers[i]))
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// GetJobOffer returns a single job opening.
func (jc *JobOfferController) GetJobOffer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	offer, err := jc.offers.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, jc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dto.NewJobOfferResponse(offer)})
}

// CreateJobOffer publishes a job opening under the caller's company.
func (jc *JobOfferController) CreateJobOffer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, jc.logger, utils.TranslateBindingError(err))
		return
	}

	offer := &models.JobOffer{
		Title:          req.Title,
		Description:    req.Description,
		EmploymentType: models.EmploymentType(req.EmploymentType),
		SalaryRange:    req.SalaryRange,
		Requirements:   req.Requirements,
		ContactEmail:   req.ContactEmail,
		ContactLink:    req.ContactLink,
	}
	created, err := jc.offers.Create(c.Request.Context(), userID, c.Param("companyId"), offer)
	if err != nil {
		respondError(c, jc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": dto.NewJobOfferResponse(created)})
}

// UpdateJobOffer patches a job opening.
func (jc *JobOfferController) UpdateJobOffer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, jc.logger, utils.TranslateBindingError(err))
		return
	}

	offer, err := jc.offers.Update(c.Request.Context(), userID, c.Param("id"), req.Patch())
	if err != nil {
		respondError(c, jc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dto.NewJobOfferResponse(offer)})
}

// DeleteJobOffer removes a job opening.
func (jc *JobOfferController) DeleteJobOffer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := jc.offers.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, jc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Job offer deleted successfully"})
}
