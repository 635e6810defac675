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

// CompanyController handles company profile endpoints.
type CompanyController struct {
	companies *services.CompanyService
	logger    *zap.Logger
}

// NewCompanyController creates a new company controller.
func NewCompanyController(companies *services.CompanyService, logger *zap.Logger) *CompanyController {
	return &CompanyController{companies: companies, logger: logger}
}

// RegisterRoutes registers company routes.
func (cc *CompanyController) RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	{
		companies.GET("", cc.ListCompanies)
		companies.POST("", cc.CreateCompany)
		companies.GET("/:companyId", cc.GetCompany)
		companies.PUT("/:companyId", cc.UpdateCompany)
	}
}

// ListCompanies returns every company in the directory.
func (cc *CompanyController) ListCompanies(c *gin.Context) {
	companies, err := cc.companies.List(c.Request.Context())
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	response := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		response = append(response, dto.NewCompanyResponse(&companies[i]))
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// GetCompany returns a single company profile.
func (cc *CompanyController) GetCompany(c *gin.Context) {
	company, err := cc.companies.Get(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dto.NewCompanyResponse(company)})
}

// CreateCompany registers the caller's company profile.
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, cc.logger, utils.TranslateBindingError(err))
		return
	}

	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		TaxID:       req.TaxID,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
	}
	created, err := cc.companies.Create(c.Request.Context(), userID, company)
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": dto.NewCompanyResponse(created)})
}

// UpdateCompany patches the caller's company profile.
func (cc *CompanyController) UpdateCompany(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, cc.logger, utils.TranslateBindingError(err))
		return
	}

	company, err := cc.companies.Update(c.Request.Context(), userID, c.Param("companyId"), req.Patch())
	if err != nil {
		respondError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dto.NewCompanyResponse(company)})
}
