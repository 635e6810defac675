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

// ServiceController handles service offering and image attachment endpoints.
type ServiceController struct {
	catalog *services.CatalogService
	logger  *zap.Logger
}

// NewServiceController creates a new service controller.
func NewServiceController(catalog *services.CatalogService, logger *zap.Logger) *ServiceController {
	return &ServiceController{catalog: catalog, logger: logger}
}

// RegisterRoutes registers service and image routes.
func (sc *ServiceController) RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	{
		companies.GET("/:companyId/services", sc.ListCompanyServices)
		companies.POST("/:companyId/services", sc.CreateService)
	}
	svc := router.Group("/services")
	{
		svc.GET("/:id", sc.GetService)
		svc.PUT("/:id", sc.UpdateService)
		svc.DELETE("/:id", sc.DeleteService)
		svc.POST("/:id/images", sc.AttachImage)
	}
	images := router.Group("/service-images")
	{
		images.DELETE("/:id", sc.DetachImage)
	}
}

// ListCompanyServices returns a company's services with their image URLs
// denormalized into each item.
func (sc *ServiceController) ListCompanyServices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := sc.catalog.ListByCompany(c.Request.Context(), userID, c.Param("companyId"))
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	response := make([]dto.ServiceResponse, 0, len(items))
	for i := range items {
		response = append(response, dto.NewServiceResponse(&items[i].Service, items[i].Images))
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// GetService returns a single service with its images.
func (sc *ServiceController) GetService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	item, err := sc.catalog.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dto.NewServiceResponse(&item.Service, item.Images)})
}

// CreateService publishes a service under the caller's company.
func (sc *ServiceController) CreateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, sc.logger, utils.TranslateBindingError(err))
		return
	}

	service := &models.Service{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		WorkingHours: req.WorkingHours,
	}
	created, err := sc.catalog.Create(c.Request.Context(), userID, c.Param("companyId"), service)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": dto.NewServiceResponse(created, nil)})
}

// UpdateService patches a service.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, sc.logger, utils.TranslateBindingError(err))
		return
	}

	service, err := sc.catalog.Update(c.Request.Context(), userID, c.Param("id"), req.Patch())
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	images, err := sc.catalog.Get(c.Request.Context(), userID, service.ID)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dto.NewServiceResponse(&images.Service, images.Images)})
}

// DeleteService removes a service and all its images.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := sc.catalog.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Service deleted successfully"})
}

// AttachImage records a hosted image URL against a service.
func (sc *ServiceController) AttachImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AttachImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, sc.logger, utils.TranslateBindingError(err))
		return
	}

	image, err := sc.catalog.AttachImage(c.Request.Context(), userID, c.Param("id"), req.URL)
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": dto.NewServiceImageResponse(image)})
}

// DetachImage removes a single image attachment.
func (sc *ServiceController) DetachImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := sc.catalog.DetachImage(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, sc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Image deleted successfully"})
}
