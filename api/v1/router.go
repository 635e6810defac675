package v1

import (
	"github.com/gin-gonic/gin"
)

// Controllers bundles the entity controllers for route registration.
type Controllers struct {
	Auth      *AuthController
	Companies *CompanyController
	Services  *ServiceController
	JobOffers *JobOfferController
}

// RegisterRoutes registers all API routes. Every route in the group runs
// behind authMiddleware; the unauthenticated health endpoint lives outside
// this group.
func RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc, ctrl Controllers) {
	router.Use(authMiddleware)

	ctrl.Auth.RegisterRoutes(router)
	ctrl.Companies.RegisterRoutes(router)
	ctrl.Services.RegisterRoutes(router)
	ctrl.JobOffers.RegisterRoutes(router)
}
