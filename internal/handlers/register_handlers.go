package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	api := r.Group("/api")

	registerProductRoutes(api, services.Product)
	registerMasterAccountRoutes(api, services.MasterAccount)
	registerSubscriptionRoutes(api, services.Subscription)
	registerRevenueRoutes(api, services.Revenue)
	registerExpenseRoutes(api, services.Expense)
	registerInvoiceRoutes(api, services.Invoice)
	registerNotificationRoutes(api, services.Notification)
	registerReportingRoutes(api, services.Reporting)
	registerAssistantRoutes(api, services.Assistant)
}
