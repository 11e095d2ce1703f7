package routes

import (
	"glassfleet/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRepairs  = "/repairs"
	PathBatches  = "/batches"
	PathInvoices = "/invoices"
)

func addRepairRoutes(rg *gin.RouterGroup, repairHandler *handlers.RepairHandler, lifecycleHandler *handlers.LifecycleHandler) {
	repairs := rg.Group(PathRepairs)
	{
		repairs.POST("", repairHandler.CreateRepair)
		repairs.GET("", lifecycleHandler.ListRepairs)
		repairs.GET("/:id", lifecycleHandler.GetRepair)

		// Lifecycle transitions; anything outside the transition table fails
		// with TRANSITION_ERROR and leaves the repair untouched.
		repairs.PATCH("/:id/resolve", lifecycleHandler.ResolveRepair)
		repairs.PATCH("/:id/assign", lifecycleHandler.AssignRepair)
		repairs.PATCH("/:id/start", lifecycleHandler.StartRepair)
		repairs.PATCH("/:id/complete", lifecycleHandler.CompleteRepair)
	}

	batches := rg.Group(PathBatches)
	{
		batches.POST("", repairHandler.CreateBatch)
		batches.GET("/:batch_id", lifecycleHandler.GetBatch)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/payments", invoiceHandler.PayInvoice)
	}
}
