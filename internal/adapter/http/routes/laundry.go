package routes

import (
	"github.com/gin-gonic/gin"

	"laundry_dispatch/internal/adapter/http/handlers"
)

const (
	PathDispatch = "/dispatch"
	PathDayRuns  = "/day-runs"
	PathBatches  = "/batches"
	PathWorkflow = "/workflow"
	PathInvoices = "/invoices"
	PathPayments = "/payments"
	PathPing     = "/ping"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Dispatch *handlers.DispatchHandler
	DayRun   *handlers.DayRunHandler
	Batch    *handlers.BatchHandler
	Workflow *handlers.WorkflowHandler
	Invoice  *handlers.InvoiceHandler
	Payment  *handlers.InvoicePaymentHandler
}

func addLaundryRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathDispatch+"/:stage", h.Dispatch.Dispatch)

	dayRuns := rg.Group(PathDayRuns)
	{
		dayRuns.POST("", h.DayRun.RunDay)
		dayRuns.GET("/:date/batches", h.DayRun.ListBatches)
		dayRuns.GET("/:date/invoices", h.Invoice.ListInvoices)
	}

	batches := rg.Group(PathBatches)
	{
		batches.GET("/:id", h.Batch.GetBatch)
		batches.PATCH("/:id/start", h.Batch.StartBatch)
		batches.PATCH("/:id/finish", h.Batch.FinishBatch)
	}

	workflow := rg.Group(PathWorkflow)
	{
		workflow.GET("/:order_id", h.Workflow.GetWorkflow)
		workflow.POST("/:order_id/advance", h.Workflow.AdvanceWorkflow)
		workflow.POST("/:order_id/cancel", h.Workflow.CancelWorkflow)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:order_id", h.Invoice.GetInvoice)
		invoices.PATCH("/:order_id/cancel", h.Invoice.CancelInvoice)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:invoice_id", h.Payment.CreatePaymentByInvoiceID)
		payments.GET("/:invoice_id", h.Payment.GetPaymentByInvoiceID)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
