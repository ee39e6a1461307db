package handler

import (
	"github.com/gofiber/fiber/v2"

	"doctrack/internal/access"
	"doctrack/internal/http/middleware"
	"doctrack/internal/locale"
	"doctrack/internal/service"
)

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	Documents     service.DocumentService
	Search        service.SearchService
	Reports       service.ReportService
	Attachments   service.AttachmentService
	Notifications service.NotificationService
	Policy        *access.Policy
	Locale        locale.Locale
	// Health checks run by /health. Nil entries are skipped.
	Health []Pinger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers translate requests into service calls; errors go to ErrorHandler.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/health", HealthCheck(d.Health...))
	app.Get("/healthz", Liveness())

	api := app.Group("/api/v1", middleware.Session())

	api.Get("/me/views", MyViews(d.Policy))
	api.Get("/dashboard", middleware.RequireView(d.Policy, access.ViewDashboard), Dashboard(d.Reports))

	branch := api.Group("/branches/:branch", middleware.RequireBranchView(d.Policy, "branch"))
	branch.Get("/documents", ListBranchDocuments(d.Documents))
	branch.Post("/documents", RegisterDocument(d.Documents))

	api.Get("/procurement/documents", middleware.RequireView(d.Policy, access.ViewProcurement), ProcurementQueue(d.Documents))

	control := middleware.RequireView(d.Policy, access.ViewControl)
	api.Get("/control/queue", control, ControlQueue(d.Documents))
	api.Post("/documents/:id/approve", control, ApproveDocument(d.Documents))
	api.Post("/documents/:id/reject", control, RejectDocument(d.Documents))

	api.Get("/documents/:id", GetDocument(d.Documents))
	api.Post("/documents/:id/attachments", UploadAttachment(d.Attachments))
	api.Get("/documents/:id/attachments/:attachmentID/link", AttachmentLink(d.Attachments))

	api.Get("/search", SearchDocument(d.Search))
	api.Get("/search/recent", RecentSearches(d.Search))
	api.Delete("/search/recent", ClearRecentSearches(d.Search))

	api.Get("/notifications", ListNotifications(d.Notifications))
	api.Delete("/notifications", ClearNotifications(d.Notifications))

	reports := middleware.RequireView(d.Policy, access.ViewReports)
	api.Get("/reports", reports, Report(d.Reports))
	api.Get("/reports/export", reports, ExportReport(d.Reports, d.Locale))
}
