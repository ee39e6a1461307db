package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"doctrack/internal/http/middleware"
	"doctrack/internal/locale"
	"doctrack/internal/search"
	"doctrack/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func reportCriteria(c *fiber.Ctx) search.Criteria {
	return search.Criteria{
		Branch: branchQuery(c),
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}
}

// Dashboard godoc
// @Summary Status counts and the most recent documents
// @Tags reports
// @Produce json
// @Success 200 {object} service.Dashboard
// @Router /api/v1/dashboard [get]
func Dashboard(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Dashboard(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(d)
	}
}

// Report godoc
// @Summary Filtered report with per-branch counts
// @Tags reports
// @Produce json
// @Param branch query string false "Branch or ALL"
// @Param type query string false "Document type or ALL"
// @Param status query string false "Status, ACTIVE or ALL"
// @Param q query string false "Free text"
// @Success 200 {object} service.Report
// @Router /api/v1/reports [get]
func Report(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.Report(c.UserContext(), reportCriteria(c))
		if err != nil {
			return err
		}
		return c.JSON(r)
	}
}

// ExportReport godoc
// @Summary Download the filtered report as an Excel workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param branch query string false "Branch or ALL"
// @Param type query string false "Document type or ALL"
// @Param status query string false "Status, ACTIVE or ALL"
// @Param q query string false "Free text"
// @Param lang query string false "Sheet name language" Enums(dr, ps, fa)
// @Success 200 {file} file
// @Router /api/v1/reports/export [get]
func ExportReport(svc service.ReportService, def locale.Locale) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := svc.Export(c.UserContext(), reportCriteria(c), middleware.LocaleFrom(c, def), &buf); err != nil {
			return err
		}
		name := fmt.Sprintf("report-%s.xlsx", time.Now().Format("20060102"))
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
		return c.Send(buf.Bytes())
	}
}
