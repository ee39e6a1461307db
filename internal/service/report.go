package service

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"doctrack/internal/locale"
	"doctrack/internal/model"
	"doctrack/internal/repository"
	"doctrack/internal/search"
)

// RecentLimit is how many documents the dashboard lists.
const RecentLimit = 5

// ReportBranches are the branches broken out in report statistics.
var ReportBranches = []model.Branch{
	model.BranchAdmin,
	model.BranchProcurement,
	model.BranchFinance,
	model.BranchControl,
	model.BranchAssets,
}

// StatusCounts summarizes a set of documents by status.
type StatusCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Dashboard is the landing page summary.
type Dashboard struct {
	Counts StatusCounts     `json:"counts"`
	Recent []model.Document `json:"recent"`
}

// BranchCount is the number of documents owned by a branch.
type BranchCount struct {
	Branch model.Branch `json:"branch"`
	Count  int          `json:"count"`
}

// Report is the filtered report view. Counts cover the filtered rows,
// ByBranch covers the whole store.
type Report struct {
	Counts      StatusCounts     `json:"counts"`
	ByBranch    []BranchCount    `json:"byBranch"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	Documents   []model.Document `json:"documents"`
}

// ReportService aggregates documents for the dashboard and reports views.
type ReportService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Report(ctx context.Context, c search.Criteria) (*Report, error)
	// Export writes the filtered report as an Excel workbook with sheet names in locale l.
	Export(ctx context.Context, c search.Criteria, l locale.Locale, w io.Writer) error
}

type reportService struct {
	repo repository.DocumentRepository
	tr   *locale.Translator
}

func NewReportService(repo repository.DocumentRepository, tr *locale.Translator) ReportService {
	return &reportService{repo: repo, tr: tr}
}

func (s *reportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	recent := docs
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	return &Dashboard{Counts: countStatuses(docs), Recent: recent}, nil
}

func (s *reportService) Report(ctx context.Context, c search.Criteria) (*Report, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	rows := search.Filter(docs, c)

	byBranch := make([]BranchCount, 0, len(ReportBranches))
	for _, b := range ReportBranches {
		byBranch = append(byBranch, BranchCount{Branch: b, Count: len(search.ByBranch(docs, b))})
	}

	total := decimal.Zero
	for i := range rows {
		if amt := Amount(rows[i].Details); amt != nil {
			total = total.Add(*amt)
		}
	}

	return &Report{
		Counts:      countStatuses(rows),
		ByBranch:    byBranch,
		TotalAmount: total,
		Documents:   rows,
	}, nil
}

var exportHeader = []any{
	"Doc Number", "Type", "Branch", "Title", "Sender", "Receiver", "Date", "Status", "Priority", "Contractor", "Amount",
}

func (s *reportService) Export(ctx context.Context, c search.Criteria, l locale.Locale, w io.Writer) error {
	ctx, span := tracer.Start(ctx, "ReportService.Export")
	defer span.End()

	rep, err := s.Report(ctx, c)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	docsSheet := s.tr.T(l, locale.ReportSheetDocuments, nil)
	summarySheet := s.tr.T(l, locale.ReportSheetSummary, nil)
	if err := f.SetSheetName("Sheet1", docsSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(docsSheet, "A1", &exportHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(docsSheet, "A1", "K1", bold); err != nil {
		return err
	}
	for i, d := range rep.Documents {
		amount := ""
		if amt := Amount(d.Details); amt != nil {
			amount = amt.StringFixed(2)
		}
		row := []any{
			d.DocNumber, string(d.Type), string(d.Branch), d.Title, d.Sender, d.Receiver, d.Date,
			string(d.Status), string(d.Priority), model.ContractorName(d.Details), amount,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(docsSheet, cell, &row); err != nil {
			return err
		}
	}

	summary := [][]any{
		{"Total", rep.Counts.Total},
		{"Pending", rep.Counts.Pending},
		{"Approved", rep.Counts.Approved},
		{"Rejected", rep.Counts.Rejected},
		{"Total Amount", rep.TotalAmount.StringFixed(2)},
		{},
	}
	for _, bc := range rep.ByBranch {
		summary = append(summary, []any{string(bc.Branch), bc.Count})
	}
	for i := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &summary[i]); err != nil {
			return err
		}
	}

	// All supported locales are written right to left.
	rtl := true
	for _, sh := range []string{docsSheet, summarySheet} {
		if err := f.SetSheetView(sh, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func countStatuses(docs []model.Document) StatusCounts {
	c := StatusCounts{Total: len(docs)}
	for i := range docs {
		switch docs[i].Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusApproved:
			c.Approved++
		case model.StatusRejected:
			c.Rejected++
		}
	}
	return c
}

// Amount is the monetary value carried by a document's details: the gross amount
// when known, otherwise the estimate.
func Amount(d model.Details) *decimal.Decimal {
	switch v := d.(type) {
	case model.ProposalDetails:
		if v.GrossAmount != nil {
			return v.GrossAmount
		}
		return v.EstimatedCost
	case model.InvoiceDetails:
		return v.GrossAmount
	case model.LetterDetails:
		return v.EstimatedCost
	}
	return nil
}
