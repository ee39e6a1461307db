// Package search holds the read-side predicates applied to a store snapshot.
// Every function is pure: results keep the snapshot order and never share
// backing arrays with the input.
package search

import (
	"errors"
	"strings"

	"doctrack/internal/model"
)

// Wildcards accepted by the type, status and stage selectors.
const (
	All    = "ALL"
	Active = "ACTIVE"
)

// ErrNoMatch is returned by Lookup when nothing matches.
var ErrNoMatch = errors.New("no matching document")

// Criteria is the compound filter used by the branch and report views.
// Empty selectors behave like All.
type Criteria struct {
	Branch model.Branch
	Type   string
	Status string
	Query  string
}

// ProcurementCriteria filters the procurement queue.
type ProcurementCriteria struct {
	Status string
	Stage  string
	Query  string
}

// ByBranch keeps documents owned by b.
func ByBranch(docs []model.Document, b model.Branch) []model.Document {
	return keep(docs, func(d *model.Document) bool { return d.Branch == b })
}

// Filter applies branch, type, status and free-text predicates in that order.
func Filter(docs []model.Document, c Criteria) []model.Document {
	q := normalize(c.Query)
	return keep(docs, func(d *model.Document) bool {
		if c.Branch != "" && c.Branch != All && d.Branch != c.Branch {
			return false
		}
		if !matchType(d.Type, c.Type) || !MatchStatus(d.Status, c.Status) {
			return false
		}
		return q == "" || contains(d.Title, q) || contains(d.Description, q) || contains(d.DocNumber, q)
	})
}

// ControlQueue lists documents awaiting review. An empty status means Active.
func ControlQueue(docs []model.Document, status string) []model.Document {
	if strings.TrimSpace(status) == "" {
		status = Active
	}
	return keep(docs, func(d *model.Document) bool { return MatchStatus(d.Status, status) })
}

// ProcurementQueue lists proposals and anything owned by the procurement branch.
func ProcurementQueue(docs []model.Document, c ProcurementCriteria) []model.Document {
	q := normalize(c.Query)
	return keep(docs, func(d *model.Document) bool {
		if d.Type != model.DocTypeProposal && d.Branch != model.BranchProcurement {
			return false
		}
		if !MatchStatus(d.Status, c.Status) || !matchStage(d, c.Stage) {
			return false
		}
		return q == "" || contains(d.Title, q) || contains(d.DocNumber, q) ||
			contains(model.ContractorName(d.Details), q)
	})
}

// Lookup returns the first document whose number or title contains query,
// or whose id equals it.
func Lookup(docs []model.Document, query string) (model.Document, error) {
	q := normalize(query)
	if q == "" {
		return model.Document{}, ErrNoMatch
	}
	for i := range docs {
		d := &docs[i]
		if contains(d.DocNumber, q) || contains(d.Title, q) || d.ID == strings.TrimSpace(query) {
			return d.Clone(), nil
		}
	}
	return model.Document{}, ErrNoMatch
}

// MatchStatus reports whether s satisfies the selector. All and empty match
// anything, Active matches pending and processing.
func MatchStatus(s model.DocStatus, selector string) bool {
	switch strings.ToUpper(strings.TrimSpace(selector)) {
	case "", All:
		return true
	case Active:
		return s.Active()
	default:
		return string(s) == strings.ToUpper(strings.TrimSpace(selector))
	}
}

func matchType(t model.DocType, selector string) bool {
	sel := strings.ToUpper(strings.TrimSpace(selector))
	return sel == "" || sel == All || string(t) == sel
}

func matchStage(d *model.Document, selector string) bool {
	sel := strings.TrimSpace(selector)
	if sel == "" || strings.EqualFold(sel, All) {
		return true
	}
	p, ok := d.Details.(model.ProposalDetails)
	if !ok {
		return false
	}
	switch model.ProcurementStage(sel) {
	case model.StageQuoted:
		return p.IsQuoted
	case model.StageContracted:
		return p.IsContracted
	case model.StageInvoiceApproved:
		return p.IsInvoiceApproved
	default:
		return p.Stage() == model.ProcurementStage(sel)
	}
}

func keep(docs []model.Document, pred func(*model.Document) bool) []model.Document {
	out := make([]model.Document, 0, len(docs))
	for i := range docs {
		if pred(&docs[i]) {
			out = append(out, docs[i].Clone())
		}
	}
	return out
}

func normalize(q string) string { return strings.ToLower(strings.TrimSpace(q)) }

func contains(field, q string) bool { return strings.Contains(strings.ToLower(field), q) }
