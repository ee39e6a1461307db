package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocType is the kind of a tracked document.
type DocType string

const (
	DocTypeLetter   DocType = "MAKTOOB"
	DocTypeProposal DocType = "PISHNEHAD"
	DocTypeInquiry  DocType = "ESTELAM"
	DocTypeInvoice  DocType = "INVOICE"
	DocTypeM7       DocType = "M7"
	DocTypeM16      DocType = "M16"
)

// DocTypes lists every document type.
var DocTypes = []DocType{DocTypeLetter, DocTypeProposal, DocTypeInquiry, DocTypeInvoice, DocTypeM7, DocTypeM16}

// Valid reports whether t is a known document type.
func (t DocType) Valid() bool {
	for _, v := range DocTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DocStatus is a document's position in the review workflow.
type DocStatus string

const (
	StatusPending    DocStatus = "PENDING"
	StatusProcessing DocStatus = "PROCESSING"
	StatusApproved   DocStatus = "APPROVED"
	StatusRejected   DocStatus = "REJECTED"
	StatusArchived   DocStatus = "ARCHIVED"
)

// Statuses lists every status.
var Statuses = []DocStatus{StatusPending, StatusProcessing, StatusApproved, StatusRejected, StatusArchived}

// Valid reports whether s is a known status.
func (s DocStatus) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Active reports whether the document still awaits a control decision.
func (s DocStatus) Active() bool {
	return s == StatusPending || s == StatusProcessing
}

// Priority is the urgency attached at registration.
type Priority string

const (
	PriorityNormal   Priority = "NORMAL"
	PriorityUrgent   Priority = "URGENT"
	PriorityCritical Priority = "CRITICAL"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityNormal || p == PriorityUrgent || p == PriorityCritical
}

// RejectionReason is one entry of the control branch's rejection checklist.
type RejectionReason string

const (
	ReasonIncorrectQuotation RejectionReason = "incorrect quotation"
	ReasonDiscrepancy        RejectionReason = "discrepancy"
	ReasonExpiredLicense     RejectionReason = "expired license"
	ReasonSiteIssue          RejectionReason = "site issue"
	ReasonNonCompliance      RejectionReason = "non-compliance"
	ReasonProposalProblem    RejectionReason = "proposal problem"
)

// RejectionChecklist is the fixed set of reasons a reviewer can pick from.
var RejectionChecklist = []RejectionReason{
	ReasonIncorrectQuotation,
	ReasonDiscrepancy,
	ReasonExpiredLicense,
	ReasonSiteIssue,
	ReasonNonCompliance,
	ReasonProposalProblem,
}

// Valid reports whether r is on the checklist.
func (r RejectionReason) Valid() bool {
	for _, v := range RejectionChecklist {
		if v == r {
			return true
		}
	}
	return false
}

// HistoryEntry records one movement of a document between parties. Entries are never rewritten.
type HistoryEntry struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Actor     string    `json:"user,omitempty"`
}

// Attachment is metadata for a file kept in object storage.
type Attachment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MediaType string `json:"type"`
	Size      int64  `json:"size"`
	Locator   string `json:"url"`
}

// Document is the unit of work tracked by the system.
type Document struct {
	ID               string            `json:"id"`
	DocNumber        string            `json:"docNumber"`
	Type             DocType           `json:"type"`
	Branch           Branch            `json:"branch"`
	Title            string            `json:"title"`
	Sender           string            `json:"sender"`
	Receiver         string            `json:"receiver"`
	Date             string            `json:"date"`
	Status           DocStatus         `json:"status"`
	Priority         Priority          `json:"priority"`
	Summary          string            `json:"summary,omitempty"`
	Description      string            `json:"description"`
	ActionsTaken     string            `json:"actionsTaken"`
	Details          Details           `json:"details,omitempty"`
	RejectionReason  string            `json:"rejectionReason,omitempty"`
	RejectionReasons []RejectionReason `json:"rejectionReasons,omitempty"`
	Attachments      []Attachment      `json:"attachments"`
	History          []HistoryEntry    `json:"history"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (d Document) Clone() Document {
	out := d
	if d.RejectionReasons != nil {
		out.RejectionReasons = append([]RejectionReason(nil), d.RejectionReasons...)
	}
	out.Attachments = append(make([]Attachment, 0, len(d.Attachments)), d.Attachments...)
	out.History = append(make([]HistoryEntry, 0, len(d.History)), d.History...)
	if d.Details != nil {
		out.Details = d.Details.clone()
	}
	return out
}

// CheckDetails returns ErrDetailsMismatch when Details belongs to another document type.
// Documents without details pass.
func (d *Document) CheckDetails() error {
	if d.Details != nil && !d.Details.Accepts(d.Type) {
		return fmt.Errorf("%w: %T on %s", ErrDetailsMismatch, d.Details, d.Type)
	}
	return nil
}

// UnmarshalJSON decodes the details variant that matches the document type.
func (d *Document) UnmarshalJSON(b []byte) error {
	type plain Document
	var aux struct {
		plain
		Details json.RawMessage `json:"details,omitempty"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*d = Document(aux.plain)
	details, err := DecodeDetails(d.Type, aux.Details)
	if err != nil {
		return fmt.Errorf("document %s: %w", d.ID, err)
	}
	d.Details = details
	return nil
}
