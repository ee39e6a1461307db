package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDetailsMismatch is returned when a details variant does not belong to the document type.
var ErrDetailsMismatch = errors.New("details do not match document type")

// Details carries the fields that only exist for one family of document types.
// The concrete variants are LetterDetails, ProposalDetails, InquiryDetails,
// InvoiceDetails and AssetIssueDetails.
type Details interface {
	// Accepts reports whether the variant may be attached to a document of type t.
	Accepts(t DocType) bool
	clone() Details
}

// Contractor identifies the supplier on procurement paperwork.
type Contractor struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
}

type LetterDetails struct {
	EstimatedCost *decimal.Decimal `json:"estimatedCost,omitempty"`
}

func (LetterDetails) Accepts(t DocType) bool { return t == DocTypeLetter }

func (d LetterDetails) clone() Details { return d }

// ProcurementStage is the furthest procurement milestone a proposal has reached.
type ProcurementStage string

const (
	StageAwaitingQuotation ProcurementStage = "awaiting_quotation"
	StageQuoted            ProcurementStage = "quoted"
	StageContracted        ProcurementStage = "contracted"
	StageInvoiceApproved   ProcurementStage = "invoice_approved"
)

type ProposalDetails struct {
	EstimatedCost     *decimal.Decimal `json:"estimatedCost,omitempty"`
	GrossAmount       *decimal.Decimal `json:"grossAmount,omitempty"`
	Contractor        *Contractor      `json:"contractor,omitempty"`
	IsQuoted          bool             `json:"isQuoted"`
	IsContracted      bool             `json:"isContracted"`
	IsInvoiceApproved bool             `json:"isInvoiceApproved"`
}

func (ProposalDetails) Accepts(t DocType) bool { return t == DocTypeProposal }

func (d ProposalDetails) clone() Details {
	if d.Contractor != nil {
		c := *d.Contractor
		d.Contractor = &c
	}
	return d
}

// Stage reports the furthest milestone, invoice approval first.
func (d ProposalDetails) Stage() ProcurementStage {
	switch {
	case d.IsInvoiceApproved:
		return StageInvoiceApproved
	case d.IsContracted:
		return StageContracted
	case d.IsQuoted:
		return StageQuoted
	default:
		return StageAwaitingQuotation
	}
}

type InquiryDetails struct {
	InquiryNumber      string `json:"inquiryNumber,omitempty"`
	IsResponseReceived bool   `json:"isResponseReceived"`
	ResponseDate       string `json:"responseDate,omitempty"`
	ResponseSummary    string `json:"responseSummary,omitempty"`
}

func (InquiryDetails) Accepts(t DocType) bool { return t == DocTypeInquiry }

func (d InquiryDetails) clone() Details { return d }

type InvoiceDetails struct {
	GrossAmount       *decimal.Decimal `json:"grossAmount,omitempty"`
	Contractor        *Contractor      `json:"contractor,omitempty"`
	IsInvoiceApproved bool             `json:"isInvoiceApproved"`
}

func (InvoiceDetails) Accepts(t DocType) bool { return t == DocTypeInvoice }

func (d InvoiceDetails) clone() Details {
	if d.Contractor != nil {
		c := *d.Contractor
		d.Contractor = &c
	}
	return d
}

// AssetStatus is where an issued asset currently is.
type AssetStatus string

const (
	AssetStored  AssetStatus = "STORED"
	AssetSent    AssetStatus = "SENT"
	AssetDamaged AssetStatus = "DAMAGED"
)

// AssetIssueDetails backs the M7 and M16 asset-issuance forms.
type AssetIssueDetails struct {
	AssetName   string      `json:"assetName"`
	Category    string      `json:"category,omitempty"`
	Location    string      `json:"location"`
	AssetStatus AssetStatus `json:"assetStatus"`
}

func (AssetIssueDetails) Accepts(t DocType) bool { return t == DocTypeM7 || t == DocTypeM16 }

func (d AssetIssueDetails) clone() Details { return d }

// DecodeDetails decodes raw JSON into the variant owned by t. Empty input yields nil.
func DecodeDetails(t DocType, raw []byte) (Details, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var (
		out Details
		err error
	)
	switch t {
	case DocTypeLetter:
		var v LetterDetails
		err = json.Unmarshal(raw, &v)
		out = v
	case DocTypeProposal:
		var v ProposalDetails
		err = json.Unmarshal(raw, &v)
		out = v
	case DocTypeInquiry:
		var v InquiryDetails
		err = json.Unmarshal(raw, &v)
		out = v
	case DocTypeInvoice:
		var v InvoiceDetails
		err = json.Unmarshal(raw, &v)
		out = v
	case DocTypeM7, DocTypeM16:
		var v AssetIssueDetails
		err = json.Unmarshal(raw, &v)
		out = v
	default:
		return nil, fmt.Errorf("unknown document type %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s details: %w", t, err)
	}
	return out, nil
}

// ContractorName returns the contractor on a proposal or invoice, or "".
func ContractorName(d Details) string {
	switch v := d.(type) {
	case ProposalDetails:
		if v.Contractor != nil {
			return v.Contractor.Name
		}
	case InvoiceDetails:
		if v.Contractor != nil {
			return v.Contractor.Name
		}
	}
	return ""
}
