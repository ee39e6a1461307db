package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"doctrack/internal/locale"
	"doctrack/internal/metrics"
	"doctrack/internal/model"
	"doctrack/internal/notify"
	"doctrack/internal/repository"
	"doctrack/internal/search"
)

var tracer = otel.Tracer("doctrack/internal/service")

// RegisterInput is the registration form submitted for a branch.
type RegisterInput struct {
	DocNumber    string          `json:"docNumber" validate:"required"`
	Type         model.DocType   `json:"type" validate:"required"`
	Title        string          `json:"title" validate:"required"`
	Sender       string          `json:"sender" validate:"required"`
	Receiver     string          `json:"receiver" validate:"required"`
	Date         string          `json:"date"`
	Priority     model.Priority  `json:"priority"`
	Summary      string          `json:"summary"`
	Description  string          `json:"description" validate:"required"`
	ActionsTaken string          `json:"actionsTaken" validate:"required"`
	Details      json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

// DocumentService defines the lifecycle and read use cases for documents.
type DocumentService interface {
	// Register validates in and stores a new PENDING document owned by branch.
	// Proposals raise a procurement notification.
	Register(ctx context.Context, actor model.User, branch model.Branch, in RegisterInput) (*model.Document, error)

	// Approve marks a document APPROVED. Rejection fields are left as they are.
	Approve(ctx context.Context, actor model.User, id string) (*model.Document, error)

	// Reject marks a document REJECTED with at least one checklist reason.
	Reject(ctx context.Context, actor model.User, id string, reasons []model.RejectionReason) (*model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Filter applies the compound branch view filter.
	Filter(ctx context.Context, c search.Criteria) ([]model.Document, error)

	// ControlQueue lists documents for review; an empty status means ACTIVE.
	ControlQueue(ctx context.Context, status string) ([]model.Document, error)

	// ProcurementQueue lists proposals and procurement paperwork.
	ProcurementQueue(ctx context.Context, c search.ProcurementCriteria) ([]model.Document, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	repo     repository.DocumentRepository
	notifier *notify.Emitter
	tr       *locale.Translator
	metrics  *metrics.Lifecycle
	log      *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(
	repo repository.DocumentRepository,
	notifier *notify.Emitter,
	tr *locale.Translator,
	lifecycle *metrics.Lifecycle,
	log *zap.Logger,
) DocumentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &documentService{
		repo:     repo,
		notifier: notifier,
		tr:       tr,
		metrics:  lifecycle,
		log:      log,
		validate: newValidator(),
		now:      time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *documentService) Register(ctx context.Context, actor model.User, branch model.Branch, in RegisterInput) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Register",
		trace.WithAttributes(attribute.String("document.branch", string(branch)), attribute.String("document.type", string(in.Type))))
	defer span.End()

	doc, err := s.buildDocument(branch, in)
	if err != nil {
		return nil, err
	}
	doc.History = []model.HistoryEntry{{
		From:      doc.Sender,
		To:        doc.Receiver,
		Timestamp: s.now().UTC(),
		Action:    s.tr.T(s.tr.Default(), locale.HistoryRegistered, map[string]any{"Type": string(doc.Type)}),
		Actor:     actor.DisplayName,
	}}

	stored, err := s.repo.Add(ctx, doc)
	if errors.Is(err, model.ErrDetailsMismatch) {
		return nil, invalid("details")
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("store document: %w", err)
	}
	s.metrics.Registered(stored.Type, stored.Branch)

	if stored.Type == model.DocTypeProposal {
		s.emit(ctx, locale.NotificationProposalTitle, locale.NotificationProposalMessage, stored)
	}
	return stored, nil
}

// buildDocument validates in and converts it to a document owned by branch.
func (s *documentService) buildDocument(branch model.Branch, in RegisterInput) (*model.Document, error) {
	in.DocNumber = strings.TrimSpace(in.DocNumber)
	in.Title = strings.TrimSpace(in.Title)
	in.Sender = strings.TrimSpace(in.Sender)
	in.Receiver = strings.TrimSpace(in.Receiver)
	in.Description = strings.TrimSpace(in.Description)
	in.ActionsTaken = strings.TrimSpace(in.ActionsTaken)

	var fields []string
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}
	if in.Type != "" && !branch.CanRegister(in.Type) {
		fields = append(fields, "type")
	}
	if in.Priority == "" {
		in.Priority = model.PriorityNormal
	} else if !in.Priority.Valid() {
		fields = append(fields, "priority")
	}

	var details model.Details
	if in.Type.Valid() {
		d, err := model.DecodeDetails(in.Type, in.Details)
		if err != nil {
			fields = append(fields, "details")
		}
		details = d
	}
	if len(fields) > 0 {
		return nil, invalid(fields...)
	}

	return &model.Document{
		DocNumber:    in.DocNumber,
		Type:         in.Type,
		Branch:       branch,
		Title:        in.Title,
		Sender:       in.Sender,
		Receiver:     in.Receiver,
		Date:         in.Date,
		Status:       model.StatusPending,
		Priority:     in.Priority,
		Summary:      in.Summary,
		Description:  in.Description,
		ActionsTaken: in.ActionsTaken,
		Details:      details,
		Attachments:  []model.Attachment{},
	}, nil
}

func (s *documentService) Approve(ctx context.Context, actor model.User, id string) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Approve", trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	return s.transition(ctx, actor, id, repository.Transition{Status: model.StatusApproved},
		s.tr.T(s.tr.Default(), locale.HistoryApproved, nil),
		locale.NotificationApprovedTitle, locale.NotificationApprovedMessage)
}

func (s *documentService) Reject(ctx context.Context, actor model.User, id string, reasons []model.RejectionReason) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Reject", trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	if len(reasons) == 0 {
		return nil, invalid("rejectionReasons")
	}
	labels := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if !r.Valid() {
			return nil, invalid("rejectionReasons")
		}
		labels = append(labels, string(r))
	}
	joined := strings.Join(labels, " | ")

	t := repository.Transition{
		Status:           model.StatusRejected,
		ReplaceRejection: true,
		RejectionReason:  joined,
		RejectionReasons: append([]model.RejectionReason(nil), reasons...),
	}
	return s.transition(ctx, actor, id, t,
		s.tr.T(s.tr.Default(), locale.HistoryRejected, map[string]any{"Reasons": joined}),
		locale.NotificationRejectedTitle, locale.NotificationRejectedMessage)
}

// transition applies t with a history entry from the actor's branch to the owning branch,
// then emits the given notification.
func (s *documentService) transition(ctx context.Context, actor model.User, id string, t repository.Transition, action, titleID, messageID string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	t.Entry = &model.HistoryEntry{
		From:      string(actor.Role),
		To:        string(current.Branch),
		Timestamp: s.now().UTC(),
		Action:    action,
		Actor:     actor.DisplayName,
	}
	updated, err := s.repo.UpdateStatus(ctx, id, t)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.metrics.Transitioned(updated.Status)
	s.emit(ctx, titleID, messageID, updated)
	return updated, nil
}

// emit raises a notification about doc. Failures are logged; the lifecycle change has already been stored.
func (s *documentService) emit(ctx context.Context, titleID, messageID string, doc *model.Document) {
	if s.notifier == nil {
		return
	}
	l := s.tr.Default()
	title := s.tr.T(l, titleID, nil)
	message := s.tr.T(l, messageID, map[string]any{"Title": doc.Title})
	if _, err := s.notifier.Emit(ctx, title, message, doc.ID); err != nil {
		s.log.Warn("notification_failed", zap.String("document_id", doc.ID), zap.Error(err))
	}
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return doc, nil
}

func (s *documentService) Filter(ctx context.Context, c search.Criteria) ([]model.Document, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(docs, c), nil
}

func (s *documentService) ControlQueue(ctx context.Context, status string) ([]model.Document, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return search.ControlQueue(docs, status), nil
}

func (s *documentService) ProcurementQueue(ctx context.Context, c search.ProcurementCriteria) ([]model.Document, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return search.ProcurementQueue(docs, c), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
