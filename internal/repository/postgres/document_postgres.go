package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"doctrack/internal/model"
	"doctrack/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// Details, attachments, history and rejection reasons are stored as JSONB columns.
type DocumentPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db, now: time.Now}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, doc_number, type, branch, title, sender, receiver, doc_date, status, priority,
		summary, description, actions_taken, details, rejection_reason, rejection_reasons,
		attachments, history, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(s rowScanner) (*model.Document, error) {
	var (
		d                                  model.Document
		details, reasons, attachments, hist []byte
	)
	if err := s.Scan(
		&d.ID,
		&d.DocNumber,
		&d.Type,
		&d.Branch,
		&d.Title,
		&d.Sender,
		&d.Receiver,
		&d.Date,
		&d.Status,
		&d.Priority,
		&d.Summary,
		&d.Description,
		&d.ActionsTaken,
		&details,
		&d.RejectionReason,
		&reasons,
		&attachments,
		&hist,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if d.Details, err = model.DecodeDetails(d.Type, details); err != nil {
		return nil, err
	}
	if len(reasons) > 0 {
		if err := json.Unmarshal(reasons, &d.RejectionReasons); err != nil {
			return nil, fmt.Errorf("decode rejection_reasons: %w", err)
		}
	}
	d.Attachments = []model.Attachment{}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &d.Attachments); err != nil {
			return nil, fmt.Errorf("decode attachments: %w", err)
		}
	}
	d.History = []model.HistoryEntry{}
	if len(hist) > 0 {
		if err := json.Unmarshal(hist, &d.History); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	}
	return &d, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

// Add inserts a new document row with a fresh ID and PENDING status.
func (r *DocumentPostgres) Add(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := doc.CheckDetails(); err != nil {
		return nil, err
	}
	details, err := marshalNullable(doc.Details)
	if err != nil {
		return nil, err
	}
	reasons, err := marshalNullable(doc.RejectionReasons)
	if err != nil {
		return nil, err
	}
	attachments, err := json.Marshal(nonNil(doc.Attachments))
	if err != nil {
		return nil, err
	}
	hist, err := json.Marshal(nonNil(doc.History))
	if err != nil {
		return nil, err
	}
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	q := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		uuid.NewString(),
		doc.DocNumber,
		string(doc.Type),
		string(doc.Branch),
		doc.Title,
		doc.Sender,
		doc.Receiver,
		doc.Date,
		string(model.StatusPending),
		string(doc.Priority),
		doc.Summary,
		doc.Description,
		doc.ActionsTaken,
		details,
		doc.RejectionReason,
		reasons,
		attachments,
		hist,
		createdAt,
	)
	return scanDocument(row)
}

// UpdateStatus changes status, optionally overwrites rejection fields and appends a history entry.
func (r *DocumentPostgres) UpdateStatus(ctx context.Context, id string, t repository.Transition) (*model.Document, error) {
	reasons, err := marshalNullable(t.RejectionReasons)
	if err != nil {
		return nil, err
	}
	entries := []model.HistoryEntry{}
	if t.Entry != nil {
		entries = append(entries, *t.Entry)
	}
	appended, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE documents SET
			status = $2,
			rejection_reason = CASE WHEN $3 THEN $4 ELSE rejection_reason END,
			rejection_reasons = CASE WHEN $3 THEN $5::jsonb ELSE rejection_reasons END,
			history = history || $6::jsonb
		WHERE id = $1
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q, id, string(t.Status), t.ReplaceRejection, t.RejectionReason, reasons, appended)
	doc, err := scanDocument(row)
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

// AddAttachment appends attachment metadata to the attachments array.
func (r *DocumentPostgres) AddAttachment(ctx context.Context, id string, att model.Attachment) (*model.Document, error) {
	b, err := json.Marshal([]model.Attachment{att})
	if err != nil {
		return nil, err
	}
	q := `
		UPDATE documents SET attachments = attachments || $2::jsonb
		WHERE id = $1
		RETURNING ` + documentColumns
	doc, err := scanDocument(r.db.QueryRowContext(ctx, q, id, b))
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	doc, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

// All returns every document, newest first.
func (r *DocumentPostgres) All(ctx context.Context) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents ORDER BY seq DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// marshalNullable encodes v as JSON, mapping nil values to SQL NULL.
func marshalNullable(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []model.RejectionReason:
		if x == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
