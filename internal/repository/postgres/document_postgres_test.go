package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctrack/internal/model"
	"doctrack/internal/repository"
)

var documentCols = []string{
	"id", "doc_number", "type", "branch", "title", "sender", "receiver", "doc_date", "status", "priority",
	"summary", "description", "actions_taken", "details", "rejection_reason", "rejection_reasons",
	"attachments", "history", "created_at",
}

func documentRow(id string, status model.DocStatus, details, reasons string) []driver.Value {
	var d, r any
	if details != "" {
		d = []byte(details)
	}
	if reasons != "" {
		r = []byte(reasons)
	}
	return []driver.Value{
		id, "QT-PN-1402-0115", "PISHNEHAD", "PROCUREMENT", "machinery", "logistics", "procurement", "1402/09/15",
		string(status), "CRITICAL", "", "ten excavators", "under review", d, "", r,
		[]byte(`[]`), []byte(`[{"from":"logistics","to":"procurement","timestamp":"2024-01-01T00:00:00Z","action":"sent"}]`),
		time.Now(),
	}
}

func TestDocumentPostgres_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	doc := &model.Document{
		DocNumber: "QT-PN-1402-0115",
		Type:      model.DocTypeProposal,
		Branch:    model.BranchProcurement,
		Title:     "machinery",
		Status:    model.StatusApproved,
		Priority:  model.PriorityCritical,
		Details:   model.ProposalDetails{IsQuoted: true},
	}

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), doc.DocNumber, "PISHNEHAD", "PROCUREMENT", doc.Title, "", "", "",
			"PENDING", "CRITICAL", "", "", "", sqlmock.AnyArg(), "", sqlmock.AnyArg(), []byte(`[]`), []byte(`[]`), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow(documentRow("new-id", model.StatusPending, `{"isQuoted":true}`, "")...))

	got, err := repo.Add(ctx, doc)

	require.NoError(t, err)
	assert.Equal(t, "new-id", got.ID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, model.ProposalDetails{IsQuoted: true}, got.Details)
	assert.Len(t, got.History, 1)
	assert.NotNil(t, got.Attachments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("rejected", func(t *testing.T) {
		mock.ExpectQuery("UPDATE documents SET").
			WithArgs("doc-1", "REJECTED", true, "expired license | site issue",
				[]byte(`["expired license","site issue"]`), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(documentCols).
				AddRow(documentRow("doc-1", model.StatusRejected, "", `["expired license","site issue"]`)...))

		got, err := repo.UpdateStatus(ctx, "doc-1", repository.Transition{
			Status:           model.StatusRejected,
			ReplaceRejection: true,
			RejectionReason:  "expired license | site issue",
			RejectionReasons: []model.RejectionReason{model.ReasonExpiredLicense, model.ReasonSiteIssue},
			Entry:            &model.HistoryEntry{Action: "rejected"},
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, got.Status)
		assert.Equal(t, []model.RejectionReason{model.ReasonExpiredLicense, model.ReasonSiteIssue}, got.RejectionReasons)
		assert.Nil(t, got.Details)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE documents SET").
			WithArgs("missing", "APPROVED", false, "", sqlmock.AnyArg(), []byte(`[]`)).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.UpdateStatus(ctx, "missing", repository.Transition{Status: model.StatusApproved})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnRows(sqlmock.NewRows(documentCols).
				AddRow(documentRow("doc-1", model.StatusPending, "", "")...))

		doc, err := repo.FindByID(ctx, "doc-1")

		assert.NoError(t, err)
		assert.Equal(t, "doc-1", doc.ID)
		assert.Equal(t, model.DocTypeProposal, doc.Type)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_All(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)

	mock.ExpectQuery(`SELECT (.+) FROM documents ORDER BY seq DESC$`).
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow(documentRow("b", model.StatusPending, "", "")...).
			AddRow(documentRow("a", model.StatusApproved, "", "")...))

	docs, err := repo.All(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_AddAttachment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)

	mock.ExpectQuery("UPDATE documents SET attachments").
		WithArgs("doc-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(documentCols).
			AddRow(documentRow("doc-1", model.StatusPending, "", "")...))

	doc, err := repo.AddAttachment(context.Background(), "doc-1", model.Attachment{ID: "att", Name: "scan.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewNotificationPostgres(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("INSERT INTO notifications").
		WithArgs("n1", "title", "message", "۱۰:۱۵:۰۰", false, "doc-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Add(ctx, &model.Notification{
		ID: "n1", Title: "title", Message: "message", Timestamp: "۱۰:۱۵:۰۰", DocID: "doc-1", CreatedAt: now,
	}))

	mock.ExpectQuery(`SELECT (.+) FROM notifications\s+ORDER BY seq DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "message", "display_time", "read", "doc_id", "created_at"}).
			AddRow("n1", "title", "message", "۱۰:۱۵:۰۰", false, nil, now))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].DocID)

	mock.ExpectExec("DELETE FROM notifications").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Clear(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_AddRejectsMismatchedDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	doc, err := repo.Add(context.Background(), &model.Document{Type: model.DocTypeInvoice, Details: model.LetterDetails{}})

	assert.ErrorIs(t, err, model.ErrDetailsMismatch)
	assert.Nil(t, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}
