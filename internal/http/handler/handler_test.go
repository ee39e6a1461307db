package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doctrack/internal/access"
	"doctrack/internal/http/middleware"
	"doctrack/internal/locale"
	"doctrack/internal/model"
	"doctrack/internal/search"
	"doctrack/internal/service"
	serviceMocks "doctrack/internal/service/mocks"
)

type testDeps struct {
	docs    *serviceMocks.MockDocumentService
	search  *serviceMocks.MockSearchService
	reports *serviceMocks.MockReportService
	atts    *serviceMocks.MockAttachmentService
	notes   *serviceMocks.MockNotificationService
}

func newTestApp(t *testing.T, health ...Pinger) (*fiber.App, testDeps) {
	t.Helper()
	tr, err := locale.NewTranslator(locale.Dari)
	require.NoError(t, err)
	policy, err := access.NewPolicy(access.DefaultPolicy)
	require.NoError(t, err)

	d := testDeps{
		docs:    new(serviceMocks.MockDocumentService),
		search:  new(serviceMocks.MockSearchService),
		reports: new(serviceMocks.MockReportService),
		atts:    new(serviceMocks.MockAttachmentService),
		notes:   new(serviceMocks.MockNotificationService),
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(tr, nil), Immutable: true})
	app.Use(middleware.RequestID())
	app.Use(middleware.Locale(locale.Dari))
	RegisterRoutes(app, Dependencies{
		Documents:     d.docs,
		Search:        d.search,
		Reports:       d.reports,
		Attachments:   d.atts,
		Notifications: d.notes,
		Policy:        policy,
		Locale:        locale.Dari,
		Health:        health,
	})
	return app, d
}

func as(req *http.Request, role model.Branch) *http.Request {
	req.Header.Set(middleware.UserIDHeader, "u-"+strings.ToLower(string(role)))
	req.Header.Set(middleware.UserNameHeader, "Tester")
	req.Header.Set(middleware.UserRoleHeader, string(role))
	return req
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, r io.Reader) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(r).Decode(&res))
	return res
}

func userMatcher(role model.Branch) any {
	return mock.MatchedBy(func(u model.User) bool { return u.Role == role && u.DisplayName == "Tester" })
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app, _ := newTestApp(t, func(context.Context) error { return nil }, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		app, _ := newTestApp(t, func(context.Context) error { return errors.New("db error") })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		res := decodeError(t, resp.Body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", res.Error.Code)
		assert.NotEmpty(t, res.RequestID)
	})
}

func TestLiveness(t *testing.T) {
	app, _ := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouting(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("not found route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		res := decodeError(t, resp.Body)
		assert.Equal(t, "UNAUTHENTICATED", res.Error.Code)
		assert.Equal(t, "لطفاً ابتدا وارد سیستم شوید.", res.Error.Message)
	})

	t.Run("view not allowed for role", func(t *testing.T) {
		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/control/queue", nil), model.BranchAdmin))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp.Body).Error.Code)
	})
}

func TestMyViews(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/me/views", nil), model.BranchControl))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res viewsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, model.BranchControl, res.Role)
	assert.Equal(t, []access.View{access.ViewControl}, res.Views)
}

func TestBranchDocuments(t *testing.T) {
	app, d := newTestApp(t)

	t.Run("list applies query filters", func(t *testing.T) {
		d.docs.On("Filter", mock.Anything, search.Criteria{Branch: model.BranchAdmin, Type: "MAKTOOB", Status: "ALL", Query: "land"}).
			Return([]model.Document{{ID: "d1"}}, nil).Once()

		req := as(httptest.NewRequest(http.MethodGet, "/api/v1/branches/admin/documents?type=MAKTOOB&status=ALL&q=land", nil), model.BranchAdmin)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res documentList
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, "d1", res.Items[0].ID)
		d.docs.AssertExpectations(t)
	})

	t.Run("register", func(t *testing.T) {
		in := service.RegisterInput{DocNumber: "QT-1", Type: model.DocTypeProposal, Title: "Test Proposal"}
		d.docs.On("Register", mock.Anything, userMatcher(model.BranchAdmin), model.BranchAdmin, mock.MatchedBy(func(got service.RegisterInput) bool {
			return got.DocNumber == "QT-1" && got.Type == model.DocTypeProposal && got.Title == "Test Proposal"
		})).Return(&model.Document{ID: "new", Status: model.StatusPending}, nil).Once()

		resp, err := app.Test(as(jsonRequest(http.MethodPost, "/api/v1/branches/ADMIN/documents", in), model.BranchAdmin))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var doc model.Document
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, "new", doc.ID)
		assert.Equal(t, model.StatusPending, doc.Status)
		d.docs.AssertExpectations(t)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		d.docs.On("Register", mock.Anything, mock.Anything, model.BranchAdmin, mock.Anything).
			Return(nil, &service.ValidationError{Fields: []string{"title", "sender"}}).Once()

		resp, err := app.Test(as(jsonRequest(http.MethodPost, "/api/v1/branches/admin/documents", map[string]string{}), model.BranchAdmin))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp.Body)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		assert.Equal(t, []string{"title", "sender"}, res.Error.Fields)
		assert.Equal(t, "لطفاً تمام فیلدهای الزامی (*) را تکمیل نمایید.", res.Error.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := as(httptest.NewRequest(http.MethodPost, "/api/v1/branches/admin/documents", strings.NewReader("{")), model.BranchAdmin)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("other branch is forbidden", func(t *testing.T) {
		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/branches/finance/documents", nil), model.BranchAdmin))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestControlActions(t *testing.T) {
	app, d := newTestApp(t)

	t.Run("queue", func(t *testing.T) {
		d.docs.On("ControlQueue", mock.Anything, "").Return([]model.Document{}, nil).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/control/queue", nil), model.BranchControl))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		d.docs.AssertExpectations(t)
	})

	t.Run("reject passes reasons through", func(t *testing.T) {
		reasons := []model.RejectionReason{"expired license", "site issue"}
		d.docs.On("Reject", mock.Anything, userMatcher(model.BranchControl), "doc-1", reasons).
			Return(&model.Document{ID: "doc-1", Status: model.StatusRejected, RejectionReasons: reasons, RejectionReason: "expired license | site issue"}, nil).Once()

		resp, err := app.Test(as(jsonRequest(http.MethodPost, "/api/v1/documents/doc-1/reject", rejectRequest{Reasons: reasons}), model.BranchControl))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var doc model.Document
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, reasons, doc.RejectionReasons)
		assert.Equal(t, "expired license | site issue", doc.RejectionReason)
		d.docs.AssertExpectations(t)
	})

	t.Run("approve unknown document is localized", func(t *testing.T) {
		d.docs.On("Approve", mock.Anything, mock.Anything, "missing").Return(nil, service.ErrNotFound).Twice()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodPost, "/api/v1/documents/missing/approve", nil), model.BranchControl))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp.Body)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		assert.Equal(t, "سند پیدا نشد", res.Error.Message)

		resp, err = app.Test(as(httptest.NewRequest(http.MethodPost, "/api/v1/documents/missing/approve?lang=ps", nil), model.BranchControl))
		require.NoError(t, err)
		assert.Equal(t, "سند ونه موندل شو", decodeError(t, resp.Body).Error.Message)
		d.docs.AssertExpectations(t)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		d.docs.On("Approve", mock.Anything, mock.Anything, "doc-2").Return(nil, errors.New("pq: connection reset")).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-2/approve", nil), model.BranchControl))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp.Body)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.NotContains(t, res.Error.Message, "pq")
	})
}

func TestGetDocument(t *testing.T) {
	app, d := newTestApp(t)
	d.docs.On("Get", mock.Anything, "doc-1").Return(&model.Document{ID: "doc-1"}, nil).Once()

	resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/documents/doc-1", nil), model.BranchAssets))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	d.docs.AssertExpectations(t)
}

func TestSearch(t *testing.T) {
	app, d := newTestApp(t)

	t.Run("hit", func(t *testing.T) {
		d.search.On("Lookup", mock.Anything, userMatcher(model.BranchFinance), "QT-MK-1402-0842").
			Return(&model.Document{ID: "d1", DocNumber: "QT-MK-1402-0842"}, nil).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/search?q=QT-MK-1402-0842", nil), model.BranchFinance))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		d.search.AssertExpectations(t)
	})

	t.Run("empty query", func(t *testing.T) {
		d.search.On("Lookup", mock.Anything, mock.Anything, "").Return(nil, service.ErrEmptyQuery).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/search", nil), model.BranchFinance))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "EMPTY_QUERY", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("recent", func(t *testing.T) {
		d.search.On("Recent", mock.Anything, mock.Anything).Return([]string{"QT-MK-1402-0842"}, nil).Once()
		d.search.On("ClearRecent", mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/search/recent", nil), model.BranchFinance))
		require.NoError(t, err)
		var res recentList
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, []string{"QT-MK-1402-0842"}, res.Items)

		resp, err = app.Test(as(httptest.NewRequest(http.MethodDelete, "/api/v1/search/recent", nil), model.BranchFinance))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		d.search.AssertExpectations(t)
	})
}

func TestNotifications(t *testing.T) {
	app, d := newTestApp(t)
	d.notes.On("List", mock.Anything).Return([]model.Notification{{ID: "n1"}, {ID: "n2", Read: true}}, nil).Once()
	d.notes.On("ClearAll", mock.Anything).Return(nil).Once()

	resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil), model.BranchProcurement))
	require.NoError(t, err)
	var res notificationList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Unread)

	resp, err = app.Test(as(httptest.NewRequest(http.MethodDelete, "/api/v1/notifications", nil), model.BranchProcurement))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	d.notes.AssertExpectations(t)
}

func multipartFile(t *testing.T, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadAttachment(t *testing.T) {
	app, d := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		body, ct := multipartFile(t, "quote.pdf", "hello world")
		d.atts.On("Upload", mock.Anything, "doc-1", mock.Anything, "quote.pdf", mock.Anything, int64(11)).
			Return(&model.Attachment{ID: "att-9", Name: "quote.pdf", Size: 11}, nil).Once()

		req := as(httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-1/attachments", body), model.BranchProcurement)
		req.Header.Set("Content-Type", ct)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var att model.Attachment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&att))
		assert.Equal(t, "att-9", att.ID)
		d.atts.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		resp, err := app.Test(as(httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-1/attachments", nil), model.BranchProcurement))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("storage not configured", func(t *testing.T) {
		body, ct := multipartFile(t, "a.txt", "x")
		d.atts.On("Upload", mock.Anything, "doc-1", mock.Anything, "a.txt", mock.Anything, mock.Anything).
			Return(nil, service.ErrAttachmentsDisabled).Once()

		req := as(httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-1/attachments", body), model.BranchProcurement)
		req.Header.Set("Content-Type", ct)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("link", func(t *testing.T) {
		d.atts.On("Link", mock.Anything, "doc-1", "att-1").Return("https://files.local/x", nil).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/documents/doc-1/attachments/att-1/link", nil), model.BranchProcurement))
		require.NoError(t, err)

		var res map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "https://files.local/x", res["url"])
	})
}

func TestReports(t *testing.T) {
	app, d := newTestApp(t)

	t.Run("dashboard", func(t *testing.T) {
		d.reports.On("Dashboard", mock.Anything).Return(&service.Dashboard{Counts: service.StatusCounts{Total: 2}}, nil).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), model.BranchFinance))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res service.Dashboard
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, 2, res.Counts.Total)
	})

	t.Run("report criteria from query", func(t *testing.T) {
		d.reports.On("Report", mock.Anything, search.Criteria{Branch: model.BranchFinance, Status: "APPROVED"}).
			Return(&service.Report{}, nil).Once()

		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/reports?branch=finance&status=APPROVED", nil), model.BranchAdmin))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		d.reports.AssertExpectations(t)
	})

	t.Run("export", func(t *testing.T) {
		d.reports.On("Export", mock.Anything, search.Criteria{}, locale.Pashto, mock.Anything).Return([]byte("PK-workbook"), nil).Once()

		req := as(httptest.NewRequest(http.MethodGet, "/api/v1/reports/export", nil), model.BranchGeneralManager)
		req.Header.Set(middleware.LocaleHeader, "ps")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, xlsxContentType, resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "PK-workbook", string(b))
		d.reports.AssertExpectations(t)
	})

	t.Run("procurement cannot open reports", func(t *testing.T) {
		resp, err := app.Test(as(httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil), model.BranchProcurement))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
