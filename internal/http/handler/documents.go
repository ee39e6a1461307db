package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"doctrack/internal/http/middleware"
	"doctrack/internal/model"
	"doctrack/internal/search"
	"doctrack/internal/service"
)

// documentList is the envelope for document collections.
type documentList struct {
	Items []model.Document `json:"items"`
	Total int              `json:"total"`
}

func newDocumentList(docs []model.Document) documentList {
	if docs == nil {
		docs = []model.Document{}
	}
	return documentList{Items: docs, Total: len(docs)}
}

type rejectRequest struct {
	Reasons []model.RejectionReason `json:"reasons"`
}

func currentUser(c *fiber.Ctx) (model.User, error) {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return model.User{}, fiber.ErrUnauthorized
	}
	return u, nil
}

func branchParam(c *fiber.Ctx) model.Branch {
	return model.Branch(strings.ToUpper(utils.CopyString(c.Params("branch"))))
}

func branchQuery(c *fiber.Ctx) model.Branch {
	return model.Branch(strings.ToUpper(utils.CopyString(strings.TrimSpace(c.Query("branch")))))
}

// ListBranchDocuments godoc
// @Summary List a branch's documents
// @Tags documents
// @Produce json
// @Param branch path string true "Branch" Enums(ADMIN, PROCUREMENT, ASSETS, TRANSPORT, FINANCE, CONTROL, INVOICE, GENERAL_MANAGER)
// @Param type query string false "Document type or ALL"
// @Param status query string false "Status, ACTIVE or ALL"
// @Param q query string false "Matches title, description or document number"
// @Success 200 {object} documentList
// @Failure 403 {object} errorPayload
// @Router /api/v1/branches/{branch}/documents [get]
func ListBranchDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.Filter(c.UserContext(), search.Criteria{
			Branch: branchParam(c),
			Type:   c.Query("type"),
			Status: c.Query("status"),
			Query:  c.Query("q"),
		})
		if err != nil {
			return err
		}
		return c.JSON(newDocumentList(docs))
	}
}

// RegisterDocument godoc
// @Summary Register a document for a branch
// @Tags documents
// @Accept json
// @Produce json
// @Param branch path string true "Branch"
// @Param document body service.RegisterInput true "Registration form"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Router /api/v1/branches/{branch}/documents [post]
func RegisterDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return errInvalidBody
		}
		doc, err := svc.Register(c.UserContext(), user, branchParam(c), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /api/v1/documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(doc)
	}
}

// ProcurementQueue godoc
// @Summary List proposals and procurement paperwork
// @Tags procurement
// @Produce json
// @Param status query string false "Status, ACTIVE or ALL"
// @Param stage query string false "ALL, quoted, contracted or invoice_approved"
// @Param q query string false "Matches title, document number or contractor"
// @Success 200 {object} documentList
// @Router /api/v1/procurement/documents [get]
func ProcurementQueue(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ProcurementQueue(c.UserContext(), search.ProcurementCriteria{
			Status: c.Query("status"),
			Stage:  c.Query("stage"),
			Query:  c.Query("q"),
		})
		if err != nil {
			return err
		}
		return c.JSON(newDocumentList(docs))
	}
}

// ControlQueue godoc
// @Summary List documents awaiting review
// @Tags control
// @Produce json
// @Param status query string false "Status filter, defaults to ACTIVE"
// @Success 200 {object} documentList
// @Router /api/v1/control/queue [get]
func ControlQueue(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ControlQueue(c.UserContext(), c.Query("status"))
		if err != nil {
			return err
		}
		return c.JSON(newDocumentList(docs))
	}
}

// ApproveDocument godoc
// @Summary Approve a document
// @Tags control
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /api/v1/documents/{id}/approve [post]
func ApproveDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		doc, err := svc.Approve(c.UserContext(), user, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(doc)
	}
}

// RejectDocument godoc
// @Summary Reject a document with checklist reasons
// @Tags control
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param body body rejectRequest true "Rejection reasons"
// @Success 200 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/v1/documents/{id}/reject [post]
func RejectDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		var req rejectRequest
		if err := c.BodyParser(&req); err != nil {
			return errInvalidBody
		}
		doc, err := svc.Reject(c.UserContext(), user, c.Params("id"), req.Reasons)
		if err != nil {
			return err
		}
		return c.JSON(doc)
	}
}
