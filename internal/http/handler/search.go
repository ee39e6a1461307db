package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"doctrack/internal/service"
)

type recentList struct {
	Items []string `json:"items"`
}

// SearchDocument godoc
// @Summary Find a document by number, title or ID
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/v1/search [get]
func SearchDocument(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		doc, err := svc.Lookup(c.UserContext(), user, utils.CopyString(c.Query("q")))
		if err != nil {
			return err
		}
		return c.JSON(doc)
	}
}

// RecentSearches godoc
// @Summary List the caller's recent searches
// @Tags search
// @Produce json
// @Success 200 {object} recentList
// @Router /api/v1/search/recent [get]
func RecentSearches(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		items, err := svc.Recent(c.UserContext(), user)
		if err != nil {
			return err
		}
		if items == nil {
			items = []string{}
		}
		return c.JSON(recentList{Items: items})
	}
}

// ClearRecentSearches godoc
// @Summary Clear the caller's recent searches
// @Tags search
// @Success 204
// @Router /api/v1/search/recent [delete]
func ClearRecentSearches(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		if err := svc.ClearRecent(c.UserContext(), user); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
