package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
)

// BookmarkDispatcher is the interface the handler uses to enqueue toggles.
type BookmarkDispatcher interface {
	Enqueue(cmd ports.BookmarkCommand) error
}

type OpportunityHandler struct {
	service    ports.OpportunityService
	dispatcher BookmarkDispatcher
}

func NewOpportunityHandler(service ports.OpportunityService, dispatcher BookmarkDispatcher) *OpportunityHandler {
	return &OpportunityHandler{service: service, dispatcher: dispatcher}
}

// List handles GET /v1/opportunities.
//
// @Summary      List opportunities
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Exact category"  Enums(gig, scholarship, deal, internship, event, other)
// @Success      200       {array}   domain.Opportunity
// @Router       /v1/opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	opps, err := h.service.List(c.Request().Context(), domain.Category(c.QueryParam("category")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opps)
}

// Get handles GET /v1/opportunities/:id.
//
// @Summary      Get an opportunity
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opportunity id"
// @Success      200  {object}  domain.Opportunity
// @Failure      404  {object}  errorResponse
// @Router       /v1/opportunities/{id} [get]
func (h *OpportunityHandler) Get(c echo.Context) error {
	opp, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// ToggleBookmark handles POST /v1/opportunities/:id/bookmark. The toggle is
// applied asynchronously, in order per caller.
//
// @Summary      Toggle a bookmark
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opportunity id"
// @Success      202  {object}  acceptedResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/opportunities/{id}/bookmark [post]
func (h *OpportunityHandler) ToggleBookmark(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		return err
	}

	if err := h.dispatcher.Enqueue(ports.BookmarkCommand{OwnerID: ownerID, OpportunityID: id}); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "bookmark toggle accepted"})
}

// Bookmarks handles GET /v1/opportunities/bookmarks.
//
// @Summary      List the caller's bookmarks
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookmarksResponse
// @Router       /v1/opportunities/bookmarks [get]
func (h *OpportunityHandler) Bookmarks(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	ids, err := h.service.Bookmarks(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, bookmarksResponse{OpportunityIDs: ids})
}
