// Package http provides the HTTP surface shared by every ledger resource.
// One generic handler serves the CRUD, list, stats, values and export
// endpoints; per-resource wiring supplies the request decoding and response
// mapping.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/lifebook/lifebook/internal/auth/domain"
	authHTTP "github.com/lifebook/lifebook/internal/auth/http"
	"github.com/lifebook/lifebook/internal/httputil"
	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/ledger/http/dto"
	"github.com/lifebook/lifebook/internal/ledger/usecase"
)

// EntryHandler handles HTTP requests for one ledger resource.
type EntryHandler[T domain.Entry] struct {
	useCase  usecase.UseCase[T]
	resource string

	// decode binds and shape-validates the request body, writing the error
	// response itself on failure.
	decode  func(c *gin.Context) (T, bool)
	respond func(T) any
	listing func(usecase.ListOutput[T]) any

	logger *slog.Logger
}

// principal pulls the authenticated identity set by the auth middleware.
func (h *EntryHandler[T]) principal(c *gin.Context) (*authDomain.Principal, bool) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrMissingToken, h.logger)
		return nil, false
	}
	return principal, true
}

// entryID parses the :id path parameter.
func (h *EntryHandler[T]) entryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid entry ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// CreateHandler creates a new entry owned by the caller.
// POST /v1/<resource> - Requires authentication.
// Returns 201 Created with the stored entry.
func (h *EntryHandler[T]) CreateHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	record, ok := h.decode(c)
	if !ok {
		return
	}

	created, err := h.useCase.Create(c.Request.Context(), principal.UserID, record)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("entry created",
		slog.String("resource", h.resource),
		slog.String("entry_id", created.EntryID().String()),
	)

	c.JSON(http.StatusCreated, h.respond(created))
}

// GetHandler retrieves a single entry by ID.
// GET /v1/<resource>/:id - Requires authentication.
// Returns 200 OK, or 404 when the entry is missing or owned by someone else.
func (h *EntryHandler[T]) GetHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.entryID(c)
	if !ok {
		return
	}

	record, err := h.useCase.Get(c.Request.Context(), principal.UserID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, h.respond(record))
}

// UpdateHandler fully replaces an entry's fields.
// PUT /v1/<resource>/:id - Requires authentication.
// Returns 200 OK with the stored entry, or 404.
func (h *EntryHandler[T]) UpdateHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.entryID(c)
	if !ok {
		return
	}

	record, ok := h.decode(c)
	if !ok {
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), principal.UserID, id, record)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, h.respond(updated))
}

// DeleteHandler removes an entry.
// DELETE /v1/<resource>/:id - Requires authentication.
// Returns 204 No Content, or 404.
func (h *EntryHandler[T]) DeleteHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	id, ok := h.entryID(c)
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), principal.UserID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("entry deleted",
		slog.String("resource", h.resource),
		slog.String("entry_id", id.String()),
	)

	c.Status(http.StatusNoContent)
}

// ListHandler returns a filtered, sorted page of the caller's entries.
// GET /v1/<resource> - Requires authentication.
func (h *EntryHandler[T]) ListHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	params := httputil.ParseQuery(c.Request.URL.RawQuery)

	output, err := h.useCase.List(c.Request.Context(), principal.UserID, params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, h.listing(output))
}

// StatsHandler returns the filtered set grouped per the group_by parameter.
// GET /v1/<resource>/stats?group_by= - Requires authentication.
func (h *EntryHandler[T]) StatsHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	params := httputil.ParseQuery(c.Request.URL.RawQuery)

	buckets, err := h.useCase.Stats(c.Request.Context(), principal.UserID, params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{Buckets: buckets})
}

// ValuesHandler returns the distinct values of a filterable field.
// GET /v1/<resource>/values?field= - Requires authentication.
func (h *EntryHandler[T]) ValuesHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	values, err := h.useCase.Values(c.Request.Context(), principal.UserID, c.Query("field"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ValuesResponse{Values: values})
}

// ExportHandler streams the filtered, unpaginated set as a CSV attachment.
// GET /v1/<resource>/export - Requires authentication.
func (h *EntryHandler[T]) ExportHandler(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	params := httputil.ParseQuery(c.Request.URL.RawQuery)

	document, err := h.useCase.ExportCSV(c.Request.Context(), principal.UserID, params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", h.resource))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(document))
}
