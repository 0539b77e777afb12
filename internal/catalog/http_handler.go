package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHTTPHandler(svc *Service, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the catalog endpoints on mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/books", h.ListBooks)
	mux.HandleFunc("POST /v1/books", h.CreateBook)
	mux.HandleFunc("GET /v1/books/count", h.CountBooks)
	mux.HandleFunc("GET /v1/books/search", h.SearchBooks)
	mux.HandleFunc("GET /v1/books/{id}", h.GetBook)
	mux.HandleFunc("PATCH /v1/books/{id}", h.UpdateBook)
	mux.HandleFunc("DELETE /v1/books/{id}", h.DeleteBook)

	mux.HandleFunc("GET /v1/publishers", h.ListPublishers)
	mux.HandleFunc("GET /v1/publishers/names", h.ListPublisherNames)
	mux.HandleFunc("GET /v1/publishers/lookup", h.LookupPublisher)
	mux.HandleFunc("GET /v1/publishers/{id}", h.GetPublisher)
	mux.HandleFunc("GET /v1/publishers/{id}/branches", h.ListBranches)
}

// ListBooks handles GET /v1/books
// @Summary List books
// @Description List every book, newest first
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse{data=[]BookView}
// @Router /v1/books [get]
func (h *HTTPHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books := h.svc.FindAllBooks(r.Context())
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// CreateBook handles POST /v1/books
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param body body CreateBookInput true "Book"
// @Success 201 {object} httpx.SuccessResponse{data=BookView}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/books [post]
func (h *HTTPHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var in CreateBookInput
	if !h.decode(w, r, &in) {
		return
	}

	book, err := h.svc.CreateBook(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, book)
}

// CountBooks handles GET /v1/books/count
// @Summary Count books
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/books/count [get]
func (h *HTTPHandler) CountBooks(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CountBooks(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]int{"count": count}, nil)
}

// SearchBooks handles GET /v1/books/search?q=
// @Summary Search books by genre text
// @Description Case-insensitive substring match on title or description
// @Tags books
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} httpx.SuccessResponse{data=[]BookView}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/books/search [get]
func (h *HTTPHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter q is required",
			[]httpx.ErrorDetail{{Field: "q", Message: "q is required"}})
		return
	}

	books, err := h.svc.FindBooksByGenre(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// GetBook handles GET /v1/books/{id}
// @Summary Get book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse{data=BookView}
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [get]
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	book, err := h.svc.FindBookByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, book, nil)
}

// UpdateBook handles PATCH /v1/books/{id}
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param body body UpdateBookInput true "Fields to change"
// @Success 200 {object} httpx.SuccessResponse{data=BookView}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [patch]
func (h *HTTPHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in UpdateBookInput
	if !h.decode(w, r, &in) {
		return
	}

	book, err := h.svc.UpdateBook(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, book, nil)
}

// DeleteBook handles DELETE /v1/books/{id}
// @Summary Delete book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [delete]
func (h *HTTPHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// ListPublishers handles GET /v1/publishers
// @Summary List active publishers with their full profile
// @Tags publishers
// @Produce json
// @Success 200 {object} httpx.SuccessResponse{data=[]Publisher}
// @Router /v1/publishers [get]
func (h *HTTPHandler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	publishers := h.svc.ListPublishersWithDetails(r.Context())
	httpx.JSONSuccess(w, r, publishers, map[string]any{"total": len(publishers)})
}

// ListPublisherNames handles GET /v1/publishers/names
// @Summary Names of publishers that have books
// @Tags publishers
// @Produce json
// @Success 200 {object} httpx.SuccessResponse{data=[]string}
// @Router /v1/publishers/names [get]
func (h *HTTPHandler) ListPublisherNames(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.svc.ListPublisherNames(r.Context()), nil)
}

// LookupPublisher handles GET /v1/publishers/lookup?name=
// @Summary Find a publisher by exact name
// @Tags publishers
// @Produce json
// @Param name query string true "Publisher name"
// @Success 200 {object} httpx.SuccessResponse{data=Publisher}
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/publishers/lookup [get]
func (h *HTTPHandler) LookupPublisher(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter name is required",
			[]httpx.ErrorDetail{{Field: "name", Message: "name is required"}})
		return
	}
	h.writePublisher(w, r, h.svc.GetPublisherByName(r.Context(), name))
}

// GetPublisher handles GET /v1/publishers/{id}
// @Summary Get publisher
// @Tags publishers
// @Produce json
// @Param id path int true "Publisher ID"
// @Success 200 {object} httpx.SuccessResponse{data=Publisher}
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/publishers/{id} [get]
func (h *HTTPHandler) GetPublisher(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	h.writePublisher(w, r, h.svc.GetPublisherByID(r.Context(), id))
}

// ListBranches handles GET /v1/publishers/{id}/branches
// @Summary List branches of a publisher
// @Tags publishers
// @Produce json
// @Param id path int true "Publisher ID"
// @Success 200 {object} httpx.SuccessResponse{data=[]Branch}
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/publishers/{id}/branches [get]
func (h *HTTPHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	branches, err := h.svc.ListBranches(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, branches, nil)
}

func (h *HTTPHandler) writePublisher(w http.ResponseWriter, r *http.Request, p *Publisher) {
	if p == nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Publisher not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, p, nil)
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return false
	}
	return true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]httpx.ErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, httpx.ErrorDetail{Field: f.Field, Message: f.Message})
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
	case errors.Is(err, ErrInvalidInput):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrWrite):
		h.logger.Error("catalog write rejected",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
		httpx.JSONError(w, r, http.StatusInternalServerError, "WRITE_FAILED", "Write rejected by store",
			[]httpx.ErrorDetail{{Field: "store", Message: err.Error()}})
	default:
		h.logger.Error("catalog request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
