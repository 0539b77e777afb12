package loader

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	svc    *Service
	secret string
	logger *zap.Logger
}

func NewHTTPHandler(svc *Service, secret string, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, secret: secret, logger: logger}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("POST /internal/jobs/seed", httpx.InternalSecretMiddleware(h.secret)(http.HandlerFunc(h.Seed)))
}

type seedRequest struct {
	Books []SeedBook `json:"books"`
}

// Seed handles POST /internal/jobs/seed
// @Summary Trigger catalog seeding
// @Description Seed publishers, authors, categories and books. Without a body the sample catalog is used.
// @Tags internal
// @Accept json
// @Produce json
// @Param X-Internal-Secret header string true "Internal secret for authentication"
// @Param body body seedRequest false "Books to seed"
// @Success 200 {object} httpx.SuccessResponse{data=Report}
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /internal/jobs/seed [post]
func (h *HTTPHandler) Seed(w http.ResponseWriter, r *http.Request) {
	books := SampleCatalog()

	var req seedRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return
	case len(req.Books) > 0:
		books = req.Books
	}

	h.logger.Info("seed job triggered", zap.Int("books", len(books)), zap.String("request_id", httpx.RequestIDFrom(r)))
	report := h.svc.Run(r.Context(), books)
	httpx.JSONSuccess(w, r, report, nil)
}
