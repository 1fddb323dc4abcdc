package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/models"
)

type GetHandler struct {
	service service.GifServiceIface
	logger  *zap.Logger
}

func NewGet(s service.GifServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// List handles GET requests for a user's full GIF collection. Listing a
// user never seen before materializes an empty collection for them.
func (h *GetHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID := resolveUserID(req)
	if userID == "" {
		writeError(res, http.StatusBadRequest, "user ID is required")
		return
	}

	gifs, err := h.service.GetUserGifs(ctx, userID)
	if err != nil {
		h.logger.Error("cannot list gifs", zap.String("userID", userID), zap.Error(err))
		writeError(res, http.StatusInternalServerError, "failed to load gif catalog")
		return
	}

	writeJSON(res, http.StatusOK, models.ListResponse{
		Success: true,
		Data:    gifs,
		Count:   len(gifs),
		UserID:  userID,
	})
}

// Search handles GET requests filtering a user's GIFs by a
// case-insensitive substring of the title or any tag. An empty query
// returns the full collection.
func (h *GetHandler) Search(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID := resolveUserID(req)
	if userID == "" {
		writeError(res, http.StatusBadRequest, "user ID is required")
		return
	}

	query := strings.ToLower(req.URL.Query().Get("q"))

	gifs, err := h.service.Search(ctx, userID, query)
	if err != nil {
		h.logger.Error("cannot search gifs", zap.String("userID", userID), zap.Error(err))
		writeError(res, http.StatusInternalServerError, "failed to search gif catalog")
		return
	}

	writeJSON(res, http.StatusOK, models.ListResponse{
		Success: true,
		Data:    gifs,
		Count:   len(gifs),
		Query:   query,
		UserID:  userID,
	})
}

// Ping reports storage connectivity.
func (h *GetHandler) Ping(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Health reports service liveness.
func (h *GetHandler) Health(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, models.HealthResponse{
		Success:   true,
		Message:   "gif catalog server is running",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
