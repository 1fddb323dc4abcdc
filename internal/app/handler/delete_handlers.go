package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/models"
	"github.com/chlee-dev/gif-catalog/internal/storage"
)

type DeleteHandler struct {
	service service.GifServiceIface
	logger  *zap.Logger
}

func NewDelete(s service.GifServiceIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// Delete handles DELETE requests removing one GIF from a user's
// catalog. The asset files are cleaned up in the background; only the
// catalog mutation decides the response.
func (h *DeleteHandler) Delete(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID := resolveUserID(req)
	if userID == "" {
		writeError(res, http.StatusBadRequest, "user ID is required")
		return
	}

	gifID := chi.URLParam(req, "gifID")

	removed, err := h.service.DeleteGif(ctx, userID, gifID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(res, http.StatusNotFound, "gif not found for this user")
			return
		}
		h.logger.Error("cannot delete gif", zap.String("userID", userID), zap.String("gifID", gifID), zap.Error(err))
		writeError(res, http.StatusInternalServerError, "failed to save gif catalog")
		return
	}

	writeJSON(res, http.StatusOK, models.DeleteResponse{
		Success:    true,
		Message:    "gif deleted successfully",
		DeletedGif: removed,
	})
}
