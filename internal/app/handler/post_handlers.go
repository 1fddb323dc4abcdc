package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/models"
)

type PostHandler struct {
	service service.GifServiceIface
	logger  *zap.Logger
}

func NewPost(s service.GifServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// Create handles POST requests adding a GIF to a user's catalog.
// Title and tags are required; an inline base64 payload is written to
// disk before the record is appended, and a failed write aborts the
// whole operation.
func (h *PostHandler) Create(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Second)
	defer cancel()

	var request models.CreateGifRequest

	if err := decodeJSONBody(res, req, &request); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeError(res, mr.status, mr.msg)
			return
		}
		h.logger.Error("cannot decode create request", zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	userID := resolveUserID(req)
	if userID == "" {
		// Last resort: the identity may ride in the payload itself.
		userID = request.UserID
	}
	if userID == "" {
		writeError(res, http.StatusBadRequest, "user ID is required")
		return
	}

	record, err := h.service.CreateGif(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(res, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAssetWrite):
			writeError(res, http.StatusInternalServerError, "failed to store gif file")
		default:
			h.logger.Error("cannot create gif", zap.String("userID", userID), zap.Error(err))
			writeError(res, http.StatusInternalServerError, "failed to save gif catalog")
		}
		return
	}

	writeJSON(res, http.StatusOK, models.CreateResponse{
		Success: true,
		Message: "gif added successfully",
		Data:    record,
	})
}
