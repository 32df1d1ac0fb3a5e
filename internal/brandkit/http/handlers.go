package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
	"github.com/brandkit-studio/brandkit-backend/internal/logging"
)

// Category strings returned to callers. Internal detail never leaves the server.
const (
	msgInvalidBody    = "invalid request body"
	msgTooLarge       = "request body too large"
	msgProjectCreate  = "Project creation failed"
	msgGenerationCall = "AI generation failed"
	msgGenerationJSON = "AI JSON parse failed"
	msgKitSave        = "Saving brand kit failed"
	msgKitsRead       = "Fetching brand kits failed"
	msgInternal       = "Internal server error"
)

// GenerateBrandKit runs the pipeline and returns the kit document itself.
func (h *Handler) GenerateBrandKit(c *gin.Context) {
	var req domain.BrandRequest
	// An empty body is treated as an empty object so it fails validation, not decoding.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": msgTooLarge})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	res, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		status, msg := statusFor(c, err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, res.Kit.Result)
}

// ListKits returns the user's projects, newest first, each with its kit or null.
func (h *Handler) ListKits(c *gin.Context) {
	userID := c.Param("userId")

	items, err := h.svc.ListKits(c.Request.Context(), userID)
	if err != nil {
		status, msg := statusFor(c, err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, items)
}

func statusFor(c *gin.Context, err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, domain.ErrValidation.Error()
	case errors.Is(err, domain.ErrProjectCreate):
		return http.StatusInternalServerError, msgProjectCreate
	case errors.Is(err, domain.ErrGenerationParse):
		return http.StatusInternalServerError, msgGenerationJSON
	case errors.Is(err, domain.ErrGenerationCall):
		return http.StatusInternalServerError, msgGenerationCall
	case errors.Is(err, domain.ErrKitSave):
		return http.StatusInternalServerError, msgKitSave
	case errors.Is(err, domain.ErrKitsRead):
		return http.StatusInternalServerError, msgKitsRead
	default:
		logging.FromContext(c.Request.Context()).Error("unclassified pipeline error", zap.Error(err))
		return http.StatusInternalServerError, msgInternal
	}
}
