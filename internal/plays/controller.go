package plays

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"stagely/internal/shared/config"
	"stagely/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Controller struct {
	service Service
	cfg     *config.Config
}

func NewController(service Service, cfg *config.Config) *Controller {
	return &Controller{service: service, cfg: cfg}
}

func (ctrl *Controller) CreatePlay(c *gin.Context) {
	var req CreatePlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	play, err := ctrl.service.CreatePlay(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnknownGenreID) || errors.Is(err, ErrUnknownActorID) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid references", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create play", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Play created successfully", play, nil)
}

func (ctrl *Controller) GetPlays(c *gin.Context) {
	var query PlayListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	plays, err := ctrl.service.GetPlays(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, ErrInvalidIDFilter) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid filter values", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch plays", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Plays fetched successfully", plays, nil)
}

func (ctrl *Controller) GetPlayByID(c *gin.Context) {
	id := c.Param("id")

	play, err := ctrl.service.GetPlayByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPlayNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Play not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch play", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Play fetched successfully", play, nil)
}

func (ctrl *Controller) UpdatePlay(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	play, err := ctrl.service.UpdatePlay(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlayNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Play not found", nil, err.Error())
		case errors.Is(err, ErrUnknownGenreID), errors.Is(err, ErrUnknownActorID):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid references", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update play", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Play updated successfully", play, nil)
}

// UploadImage stores a poster image on disk and records its public URL
// on the play. Files land under the configured upload path, named by
// play ID so a re-upload replaces the old poster.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	id := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Image file is required", nil, err.Error())
		return
	}

	if file.Size > ctrl.cfg.Upload.MaxSize {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			fmt.Sprintf("Image exceeds maximum size of %d bytes", ctrl.cfg.Upload.MaxSize), nil, nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Unsupported image format", nil, nil)
		return
	}

	if err := os.MkdirAll(ctrl.cfg.Upload.Path, 0o755); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to store image", nil, err.Error())
		return
	}

	filename := fmt.Sprintf("%s-%s%s", id, uuid.New().String()[:8], ext)
	dst := filepath.Join(ctrl.cfg.Upload.Path, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to store image", nil, err.Error())
		return
	}

	imageURL := "/uploads/" + filename
	result, err := ctrl.service.SetPlayImage(c.Request.Context(), id, imageURL)
	if err != nil {
		os.Remove(dst)
		if errors.Is(err, ErrPlayNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Play not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to save image", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Image uploaded successfully", result, nil)
}

func (ctrl *Controller) DeletePlay(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.service.DeletePlay(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPlayNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Play not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete play", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Play deleted successfully", nil, nil)
}
