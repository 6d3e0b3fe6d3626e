package controllers

import (
	"io"
	"net/http"
	"strings"

	"plume/middleware"
	"plume/models"
	"plume/policy"
	"plume/storage"

	"github.com/gin-gonic/gin"
)

// maxImageSize caps uploads at 5 MiB.
const maxImageSize = 5 << 20

type UploadController struct {
	uploader storage.Uploader
}

func NewUploadController(uploader storage.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadImage godoc
// @Summary Upload a cover image
// @Description Accepts a multipart "image" field up to 5 MiB; returns the stored URL and reference.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} storage.UploadResult
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /uploads/image [post]
func (uc *UploadController) UploadImage(c *gin.Context) {
	caller := policy.CallerFor(middleware.CurrentUser(c))
	if err := policy.Decide(caller, policy.Resource{}, policy.UploadImage); err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, models.Invalid("no image file provided"))
		return
	}
	if fileHeader.Size > maxImageSize {
		respondError(c, models.Invalid("file too large, maximum 5MB"))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		respondError(c, models.Invalid("only image files are allowed"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, models.Invalid("invalid file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil || len(data) > maxImageSize {
		respondError(c, models.Invalid("file too large, maximum 5MB"))
		return
	}

	result, err := uc.uploader.Upload(c.Request.Context(), data, mimeType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
