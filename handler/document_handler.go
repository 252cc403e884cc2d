package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/docsum-be/types"
	"github.com/tieubaoca/docsum-be/utils"
)

// DocumentHandler serves previously uploaded documents back to the client.
type DocumentHandler struct {
	uploadDir string
}

func NewDocumentHandler(uploadDir string) *DocumentHandler {
	return &DocumentHandler{
		uploadDir: uploadDir,
	}
}

// ServeDocument looks up a stored upload by its original name. Uploads are
// stored with a timestamp suffix, so the handler matches on the base name.
func (h *DocumentHandler) ServeDocument(c *gin.Context) {
	requestedName := c.Query("file")
	if requestedName == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File parameter is required",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(requestedName))
	if !types.IsAllowedExtension(ext) {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Unsupported file type",
		})
		return
	}

	actualFile, err := h.findFileWithTimestamp(requestedName, ext)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "File not found",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", requestedName))
	c.File(filepath.Join(h.uploadDir, actualFile))
}

func (h *DocumentHandler) findFileWithTimestamp(requestedName, ext string) (string, error) {
	files, err := os.ReadDir(h.uploadDir)
	if err != nil {
		return "", err
	}

	baseName := utils.SanitizeFileName(utils.FileNameWithoutExt(requestedName))
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ext) {
			continue
		}

		nameWithoutExt := utils.FileNameWithoutExt(name)
		if nameWithoutExt == baseName {
			return name, nil
		}

		// Stored names end in "_<unix timestamp>".
		lastUnderscoreIdx := strings.LastIndex(nameWithoutExt, "_")
		if lastUnderscoreIdx == -1 {
			continue
		}
		timestampPart := nameWithoutExt[lastUnderscoreIdx+1:]
		fileBaseName := nameWithoutExt[:lastUnderscoreIdx]

		if len(timestampPart) == 10 || len(timestampPart) == 13 {
			if _, err := strconv.ParseInt(timestampPart, 10, 64); err == nil {
				if fileBaseName == baseName {
					return name, nil
				}
			}
		}
	}

	return "", fmt.Errorf("file not found: %s", requestedName)
}
