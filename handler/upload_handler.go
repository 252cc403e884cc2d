package handler

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tieubaoca/docsum-be/service"
	"github.com/tieubaoca/docsum-be/types"
)

type UploadHandler struct {
	documents *service.DocumentService
	files     *service.FileService
}

func NewUploadHandler(documents *service.DocumentService, files *service.FileService) *UploadHandler {
	return &UploadHandler{
		documents: documents,
		files:     files,
	}
}

// UploadDocumentHandler accepts one or many files under the "file" form
// field and returns their summary. A single file yields a narrative summary,
// several files are aggregated into the structured schema.
func (h *UploadHandler) UploadDocumentHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid multipart form",
		})
		return
	}
	fileHeaders := form.File["file"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "No file provided",
		})
		return
	}

	docs := make([]types.Document, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !types.IsAllowedExtension(ext) {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  false,
				Message: fmt.Sprintf("Unsupported file type for %s. Allowed types: %s", header.Filename, strings.Join(types.AllowedExtensions, ", ")),
			})
			return
		}

		data, err := readUpload(header)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.DataResponse{
				Status:  false,
				Message: fmt.Sprintf("Error reading %s: %v", header.Filename, err),
			})
			return
		}

		if h.files != nil {
			if _, err := h.files.SaveUpload(header.Filename, bytes.NewReader(data)); err != nil {
				log.Warn().Err(err).Str("file", header.Filename).Msg("failed to persist upload")
			}
		}

		docs = append(docs, types.Document{
			Name:      header.Filename,
			Data:      data,
			MediaType: types.MediaTypeFor(ext),
		})
	}

	result, err := h.documents.Process(c.Request.Context(), docs, types.SummarizeOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.SummaryResponse{Summary: result},
	})
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
