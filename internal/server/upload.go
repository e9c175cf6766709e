package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
)

const maxUploadSize = 10 << 20 // 10 MiB

// handleUpload forwards a multipart file to the media host and returns the
// hosted URL.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondJSON(w, http.StatusBadRequest, model.Response{
			Success: false,
			Message: "No file uploaded",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, model.Response{
			Success: false,
			Message: "No file uploaded",
		})
		return
	}
	defer file.Close()

	url, err := s.uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		s.logger.Error("upload failed", zap.String("filename", header.Filename), zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, model.Response{
			Success: false,
			Message: "Upload failed",
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, model.Response{
		Success: true,
		Data:    map[string]string{"url": url},
	})
}
