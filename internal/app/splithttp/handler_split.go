package splithttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/yourname/audiosplit_lite/internal/models"
	"github.com/yourname/audiosplit_lite/pkg/httperrors"
)

const uploadFieldName = "file"

// postSplit принимает multipart-загрузку и полностью делегирует нарезку сервису.
func (s *Server) postSplit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxUploadMB<<20)

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperrors.WriteDetail(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		httperrors.WriteDetail(w, http.StatusBadRequest, fmt.Sprintf("multipart field %q is required", uploadFieldName))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperrors.WriteDetail(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		httperrors.Write(w, fmt.Errorf("%w: %v", models.ErrFileSave, err))
		return
	}

	res, err := s.SplitService.Split(r.Context(), models.Upload{
		FileName: header.Filename,
		Content:  content,
	})
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
