package httpapi

import (
	"errors"
	"net/http"

	"spenttribe/internal/common"
)

type attachReceiptResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

func (s *Server) handleAttachReceipt(w http.ResponseWriter, r *http.Request) {

	if !s.receiptsEnabled {
		s.writeError(w, http.StatusNotFound, "Receipts are not enabled")
		return
	}

	id := r.PathValue("id")
	identity := identityFromContext(r.Context())

	key, uploadURL, err := s.receipts.Attach(r.Context(), id, identity.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeError(w, http.StatusNotFound, "Expense not found or unauthorized")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, attachReceiptResponse{Key: key, UploadURL: uploadURL})
}

func (s *Server) handleGetReceipt(w http.ResponseWriter, r *http.Request) {

	if !s.receiptsEnabled {
		s.writeError(w, http.StatusNotFound, "Receipts are not enabled")
		return
	}

	url, err := s.receipts.URL(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.writeError(w, http.StatusNotFound, "Receipt not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
