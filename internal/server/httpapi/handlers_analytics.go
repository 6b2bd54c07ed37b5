package httpapi

import (
	"errors"
	"net/http"

	"spenttribe/internal/common"
)

func (s *Server) handleMonthlyAnalytics(w http.ResponseWriter, r *http.Request) {

	month := r.URL.Query().Get("month")
	if month == "" {
		s.writeError(w, http.StatusBadRequest, "Month is required (YYYY-MM)")
		return
	}

	report, err := s.analytics.Monthly(r.Context(), month)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			s.writeError(w, http.StatusBadRequest, "Invalid month format (YYYY-MM)")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}
