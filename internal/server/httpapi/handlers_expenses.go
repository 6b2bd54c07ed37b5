package httpapi

import (
	"errors"
	"net/http"

	"spenttribe/internal/common"
	"spenttribe/internal/server/expenses"
)

type createExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {

	month := r.URL.Query().Get("month")

	list, err := s.expenses.List(r.Context(), month)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			s.writeError(w, http.StatusBadRequest, "Invalid month format (YYYY-MM)")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {

	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount == 0 || req.Category == "" || req.Date == "" {
		s.writeError(w, http.StatusBadRequest, "Amount, category, and date are required")
		return
	}

	date, err := expenses.ParseDate(req.Date)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return
	}

	identity := identityFromContext(r.Context())

	created, err := s.expenses.Create(r.Context(), identity.UserID, req.Amount, req.Description, req.Category, date)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {

	id := r.PathValue("id")
	identity := identityFromContext(r.Context())

	if err := s.expenses.Delete(r.Context(), id, identity.UserID); err != nil {
		// absent and foreign rows answer identically
		if errors.Is(err, common.ErrorNotFound) {
			s.writeError(w, http.StatusNotFound, "Expense not found or unauthorized")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}
