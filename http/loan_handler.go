package http

import (
	"net/http"

	"property-returns/domain"
	"property-returns/service"
)

type LoanHandler struct {
	service *service.AnalysisService
}

func NewLoanHandler(service *service.AnalysisService) *LoanHandler {
	return &LoanHandler{service: service}
}

// SummarizeLoan returns the financing summary for a property purchase.
func (h *LoanHandler) SummarizeLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalysisInput
	if !decodeInput(w, r, &input) {
		return
	}

	result, err := h.service.Loan(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}
