package http

import (
	"net/http"

	"property-returns/domain"
	"property-returns/service"
)

type AnalysisHandler struct {
	service *service.AnalysisService
}

func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalysisInput
	if !decodeInput(w, r, &input) {
		return
	}

	result, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

func (h *AnalysisHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalysisInput
	if !decodeInput(w, r, &input) {
		return
	}

	results, err := h.service.Scenarios(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, results)
}

func (h *AnalysisHandler) Sensitivity(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalysisInput
	if !decodeInput(w, r, &input) {
		return
	}

	grid, err := h.service.Sensitivity(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, grid)
}

func (h *AnalysisHandler) PropertyTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.service.PropertyTypeDefaults())
}
