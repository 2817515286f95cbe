package handlers

import (
	"net/http"

	"github.com/Naiem890/momentum/internal/services/quote"
	"github.com/gorilla/mux"
)

// QuoteHandler serves the daily motivational quote.
type QuoteHandler struct {
	service *quote.Service
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(service *quote.Service) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// RegisterRoutes registers quote routes on the given router
func (h *QuoteHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.GetQuote).Methods("GET")
}

// GetQuote returns the quote of the day
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Daily(r.Context()))
}
