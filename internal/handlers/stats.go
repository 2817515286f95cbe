package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Naiem890/momentum/internal/database"
	"github.com/Naiem890/momentum/internal/models"
	"github.com/Naiem890/momentum/internal/request"
	"github.com/Naiem890/momentum/internal/stats"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// StatsHandler serves the reconciled per-user summary counters.
type StatsHandler struct {
	habitRepo database.HabitRepositoryInterface
	statsRepo database.StatsRepositoryInterface
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(habitRepo database.HabitRepositoryInterface, statsRepo database.StatsRepositoryInterface, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		habitRepo: habitRepo,
		statsRepo: statsRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterRoutes registers stats routes on the given router
func (h *StatsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.GetStats).Methods("GET")
}

// GetStats rebuilds the summary from the habit collection and persists
// the result. Stored counters are never trusted on read; they only seed
// the longest streak merge.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UserIDFromContext(r)
	if !ok {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Caller identity not found in context")
		return
	}

	habits, err := h.habitRepo.GetByUserID(r.Context(), userID, nil)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to retrieve habits")
		return
	}

	prev := models.UserStats{UserID: userID}
	if stored, err := h.statsRepo.Get(r.Context(), userID); err == nil {
		prev = *stored
	} else if !errors.Is(err, database.ErrNotFound) {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to retrieve stats")
		return
	}

	res := stats.Reconcile(habits, prev, h.now())

	for _, habit := range res.Corrected {
		if err := h.habitRepo.Update(r.Context(), habit); err != nil {
			h.logger.Error("failed_to_persist_corrected_streak",
				zap.String("habit_id", habit.ID.String()),
				zap.Error(err),
			)
		}
	}

	res.Stats.UserID = userID
	if err := h.statsRepo.Upsert(r.Context(), &res.Stats); err != nil {
		h.logger.Error("failed_to_persist_reconciled_stats",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}

	respondJSON(w, http.StatusOK, res.Stats)
}
