package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Naiem890/momentum/internal/database"
	"github.com/Naiem890/momentum/internal/insights"
	"github.com/Naiem890/momentum/internal/models"
	"github.com/Naiem890/momentum/internal/request"
	"github.com/Naiem890/momentum/internal/stats"
	"github.com/Naiem890/momentum/internal/streak"
	"github.com/Naiem890/momentum/internal/validation"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InsightsHandler serves the derived dashboard views: weekly rollup,
// yearly heatmap and the badge ladder.
type InsightsHandler struct {
	habitRepo database.HabitRepositoryInterface
	statsRepo database.StatsRepositoryInterface
	ladder    []insights.Badge
	logger    *zap.Logger
	now       func() time.Time
}

// NewInsightsHandler creates an insights handler. An empty ladder
// selects the built-in one.
func NewInsightsHandler(habitRepo database.HabitRepositoryInterface, statsRepo database.StatsRepositoryInterface, ladder []insights.Badge, logger *zap.Logger) *InsightsHandler {
	if len(ladder) == 0 {
		ladder = insights.DefaultLadder()
	}
	return &InsightsHandler{
		habitRepo: habitRepo,
		statsRepo: statsRepo,
		ladder:    ladder,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterRoutes registers insight routes on the given router
// The router should already have the /insights prefix
func (h *InsightsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/weekly", h.WeeklyView).Methods("GET")
	r.HandleFunc("/heatmap", h.HeatmapView).Methods("GET")
	r.HandleFunc("/milestones", h.MilestonesView).Methods("GET")
}

// MilestonesResponse carries the badge ladder evaluated against the
// caller's reconciled counters, plus the raw streak milestone thresholds.
type MilestonesResponse struct {
	Badges           []insights.BadgeProgress `json:"badges"`
	NextObjective    *insights.BadgeProgress  `json:"next_objective,omitempty"`
	StreakMilestones []int                    `json:"streak_milestones"`
}

// WeeklyView returns the rolling seven day completion rollup
func (h *InsightsHandler) WeeklyView(w http.ResponseWriter, r *http.Request) {
	habits, ok := h.loadHabits(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, insights.Weekly(habits, h.now()))
}

// HeatmapView returns per-day completion density for a calendar year
func (h *InsightsHandler) HeatmapView(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UserIDFromContext(r)
	if !ok {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Caller identity not found in context")
		return
	}

	now := h.now()
	year := now.Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed < 1970 || parsed > 9999 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid year")
			return
		}
		year = parsed
	}

	var category models.HabitCategory
	if c := r.URL.Query().Get("category"); c != "" {
		if err := validation.ValidateCategory(c); err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		category = models.HabitCategory(c)
	}

	habits, err := h.habitRepo.GetByUserID(r.Context(), userID, nil)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to retrieve habits")
		return
	}

	respondJSON(w, http.StatusOK, insights.Heatmap(habits, year, category, now))
}

// MilestonesView evaluates the badge ladder against freshly reconciled
// counters. The reconciliation here is read-only; persistence happens
// on the stats endpoint and in the background worker.
func (h *InsightsHandler) MilestonesView(w http.ResponseWriter, r *http.Request) {
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
	progress := insights.Evaluate(h.ladder, res.Stats.LongestStreak, res.Stats.TotalHabitsCompleted)

	response := MilestonesResponse{
		Badges:           progress,
		StreakMilestones: streak.Thresholds,
	}
	if next, ok := insights.NextObjective(progress); ok {
		response.NextObjective = &next
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *InsightsHandler) loadHabits(w http.ResponseWriter, r *http.Request) ([]*models.Habit, bool) {
	userID, ok := request.UserIDFromContext(r)
	if !ok {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Caller identity not found in context")
		return nil, false
	}

	habits, err := h.habitRepo.GetByUserID(r.Context(), userID, nil)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to retrieve habits")
		return nil, false
	}
	return habits, true
}
