package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Naiem890/momentum/internal/database"
	"github.com/Naiem890/momentum/internal/models"
	"github.com/Naiem890/momentum/internal/queue"
	"github.com/Naiem890/momentum/internal/request"
	"github.com/Naiem890/momentum/internal/tracker"
	"github.com/Naiem890/momentum/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	// MaxTitleLength is the maximum length for a habit title
	MaxTitleLength = 200
	// MaxDescriptionLength is the maximum length for a habit description
	MaxDescriptionLength = 2000
	// reconcileDebounce delays stats reconciliation so bursts of toggles
	// collapse into one rebuild.
	reconcileDebounce = 5 * time.Second
)

// HabitHandler handles habit-related requests
type HabitHandler struct {
	habitRepo database.HabitRepositoryInterface
	jobQueue  queue.JobQueue
	logger    *zap.Logger
	now       func() time.Time
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(habitRepo database.HabitRepositoryInterface, jobQueue queue.JobQueue, logger *zap.Logger) *HabitHandler {
	return &HabitHandler{
		habitRepo: habitRepo,
		jobQueue:  jobQueue,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterRoutes registers habit routes on the given router
// The router should already have the /habits prefix (e.g., from apiRouter.PathPrefix("/habits"))
func (h *HabitHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListHabits).Methods("GET")
	r.HandleFunc("", h.CreateHabit).Methods("POST")
	r.HandleFunc("/{id}", h.GetHabit).Methods("GET")
	r.HandleFunc("/{id}", h.UpdateHabit).Methods("PATCH")
	r.HandleFunc("/{id}", h.DeleteHabit).Methods("DELETE")
	r.HandleFunc("/{id}/toggle", h.ToggleHabit).Methods("POST")
	r.HandleFunc("/{id}/progress", h.RecordProgress).Methods("POST")
	r.HandleFunc("/{id}/complete", h.CompleteTask).Methods("POST")
	r.HandleFunc("/{id}/restore", h.RestoreTask).Methods("POST")
}

// CreateHabitRequest represents a create habit request
type CreateHabitRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	Category     string `json:"category" validate:"required,habit_category"`
	IsStreakable *bool  `json:"is_streakable,omitempty"`
	TargetTime   int    `json:"target_time" validate:"gte=0,lte=1440"`
}

// UpdateHabitRequest represents an update habit request
type UpdateHabitRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	TargetTime  *int    `json:"target_time,omitempty"`
}

// ProgressRequest carries the accumulated minutes for today
type ProgressRequest struct {
	Minutes int `json:"minutes" validate:"gte=0"`
}

// ListHabitsResponse partitions the collection into active and archived
type ListHabitsResponse struct {
	Active   []*models.Habit `json:"active"`
	Archived []*models.Habit `json:"archived"`
}

// TransitionResponse pairs the mutated habit with the transition outcome
type TransitionResponse struct {
	Habit          *models.Habit `json:"habit"`
	CompletedToday bool          `json:"completed_today"`
	Changed        bool          `json:"changed"`
	Streak         int           `json:"streak"`
	Milestone      int           `json:"milestone,omitempty"`
}

// ListHabits lists the caller's habits, partitioned into active and
// archived, optionally filtered by category
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UserIDFromContext(r)
	if !ok {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Caller identity not found in context")
		return
	}

	var category *models.HabitCategory
	if c := r.URL.Query().Get("category"); c != "" {
		if err := validation.ValidateCategory(c); err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		cEnum := models.HabitCategory(c)
		category = &cEnum
	}

	partition := r.URL.Query().Get("partition")
	switch partition {
	case "", "all", "active", "archived":
	default:
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Partition must be 'active', 'archived' or 'all'")
		return
	}

	habits, err := h.habitRepo.GetByUserID(r.Context(), userID, category)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to retrieve habits")
		return
	}

	response := ListHabitsResponse{
		Active:   []*models.Habit{},
		Archived: []*models.Habit{},
	}
	for _, habit := range habits {
		if habit.Archived() {
			if partition == "" || partition == "all" || partition == "archived" {
				response.Archived = append(response.Archived, habit)
			}
		} else if partition == "" || partition == "all" || partition == "active" {
			response.Active = append(response.Active, habit)
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// CreateHabit creates a new habit
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UserIDFromContext(r)
	if !ok {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Caller identity not found in context")
		return
	}

	var req CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if err := validation.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Validation failed: %s", fieldError.Error()))
				return
			}
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return
	}

	req.Title = validation.SanitizeText(req.Title)
	if req.Title == "" {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Title is required and cannot be empty after sanitization")
		return
	}
	req.Description = validation.SanitizeText(req.Description)

	// Streakable by default; one-time tasks opt out explicitly
	isStreakable := true
	if req.IsStreakable != nil {
		isStreakable = *req.IsStreakable
	}

	if !isStreakable && req.TargetTime > 0 {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "One-time tasks cannot have a time target")
		return
	}

	habit := &models.Habit{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     models.HabitCategory(req.Category),
		IsStreakable: isStreakable,
		TargetTime:   req.TargetTime,
	}

	if err := h.habitRepo.Create(r.Context(), habit); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to create habit")
		return
	}

	respondJSON(w, http.StatusCreated, habit)
}

// GetHabit retrieves a habit by ID
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	habit, ok := h.loadOwnedHabit(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, habit)
}

// UpdateHabit updates a habit's descriptive fields. Completion state
// transitions only through the toggle, progress, complete and restore
// operations.
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	habit, ok := h.loadOwnedHabit(w, r)
	if !ok {
		return
	}

	var req UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if req.Title != nil {
		sanitized := validation.SanitizeText(*req.Title)
		if sanitized == "" {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "Title cannot be empty after sanitization")
			return
		}
		if len(sanitized) > MaxTitleLength {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Title exceeds maximum length of %d characters", MaxTitleLength))
			return
		}
		habit.Title = sanitized
	}
	if req.Description != nil {
		sanitized := validation.SanitizeText(*req.Description)
		if len(sanitized) > MaxDescriptionLength {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Description exceeds maximum length of %d characters", MaxDescriptionLength))
			return
		}
		habit.Description = sanitized
	}
	if req.Category != nil {
		if err := validation.ValidateCategory(*req.Category); err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		habit.Category = models.HabitCategory(*req.Category)
	}
	if req.TargetTime != nil {
		if *req.TargetTime < 0 || *req.TargetTime > models.MaxDailyMinutes {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Target time must be between 0 and %d minutes", models.MaxDailyMinutes))
			return
		}
		if !habit.IsStreakable && *req.TargetTime > 0 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "One-time tasks cannot have a time target")
			return
		}
		habit.TargetTime = *req.TargetTime
	}

	if err := h.habitRepo.Update(r.Context(), habit); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to update habit")
		return
	}

	respondJSON(w, http.StatusOK, habit)
}

// DeleteHabit deletes a habit
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	habit, ok := h.loadOwnedHabit(w, r)
	if !ok {
		return
	}

	if err := h.habitRepo.Delete(r.Context(), habit.ID); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to delete habit")
		return
	}

	h.enqueueReconcile(r, habit.UserID, habit.ID)

	w.WriteHeader(http.StatusNoContent)
}

// ToggleHabit flips today's completion state for a binary habit
func (h *HabitHandler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	habit, ok := h.loadOwnedHabit(w, r)
	if !ok {
		return
	}

	tr, err := tracker.Toggle(habit, h.now())
	if err != nil {
		respondJSONError(w, http.StatusConflict, "Conflict", err.Error())
		return
	}

	if err := h.habitRepo.Update(r.Context(), habit); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to save habit")
		return
	}

	h.enqueueReconcile(r, habit.UserID, habit.ID)

	if tr.Milestone > 0 {
		h.logger.Info("milestone_reached",
			zap.String("habit_id", habit.ID.String()),
			zap.Int("milestone", tr.Milestone),
		)
	}

	respondJSON(w, http.StatusOK, TransitionResponse{
		Habit:          habit,
		CompletedToday: tr.CompletedToday,
		Changed:        tr.Changed,
		Streak:         tr.Streak,
		Milestone:      tr.Milestone,
	})
}

// RecordProgress records today's accumulated minutes for a time-based habit
func (h *HabitHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	habit, ok := h.loadOwnedHabit(w, r)
	if !ok {
		return
	}

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	tr, err := tracker.ApplyProgress(habit, req.Minutes, h.now())
	if err != nil {
		if errors.Is(err, tracker.ErrNegativeMinutes) {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		respondJSONError(w, http.StatusConflict, "Conflict", err.Error())
		return
	}

	if err := h.habitRepo.Update(r.Context(), habit); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to save habit")
		return
	}

	h.enqueueReconcile(r, habit.UserID, habit.ID)

	respondJSON(w, http.StatusOK, TransitionResponse{
		Habit:          habit,
		CompletedToday: tr.CompletedToday,
		Changed:        tr.Changed,
		Streak:         tr.Streak,
		Milestone:      tr.Milestone,
	})
}

// CompleteTask archives a one-time task
func (h *HabitHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	habit, ok := h.loadOwnedHabit(w, r)
	if !ok {
		return
	}

	if err := tracker.Complete(habit, h.now()); err != nil {
		respondJSONError(w, http.StatusConflict, "Conflict", err.Error())
		return
	}

	if err := h.habitRepo.Update(r.Context(), habit); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to save habit")
		return
	}

	respondJSON(w, http.StatusOK, habit)
}

// RestoreTask returns an archived one-time task to the active set
func (h *HabitHandler) RestoreTask(w http.ResponseWriter, r *http.Request) {
	habit, ok := h.loadOwnedHabit(w, r)
	if !ok {
		return
	}

	if err := tracker.Restore(habit); err != nil {
		respondJSONError(w, http.StatusConflict, "Conflict", err.Error())
		return
	}

	if err := h.habitRepo.Update(r.Context(), habit); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to save habit")
		return
	}

	respondJSON(w, http.StatusOK, habit)
}

// loadOwnedHabit resolves the {id} path variable and enforces ownership.
// On failure it writes the error response and returns ok=false.
func (h *HabitHandler) loadOwnedHabit(w http.ResponseWriter, r *http.Request) (*models.Habit, bool) {
	userID, ok := request.UserIDFromContext(r)
	if !ok {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Caller identity not found in context")
		return nil, false
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid habit ID")
		return nil, false
	}

	habit, err := h.habitRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondJSONError(w, http.StatusNotFound, "Not Found", "Habit not found")
			return nil, false
		}
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to retrieve habit")
		return nil, false
	}

	if habit.UserID != userID {
		respondJSONError(w, http.StatusForbidden, "Forbidden", "Habit does not belong to user")
		return nil, false
	}

	return habit, true
}

// enqueueReconcile schedules a debounced stats rebuild for the user.
// Failures are logged, never surfaced; the next mutation or stats read
// will reconcile anyway.
func (h *HabitHandler) enqueueReconcile(r *http.Request, userID, habitID uuid.UUID) {
	if h.jobQueue == nil {
		return
	}

	job := queue.NewJob(queue.JobTypeStatsReconcile, userID, &habitID)
	notBefore := h.now().Add(reconcileDebounce)
	job.NotBefore = &notBefore

	if err := h.jobQueue.Enqueue(r.Context(), job); err != nil {
		h.logger.Error("failed_to_enqueue_stats_reconcile_job",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return
	}

	h.logger.Debug("enqueued_stats_reconcile_job",
		zap.String("user_id", userID.String()),
		zap.Duration("debounce_delay", reconcileDebounce),
	)
}
