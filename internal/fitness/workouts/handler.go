package workouts

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/fitness/exercises"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type workoutsRepo interface {
	Add(ctx context.Context, workout *Workout) (*Workout, error)
	List(ctx context.Context, userID int) ([]Workout, error)
	ListForExercise(ctx context.Context, exerciseID, userID int) ([]Workout, error)
	Get(ctx context.Context, id, userID int) (*Workout, error)
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id, userID int) error
}

type exerciseGetter interface {
	Get(ctx context.Context, id, userID int) (*exercises.Exercise, error)
}

type Handler struct {
	repo          workoutsRepo
	exercisesRepo exerciseGetter
	metrics       *metrics.Manager
}

func NewHandler(repo workoutsRepo, exercisesRepo exerciseGetter, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:          repo,
		exercisesRepo: exercisesRepo,
		metrics:       metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleAdd).Methods("POST").Name("add-workout")
	router.HandleFunc("", handler.HandleList).Methods("GET").Name("list-workouts")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("get-workout")
	router.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT").Name("update-workout")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-workout")
}

// workoutPayload keeps weight and reps as raw strings, blank input and
// malformed numbers are rejected before anything hits the DB.
type workoutPayload struct {
	ExerciseID int    `json:"exerciseId"`
	Weight     string `json:"weight"`
	Unit       string `json:"unit"`
	Reps       string `json:"reps"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var payload workoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Errorf("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	kilos, err := ParseWeight(payload.Weight, payload.Unit)
	if err != nil {
		http.Error(w, "error, weight missing or invalid", http.StatusBadRequest)
		return
	}

	reps, err := strconv.Atoi(payload.Reps)
	if err != nil || reps <= 0 {
		http.Error(w, "error, reps missing or invalid", http.StatusBadRequest)
		return
	}

	// the exercise must exist and belong to the caller
	if _, err := handler.exercisesRepo.Get(r.Context(), payload.ExerciseID, userID); err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("add workout, get exercise %d: %s", payload.ExerciseID, err)
		http.Error(w, "failed to add workout", http.StatusInternalServerError)
		return
	}

	added, err := handler.repo.Add(r.Context(), &Workout{
		ExerciseID: payload.ExerciseID,
		Kilos:      kilos,
		Reps:       reps,
		UserID:     userID,
	})
	if err != nil {
		log.Errorf("add workout for user %d: %s", userID, err)
		http.Error(w, "failed to add workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsAdded.Inc()

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal workout error: %s", err)
		http.Error(w, "workout marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var (
		workouts []Workout
		err      error
	)
	if exerciseIDParam := r.URL.Query().Get("exercise_id"); exerciseIDParam != "" {
		exerciseID, convErr := strconv.Atoi(exerciseIDParam)
		if convErr != nil {
			http.Error(w, "error, exercise_id NaN", http.StatusBadRequest)
			return
		}
		workouts, err = handler.repo.ListForExercise(r.Context(), exerciseID, userID)
	} else {
		workouts, err = handler.repo.List(r.Context(), userID)
	}
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "workouts marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(workoutsJson))
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout error: %s", err)
		http.Error(w, "workout marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(workoutJson))
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var payload workoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	kilos, err := ParseWeight(payload.Weight, payload.Unit)
	if err != nil {
		http.Error(w, "error, weight missing or invalid", http.StatusBadRequest)
		return
	}

	reps, err := strconv.Atoi(payload.Reps)
	if err != nil || reps <= 0 {
		http.Error(w, "error, reps missing or invalid", http.StatusBadRequest)
		return
	}

	err = handler.repo.Update(r.Context(), &Workout{
		ID:     id,
		Kilos:  kilos,
		Reps:   reps,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout %d: %s", id, err)
		http.Error(w, "failed to update workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %d: %s", id, err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
