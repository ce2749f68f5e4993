package exercises

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type exercisesRepo interface {
	Add(ctx context.Context, userID int, name string) (*Exercise, error)
	Get(ctx context.Context, id, userID int) (*Exercise, error)
	List(ctx context.Context, userID int) ([]Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id, userID int) error
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleAdd).Methods("POST").Name("add-exercise")
	router.HandleFunc("", handler.HandleList).Methods("GET").Name("list-exercises")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("get-exercise")
	router.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT").Name("update-exercise")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-exercise")
}

type exercisePayload struct {
	Name string `json:"name"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var payload exercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Add(r.Context(), userID, name)
	if err != nil {
		if errors.Is(err, ErrDuplicateExercise) {
			http.Error(w, "exercise already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add exercise [%s] for user %d: %s", name, userID, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal exercise error: %s", err)
		http.Error(w, "exercise marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exercises, err := handler.repo.List(r.Context(), userID)
	if err != nil {
		log.Errorf("list exercises for user %d: %s", userID, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "exercises marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(exercisesJson))
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

	exercise, err := handler.repo.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal exercise error: %s", err)
		http.Error(w, "exercise marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(exerciseJson))
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

	var payload exercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	err = handler.repo.Update(r.Context(), &Exercise{
		ID:     id,
		Name:   name,
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrDuplicateExercise):
			http.Error(w, "exercise already exists", http.StatusConflict)
		default:
			log.Errorf("update exercise %d: %s", id, err)
			http.Error(w, "failed to update exercise", http.StatusInternalServerError)
		}
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
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise %d: %s", id, err)
		http.Error(w, "failed to delete exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
