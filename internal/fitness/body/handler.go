package body

//go:generate mockgen -source=$GOFILE -destination=body_mocks_test.go -package=body_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type bodyRepo interface {
	Add(ctx context.Context, entry *Entry) (*Entry, error)
	List(ctx context.Context, userID int) ([]Entry, error)
	Get(ctx context.Context, id, userID int) (*Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id, userID int) error
}

type entryNormalizer interface {
	NormalizeAdd(ctx context.Context, userID int, rawHeight, rawWeight string) (height, weight float64, err error)
	NormalizeUpdate(rawHeight, rawWeight string) (height, weight float64, err error)
}

type Handler struct {
	repo       bodyRepo
	normalizer entryNormalizer
	metrics    *metrics.Manager
}

func NewHandler(repo bodyRepo, normalizer entryNormalizer, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:       repo,
		normalizer: normalizer,
		metrics:    metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleAdd).Methods("POST").Name("add-body-entry")
	router.HandleFunc("", handler.HandleList).Methods("GET").Name("list-body-entries")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("get-body-entry")
	router.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT").Name("update-body-entry")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-body-entry")
}

// entryPayload carries raw string fields on purpose: blank vs. zero is a
// meaningful difference for the defaulting rules.
type entryPayload struct {
	Height string `json:"height"`
	Weight string `json:"weight"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Errorf("add body entry, unmarshal json params: %s", err)
		http.Error(w, "add body entry failed", http.StatusBadRequest)
		return
	}

	height, weight, err := handler.normalizer.NormalizeAdd(r.Context(), userID, payload.Height, payload.Weight)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			http.Error(w, "error, both fields empty", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidNumber):
			http.Error(w, "error, invalid number", http.StatusBadRequest)
		default:
			log.Errorf("normalize body entry for user %d: %s", userID, err)
			http.Error(w, "failed to add body entry", http.StatusInternalServerError)
		}
		return
	}

	added, err := handler.repo.Add(r.Context(), &Entry{
		Height: height,
		Weight: weight,
		UserID: userID,
	})
	if err != nil {
		log.Errorf("add body entry for user %d: %s", userID, err)
		http.Error(w, "failed to add body entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterBodyEntriesAdded.Inc()

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal body entry error: %s", err)
		http.Error(w, "body entry marshal error", http.StatusInternalServerError)
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

	entries, err := handler.repo.List(r.Context(), userID)
	if err != nil {
		log.Errorf("list body entries for user %d: %s", userID, err)
		http.Error(w, "failed to list body entries", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal body entries error: %s", err)
		http.Error(w, "body entries marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(entriesJson))
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

	entry, err := handler.repo.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "body entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("get body entry %d: %s", id, err)
		http.Error(w, "failed to get body entry", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal body entry error: %s", err)
		http.Error(w, "body entry marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(entryJson))
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

	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Errorf("update body entry, unmarshal json params: %s", err)
		http.Error(w, "update body entry failed", http.StatusBadRequest)
		return
	}

	height, weight, err := handler.normalizer.NormalizeUpdate(payload.Height, payload.Weight)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			http.Error(w, "error, both fields required", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidNumber):
			http.Error(w, "error, invalid number", http.StatusBadRequest)
		default:
			log.Errorf("normalize body entry update %d: %s", id, err)
			http.Error(w, "failed to update body entry", http.StatusInternalServerError)
		}
		return
	}

	err = handler.repo.Update(r.Context(), &Entry{
		ID:     id,
		Height: height,
		Weight: weight,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "body entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("update body entry %d: %s", id, err)
		http.Error(w, "failed to update body entry", http.StatusInternalServerError)
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
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "body entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete body entry %d: %s", id, err)
		http.Error(w, "failed to delete body entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
