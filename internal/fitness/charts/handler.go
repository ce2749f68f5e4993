package charts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/fitness/exercises"
	"github.com/2beens/fittrack/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	cacheSizeBytes    = 10 * 1024 * 1024
	cacheExpireSecs   = 60
	cacheKeyFmtBody   = "charts::body::%d"
	cacheKeyFmtSingle = "charts::exercise::%d::%d"
)

type seriesAnalyzer interface {
	BodyProgression(ctx context.Context, userID int) (*Series, error)
	ExerciseProgression(ctx context.Context, exerciseID, userID int) (*Series, error)
	LatestWeightPerExercise(ctx context.Context, userID int) ([]ExerciseSnapshot, error)
}

type Handler struct {
	analyzer seriesAnalyzer
	cache    *freecache.Cache
}

func NewHandler(analyzer seriesAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
		cache:    freecache.NewCache(cacheSizeBytes),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/body", handler.HandleBodyProgression).Methods("GET").Name("chart-body")
	router.HandleFunc("/exercise/{id}", handler.HandleExerciseProgression).Methods("GET").Name("chart-exercise")
	router.HandleFunc("/latest", handler.HandleLatestWeights).Methods("GET").Name("chart-latest")
}

// HandleBodyProgression serves the body weight/height series. Responses
// are cached per account for a minute, the chart does not need to be
// fresher than that.
func (handler *Handler) HandleBodyProgression(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	cacheKey := []byte(fmt.Sprintf(cacheKeyFmtBody, userID))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	series, err := handler.analyzer.BodyProgression(r.Context(), userID)
	if err != nil {
		log.Errorf("body progression for user %d: %s", userID, err)
		http.Error(w, "failed to get body progression", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("marshal body progression error: %s", err)
		http.Error(w, "series marshal error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, seriesJson, cacheExpireSecs); err != nil {
		log.Warnf("cache body progression for user %d: %s", userID, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, seriesJson)
}

func (handler *Handler) HandleExerciseProgression(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	cacheKey := []byte(fmt.Sprintf(cacheKeyFmtSingle, userID, exerciseID))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	series, err := handler.analyzer.ExerciseProgression(r.Context(), exerciseID, userID)
	if err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("exercise progression %d for user %d: %s", exerciseID, userID, err)
		http.Error(w, "failed to get exercise progression", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("marshal exercise progression error: %s", err)
		http.Error(w, "series marshal error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, seriesJson, cacheExpireSecs); err != nil {
		log.Warnf("cache exercise progression for user %d: %s", userID, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, seriesJson)
}

// HandleLatestWeights is deliberately not cached, the overview must show
// a workout right after it was added.
func (handler *Handler) HandleLatestWeights(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	snapshots, err := handler.analyzer.LatestWeightPerExercise(r.Context(), userID)
	if err != nil {
		log.Errorf("latest weights for user %d: %s", userID, err)
		http.Error(w, "failed to get latest weights", http.StatusInternalServerError)
		return
	}

	snapshotsJson, err := json.Marshal(snapshots)
	if err != nil {
		log.Errorf("marshal latest weights error: %s", err)
		http.Error(w, "snapshots marshal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(snapshotsJson))
}
