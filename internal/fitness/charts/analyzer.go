package charts

//go:generate mockgen -source=$GOFILE -destination=charts_mocks_test.go -package=charts_test

import (
	"context"
	"math"
	"time"

	"github.com/2beens/fittrack/internal/fitness/body"
	"github.com/2beens/fittrack/internal/fitness/exercises"
	"github.com/2beens/fittrack/internal/fitness/workouts"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const labelTimeFormat = "2006-01-02 15:04:05"

type bodyLister interface {
	List(ctx context.Context, userID int) ([]body.Entry, error)
}

type workoutsLister interface {
	List(ctx context.Context, userID int) ([]workouts.Workout, error)
	ListForExercise(ctx context.Context, exerciseID, userID int) ([]workouts.Workout, error)
}

type exercisesLister interface {
	Get(ctx context.Context, id, userID int) (*exercises.Exercise, error)
	List(ctx context.Context, userID int) ([]exercises.Exercise, error)
}

// Series is a single chart line: labels on the x axis, one or two value
// series on the y axis. Values are rounded to 2 decimals for display.
type Series struct {
	Labels  []string  `json:"labels"`
	Weights []float64 `json:"weights"`
	Heights []float64 `json:"heights,omitempty"`
	Reps    []int     `json:"reps,omitempty"`
}

// ExerciseSnapshot is the most recent set logged for one exercise.
type ExerciseSnapshot struct {
	ExerciseID int       `json:"exerciseId"`
	Name       string    `json:"name"`
	Kilos      float64   `json:"kilos"`
	Reps       int       `json:"reps"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Analyzer struct {
	bodyRepo      bodyLister
	workoutsRepo  workoutsLister
	exercisesRepo exercisesLister
}

func NewAnalyzer(bodyRepo bodyLister, workoutsRepo workoutsLister, exercisesRepo exercisesLister) *Analyzer {
	return &Analyzer{
		bodyRepo:      bodyRepo,
		workoutsRepo:  workoutsRepo,
		exercisesRepo: exercisesRepo,
	}
}

// BodyProgression builds the weight/height chart series of an account.
// Repos return newest first, charts want oldest first, so the order is
// reversed here.
func (a *Analyzer) BodyProgression(ctx context.Context, userID int) (_ *Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.bodyProgression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.bodyRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))

	series := &Series{
		Labels:  make([]string, 0, len(entries)),
		Weights: make([]float64, 0, len(entries)),
		Heights: make([]float64, 0, len(entries)),
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		series.Labels = append(series.Labels, e.CreatedAt.Format(labelTimeFormat))
		series.Weights = append(series.Weights, roundTo2Decimals(e.Weight))
		series.Heights = append(series.Heights, roundTo2Decimals(e.Height))
	}

	return series, nil
}

// ExerciseProgression builds the weight/reps series of one exercise. The
// ownership check runs first so a foreign exercise id yields not-found
// instead of an empty chart.
func (a *Analyzer) ExerciseProgression(ctx context.Context, exerciseID, userID int) (_ *Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.exerciseProgression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	if _, err = a.exercisesRepo.Get(ctx, exerciseID, userID); err != nil {
		return nil, err
	}

	workoutList, err := a.workoutsRepo.ListForExercise(ctx, exerciseID, userID)
	if err != nil {
		return nil, err
	}

	series := &Series{
		Labels:  make([]string, 0, len(workoutList)),
		Weights: make([]float64, 0, len(workoutList)),
		Reps:    make([]int, 0, len(workoutList)),
	}
	for i := len(workoutList) - 1; i >= 0; i-- {
		w := workoutList[i]
		series.Labels = append(series.Labels, w.CreatedAt.Format(labelTimeFormat))
		series.Weights = append(series.Weights, roundTo2Decimals(w.Kilos))
		series.Reps = append(series.Reps, w.Reps)
	}

	return series, nil
}

// LatestWeightPerExercise returns the most recent workout per exercise.
// Workouts come newest first, so the first hit per exercise id wins.
// Kilos keep their stored precision, rounding is for the chart series
// only.
func (a *Analyzer) LatestWeightPerExercise(ctx context.Context, userID int) (_ []ExerciseSnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.latestWeightPerExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseList, err := a.exercisesRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(exerciseList))
	for _, e := range exerciseList {
		names[e.ID] = e.Name
	}

	workoutList, err := a.workoutsRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(names))
	snapshots := make([]ExerciseSnapshot, 0, len(names))
	for _, w := range workoutList {
		if seen[w.ExerciseID] {
			continue
		}
		seen[w.ExerciseID] = true
		snapshots = append(snapshots, ExerciseSnapshot{
			ExerciseID: w.ExerciseID,
			Name:       names[w.ExerciseID],
			Kilos:      w.Kilos,
			Reps:       w.Reps,
			CreatedAt:  w.CreatedAt,
		})
	}

	return snapshots, nil
}

func roundTo2Decimals(val float64) float64 {
	return math.Round(val*100) / 100
}
