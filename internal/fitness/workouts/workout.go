package workouts

import "time"

// Workout is one logged set: an exercise, the weight moved (always stored
// in kilograms) and the rep count.
type Workout struct {
	ID         int       `json:"id"`
	ExerciseID int       `json:"exerciseId"`
	Kilos      float64   `json:"kilos"`
	Reps       int       `json:"reps"`
	UserID     int       `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}
