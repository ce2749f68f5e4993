package body

import "time"

// Entry is a single body measurement snapshot. Height is in centimeters,
// weight in kilograms.
type Entry struct {
	ID        int       `json:"id"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	UserID    int       `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
