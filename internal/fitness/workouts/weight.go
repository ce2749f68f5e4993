package workouts

import (
	"errors"
	"strconv"
	"strings"
)

const poundsToKilosFactor = 0.453592

var ErrMissingWeight = errors.New("weight missing or invalid")

// PoundsToKilos converts pounds to kilograms. The result is stored
// unrounded, rounding happens only at display time.
func PoundsToKilos(pounds float64) float64 {
	return pounds * poundsToKilosFactor
}

// ParseWeight parses raw weight input and converts it to kilograms when
// the unit is "lb". Anything blank, unparseable or non-positive is
// rejected with ErrMissingWeight.
func ParseWeight(raw, unit string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingWeight
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrMissingWeight
	}
	if val <= 0 {
		return 0, ErrMissingWeight
	}

	if strings.EqualFold(strings.TrimSpace(unit), "lb") {
		return PoundsToKilos(val), nil
	}

	return val, nil
}
