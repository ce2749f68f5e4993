package body

//go:generate mockgen -source=$GOFILE -destination=normalizer_mocks_test.go -package=body_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptyInput    = errors.New("all fields empty")
	ErrInvalidNumber = errors.New("invalid number")
)

type mostRecenter interface {
	MostRecent(ctx context.Context, userID int) (*Entry, error)
}

// Normalizer turns raw form input into a complete entry. Fields left blank
// on add are filled from the most recent previous entry, or 0 when the
// account has no history yet.
type Normalizer struct {
	repo mostRecenter
}

func NewNormalizer(repo mostRecenter) *Normalizer {
	return &Normalizer{
		repo: repo,
	}
}

// NormalizeAdd validates raw height/weight input for a new entry. At least
// one field must be set. A blank field inherits the value from the latest
// entry of the same account; with no history it defaults to 0.
func (n *Normalizer) NormalizeAdd(ctx context.Context, userID int, rawHeight, rawWeight string) (height, weight float64, err error) {
	rawHeight = strings.TrimSpace(rawHeight)
	rawWeight = strings.TrimSpace(rawWeight)
	if rawHeight == "" && rawWeight == "" {
		return 0, 0, ErrEmptyInput
	}

	if rawHeight != "" {
		if height, err = parseField(rawHeight); err != nil {
			return 0, 0, err
		}
	}
	if rawWeight != "" {
		if weight, err = parseField(rawWeight); err != nil {
			return 0, 0, err
		}
	}

	if rawHeight != "" && rawWeight != "" {
		return height, weight, nil
	}

	previous, err := n.repo.MostRecent(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			// no history, missing fields stay 0
			return height, weight, nil
		}
		return 0, 0, err
	}

	if rawHeight == "" {
		height = previous.Height
	}
	if rawWeight == "" {
		weight = previous.Weight
	}

	return height, weight, nil
}

// NormalizeUpdate is the strict variant used on edit: both fields
// must be present and valid, no defaulting from history.
func (n *Normalizer) NormalizeUpdate(rawHeight, rawWeight string) (height, weight float64, err error) {
	rawHeight = strings.TrimSpace(rawHeight)
	rawWeight = strings.TrimSpace(rawWeight)
	if rawHeight == "" || rawWeight == "" {
		return 0, 0, ErrEmptyInput
	}

	if height, err = parseField(rawHeight); err != nil {
		return 0, 0, err
	}
	if weight, err = parseField(rawWeight); err != nil {
		return 0, 0, err
	}

	return height, weight, nil
}

func parseField(raw string) (float64, error) {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	if val <= 0 {
		return 0, ErrInvalidNumber
	}
	return val, nil
}
