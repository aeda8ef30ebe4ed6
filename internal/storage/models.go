package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Analysis is one stored analysis run.
type Analysis struct {
	ID          string
	CreatedAt   time.Time
	InputText   string
	Source      string // "remote" or "local"
	SafetyScore int
	ResultJSON  string // full engine result stored as JSON
}
