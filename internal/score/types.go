// Package score keeps an aggregate scoreboard of finished matches.
// Only outcomes are stored, never move lists.
package score

import (
	"context"
	"errors"
	"time"
)

// Result is the persisted record of one finished match.
type Result struct {
	MatchID   string    `json:"match_id"`
	Winner    string    `json:"winner"` // "White" or "Black"
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	MoveCount int       `json:"move_count"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Tally aggregates results per winning color.
type Tally struct {
	WhiteWins int `json:"white_wins"`
	BlackWins int `json:"black_wins"`
	Games     int `json:"games"`
}

// Store persists results and answers tally queries.
type Store interface {
	SaveResult(ctx context.Context, r *Result) error
	Tally(ctx context.Context) (Tally, error)
}

var (
	ErrNilResult       = errors.New("nil result")
	ErrDuplicateResult = errors.New("duplicate match result")
)
