package score

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Archive writes final match results to Postgres. It is optional: the
// driver only constructs one when DATABASE_URL is configured.
type Archive struct {
	db *sql.DB
}

func NewArchive(databaseURL string) (*Archive, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

// SaveResult upserts one finished match into the results table.
func (a *Archive) SaveResult(ctx context.Context, r *Result) error {
	if a == nil || a.db == nil || r == nil {
		return nil
	}
	duration := r.EndedAt.Sub(r.StartedAt).Milliseconds()
	if duration < 0 {
		duration = 0
	}

	q := `INSERT INTO match_results (
	    match_id, winner, board_width, board_height, move_count,
	    started_at, ended_at, duration_ms
	  ) VALUES (
	    $1,$2,$3,$4,$5,$6,$7,$8
	  ) ON CONFLICT (match_id) DO UPDATE SET
	    winner=EXCLUDED.winner,
	    board_width=EXCLUDED.board_width,
	    board_height=EXCLUDED.board_height,
	    move_count=EXCLUDED.move_count,
	    started_at=EXCLUDED.started_at,
	    ended_at=EXCLUDED.ended_at,
	    duration_ms=EXCLUDED.duration_ms`

	_, err := a.db.ExecContext(ctx, q,
		r.MatchID, r.Winner,
		r.Width, r.Height, r.MoveCount,
		r.StartedAt, r.EndedAt, duration,
	)
	return err
}
