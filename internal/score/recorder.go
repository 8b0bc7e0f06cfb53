package score

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unvoid/unvoid-chess/internal/engine"
	"github.com/unvoid/unvoid-chess/internal/obslog"
)

// Recorder builds result records for finished matches and fans them out
// to the store and, when attached, the Postgres archive.
type Recorder struct {
	store   Store
	archive *Archive
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// AttachArchive wires an optional database archive for final results.
func (r *Recorder) AttachArchive(a *Archive) {
	if r != nil {
		r.archive = a
	}
}

// Record persists one finished match and returns the stored record.
func (r *Recorder) Record(ctx context.Context, winner engine.Color, width, height, moveCount int, startedAt time.Time) (*Result, error) {
	res := &Result{
		MatchID:   uuid.NewString(),
		Winner:    winner.String(),
		Width:     width,
		Height:    height,
		MoveCount: moveCount,
		StartedAt: startedAt,
		EndedAt:   time.Now(),
	}
	if err := r.store.SaveResult(ctx, res); err != nil {
		obslog.L().Error("score_persist_error",
			zap.String("match_id", res.MatchID),
			zap.Error(err),
		)
		return nil, err
	}
	obslog.L().Info("match_over",
		zap.String("match_id", res.MatchID),
		zap.String("winner", res.Winner),
		zap.Int("move_count", res.MoveCount),
	)
	if r.archive != nil {
		if err := r.archive.SaveResult(ctx, res); err != nil {
			// Archive failures do not block play; the store already has it.
			obslog.L().Error("score_archive_error",
				zap.String("match_id", res.MatchID),
				zap.Error(err),
			)
		}
	}
	return res, nil
}

// Tally answers the current scoreboard.
func (r *Recorder) Tally(ctx context.Context) (Tally, error) {
	return r.store.Tally(ctx)
}
