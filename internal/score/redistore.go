package score

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const ttlResult = 30 * 24 * time.Hour

// RedisStore keeps the scoreboard in Redis so it survives across runs.
// Result records carry a TTL; the tally hash does not expire.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to the given redis:// URL and pings it.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := parseRedisURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

func (s *RedisStore) keyResult(id string) string { return "uvc:result:" + strings.TrimSpace(id) }
func (s *RedisStore) keyTally() string           { return "uvc:tally" }

func (s *RedisStore) SaveResult(ctx context.Context, r *Result) error {
	if r == nil {
		return ErrNilResult
	}
	key := s.keyResult(r.MatchID)
	// NX guards against double-recording the same match.
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	ok, err := s.rdb.SetNX(ctx, key, raw, ttlResult).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrDuplicateResult
	}

	field := "black_wins"
	if r.Winner == "White" {
		field = "white_wins"
	}
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, s.keyTally(), field, 1)
	pipe.HIncrBy(ctx, s.keyTally(), "games", 1)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Tally(ctx context.Context) (Tally, error) {
	vals, err := s.rdb.HGetAll(ctx, s.keyTally()).Result()
	if err != nil {
		return Tally{}, err
	}
	var t Tally
	t.WhiteWins = atoiField(vals, "white_wins")
	t.BlackWins = atoiField(vals, "black_wins")
	t.Games = atoiField(vals, "games")
	return t, nil
}

func atoiField(m map[string]string, field string) int {
	n, _ := strconv.Atoi(m[field])
	return n
}

func parseRedisURL(raw string) (*redis.Options, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}
	db := 0
	if p := strings.TrimPrefix(u.Path, "/"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			db = n
		}
	}
	pass, _ := u.User.Password()
	return &redis.Options{Addr: u.Host, Password: pass, DB: db}, nil
}
