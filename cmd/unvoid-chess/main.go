package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	appcfg "github.com/unvoid/unvoid-chess/internal/config"
	"github.com/unvoid/unvoid-chess/internal/engine"
	"github.com/unvoid/unvoid-chess/internal/msgcat"
	"github.com/unvoid/unvoid-chess/internal/obslog"
	"github.com/unvoid/unvoid-chess/internal/presenter"
	"github.com/unvoid/unvoid-chess/internal/render"
	"github.com/unvoid/unvoid-chess/internal/score"
)

// app bundles everything one console match needs.
type app struct {
	cfg       *appcfg.AppConfig
	cat       *msgcat.Catalog
	fmtr      *presenter.Formatter
	renderer  *render.Renderer
	recorder  *score.Recorder
	game      *engine.Game
	width     int
	height    int
	startedAt time.Time
	moveCount int
	recorded  bool
}

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("log init error: %v", err)
	}
	defer obslog.Sync()

	cat, err := msgcat.New(cfg.MessageDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("scoreboard init error: %v", err)
	}
	defer closeStore()
	recorder := score.NewRecorder(store)
	if cfg.DatabaseURL != "" {
		archive, err := score.NewArchive(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("archive init error: %v", err)
		}
		defer func() { _ = archive.Close() }()
		recorder.AttachArchive(archive)
	}

	in := bufio.NewScanner(os.Stdin)

	fmt.Println(cat.MustRender("game.welcome", nil))
	width := cfg.BoardWidth
	if width == 0 {
		width = promptDimension(in, cat, "width")
	}
	height := cfg.BoardHeight
	if height == 0 {
		height = promptDimension(in, cat, "height")
	}
	fmt.Println(cat.MustRender("game.starting", map[string]any{"Width": width, "Height": height}))

	a := &app{
		cfg:       cfg,
		cat:       cat,
		fmtr:      presenter.NewFormatter(cat),
		renderer:  render.NewRenderer(),
		recorder:  recorder,
		game:      engine.NewGame(width, height),
		width:     width,
		height:    height,
		startedAt: time.Now(),
	}
	obslog.L().Info("match_start", zap.Int("width", width), zap.Int("height", height))

	a.loop(in)
}

func buildStore(cfg *appcfg.AppConfig) (score.Store, func(), error) {
	if cfg.RedisURL == "" {
		return score.NewMemoryStore(), func() {}, nil
	}
	rs, err := score.NewRedisStore(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return rs, func() { _ = rs.Close() }, nil
}

// promptDimension re-asks until the player enters a value within bounds.
func promptDimension(in *bufio.Scanner, cat *msgcat.Catalog, name string) int {
	data := map[string]any{"Name": name, "Min": appcfg.MinDim, "Max": appcfg.MaxDim}
	for {
		fmt.Print(cat.MustRender("prompt.dimension", data))
		if !in.Scan() {
			os.Exit(0)
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil && appcfg.ValidDim(n) {
			return n
		}
		fmt.Println(cat.MustRender("prompt.dimension_invalid", data))
	}
}

func (a *app) loop(in *bufio.Scanner) {
	for {
		fmt.Println(a.fmtr.Board(a.game))
		fmt.Println(a.fmtr.TurnInfo(a.game))
		if !a.game.Over() {
			fmt.Println(a.cat.MustRender("prompt.command", nil))
		}
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		parts := strings.Fields(in.Text())
		if len(parts) == 0 {
			continue
		}
		command := strings.ToLower(parts[0])
		args := parts[1:]

		if a.game.Over() && command != "restart" && command != "exit" {
			fmt.Println(a.cat.MustRender("game.over_gate", nil))
			continue
		}

		switch command {
		case "help":
			fmt.Println(a.cat.MustRender("cmd.help", nil))
		case "exit":
			fmt.Println(a.cat.MustRender("game.goodbye", nil))
			return
		case "restart":
			a.restart()
		case "board":
			// The board reprints at the top of the loop; nothing else to do.
		case "select":
			a.handleSelect(args)
		case "move":
			a.handleMove(args)
		case "snapshot":
			a.handleSnapshot(args)
		case "score":
			a.handleScore()
		default:
			fmt.Println(a.cat.MustRender("cmd.unknown", map[string]any{"Command": command}))
			fmt.Println(a.cat.MustRender("cmd.unknown_hint", nil))
		}
		fmt.Println()
	}
}

func (a *app) restart() {
	fmt.Println(a.cat.MustRender("game.restarting", nil))
	a.game.Restart(a.width, a.height)
	a.startedAt = time.Now()
	a.moveCount = 0
	a.recorded = false
	obslog.L().Info("match_start", zap.Int("width", a.width), zap.Int("height", a.height))
}

func (a *app) handleSelect(args []string) {
	if len(args) != 1 {
		fmt.Println(a.cat.MustRender("cmd.select_usage", nil))
		return
	}
	b := a.game.Board()
	at, err := engine.ParseSquare(args[0], b.Height(), b.Width())
	if err != nil {
		fmt.Println(a.cat.MustRender("cmd.bad_square", map[string]any{"Square": strings.ToUpper(args[0])}))
		fmt.Println(a.cat.MustRender("cmd.square_bounds", map[string]any{"Max": a.fmtr.MaxSquare(a.game)}))
		return
	}
	piece := b.At(at.Row, at.Col)
	moves, err := a.game.Select(at)
	if err != nil {
		fmt.Printf("Invalid selection: %v.\n", err)
		return
	}
	fmt.Println(a.fmtr.Selected(*piece, at, moves))
}

func (a *app) handleMove(args []string) {
	if len(args) != 2 {
		fmt.Println(a.cat.MustRender("cmd.move_usage", nil))
		return
	}
	b := a.game.Board()
	from, err := engine.ParseSquare(args[0], b.Height(), b.Width())
	if err != nil {
		fmt.Println(a.cat.MustRender("cmd.bad_from", map[string]any{"Square": strings.ToUpper(args[0])}))
		return
	}
	to, err := engine.ParseSquare(args[1], b.Height(), b.Width())
	if err != nil {
		fmt.Println(a.cat.MustRender("cmd.bad_to", map[string]any{"Square": strings.ToUpper(args[1])}))
		return
	}

	mover := b.At(from.Row, from.Col)
	captured, err := a.game.Move(from, to)
	if err != nil {
		fmt.Printf("Invalid move: %v.\n", err)
		return
	}
	a.moveCount++
	fmt.Println(a.fmtr.Moved(*mover, from, to, captured))
	obslog.L().Debug("match_move",
		zap.String("from", from.Label()),
		zap.String("to", to.Label()),
		zap.Bool("capture", captured != nil),
	)

	if a.game.Over() && !a.recorded {
		a.recorded = true
		winner, _ := a.game.Winner()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Persistence failures are logged by the recorder; play continues.
		_, _ = a.recorder.Record(ctx, winner, a.width, a.height, a.moveCount, a.startedAt)
	}
}

func (a *app) handleSnapshot(args []string) {
	path := a.cfg.SnapshotPath
	if len(args) >= 1 {
		path = args[0]
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	data, err := a.renderer.RenderPNG(ctx, a.game.Board())
	if err == nil {
		err = os.WriteFile(path, data, 0o644)
	}
	if err != nil {
		fmt.Println(a.cat.MustRender("snapshot.failed", map[string]any{"Error": err.Error()}))
		return
	}
	fmt.Println(a.cat.MustRender("snapshot.saved", map[string]any{"Path": path}))
}

func (a *app) handleScore() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tally, err := a.recorder.Tally(ctx)
	if err != nil {
		fmt.Println(a.cat.MustRender("score.unavailable", map[string]any{"Error": err.Error()}))
		return
	}
	fmt.Println(a.cat.MustRender("score.line", map[string]any{
		"White": tally.WhiteWins,
		"Black": tally.BlackWins,
		"Games": tally.Games,
	}))
}
