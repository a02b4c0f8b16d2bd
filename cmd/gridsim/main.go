package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gridsim/gridsim/internal/config"
	"github.com/gridsim/gridsim/internal/core/event"
	"github.com/gridsim/gridsim/internal/data"
	"github.com/gridsim/gridsim/internal/output"
	"github.com/gridsim/gridsim/internal/scripting"
	"github.com/gridsim/gridsim/internal/system"
	"github.com/gridsim/gridsim/internal/tick"
	"github.com/gridsim/gridsim/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	cfgPath := "config/gridsim.toml"
	if p := os.Getenv("GRIDSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging, cfg.Output.Target)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("run", uuid.NewString()))

	// 3. Build and seed the world
	w := world.New(cfg.Sim.MaxEntities, world.Grid{
		Width:  int32(cfg.Sim.GridWidth),
		Height: int32(cfg.Sim.GridHeight),
	})
	spawned, err := seed(w, cfg.Seed, log)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info("world ready",
		zap.Int("entities", spawned),
		zap.Int("capacity", cfg.Sim.MaxEntities),
		zap.Int("grid_width", cfg.Sim.GridWidth),
		zap.Int("grid_height", cfg.Sim.GridHeight))

	// 4. Output channel. The screen target reads Ctrl-C as a key, so it gets
	// the same stop hook as the signal handler.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sink, closeSink, err := newSink(cfg.Output, log, stop)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer closeSink()

	// 5. Systems
	bus := event.NewBus()
	system.LogEvents(bus, log)
	bg := []rune(cfg.Render.Background)
	fg := []rune(cfg.Render.Foreground)
	runner := system.NewSchedule(w, sink, bus, system.Options{
		Markers: system.Markers{Background: bg[0], Foreground: fg[0], Separator: cfg.Render.Separator},
		Digest:  cfg.Sim.Digest,
	})
	log.Info("schedule", zap.Strings("systems", runner.Names()))

	// 6. Tick loop
	driver := tick.NewDriver(
		tick.NewRealClock(),
		tick.SchedulerFunc(func() error { return runner.Run(w) }),
		cfg.Sim.TickInterval.Duration,
		cfg.Sim.MaxTicks,
		log,
	)
	log.Info("tick loop started", zap.Duration("interval", cfg.Sim.TickInterval.Duration))
	if err := driver.Run(ctx); err != nil {
		return fmt.Errorf("tick loop: %w", err)
	}
	return nil
}

func seed(w *world.World, cfg config.SeedConfig, log *zap.Logger) (int, error) {
	total := 0
	if cfg.File != "" {
		pop, err := data.LoadPopulation(cfg.File)
		if err != nil {
			return 0, err
		}
		n, err := w.SpawnAll(pop.Blueprints())
		total += n
		if err != nil {
			return total, fmt.Errorf("population %s: %w", cfg.File, err)
		}
	}
	if cfg.Script != "" {
		eng := scripting.NewEngine(log)
		defer eng.Close()
		n, err := eng.SeedFile(w, cfg.Script)
		total += n
		if err != nil {
			return total, err
		}
	}
	if cfg.File == "" && cfg.Script == "" {
		return w.SpawnAll(world.DefaultPopulation())
	}
	return total, nil
}

func newSink(cfg config.OutputConfig, log *zap.Logger, stop func()) (output.Sink, func(), error) {
	enc, err := output.Charset(cfg.Charset)
	if err != nil {
		return nil, nil, err
	}
	switch cfg.Target {
	case "log":
		return output.NewLog(log), func() {}, nil
	case "screen":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("open screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, nil, fmt.Errorf("init screen: %w", err)
		}
		return screenSink(screen, stop), screen.Fini, nil
	default:
		var sink output.Sink = output.NewWriter(os.Stdout, enc)
		if cfg.MirrorLog {
			sink = output.Tee{sink, output.NewLog(log)}
		}
		return sink, func() {}, nil
	}
}

// screenSink draws onto an initialised screen and calls stop on Ctrl-C or Esc.
// The terminal is in raw mode, so those keys never become SIGINT.
func screenSink(screen tcell.Screen, stop func()) output.Sink {
	go watchKeys(screen, stop)
	return output.NewScreen(screen)
}

// watchKeys polls until the screen is finalised.
func watchKeys(screen tcell.Screen, stop func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				stop()
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// newLogger builds the process logger. With no log file, the screen target
// discards logs: anything on stderr would tear the full-screen frame.
func newLogger(cfg config.LoggingConfig, target string) (*zap.Logger, error) {
	if cfg.File == "" && target == "screen" {
		return zap.NewNop(), nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
