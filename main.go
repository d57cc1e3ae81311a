package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GFX1j/constellation/internal/anim"
	"github.com/GFX1j/constellation/internal/config"
	"github.com/GFX1j/constellation/internal/field"
	"github.com/GFX1j/constellation/internal/game"
)

var version = "dev"

var (
	cfgFile  string
	audio    bool
	frames   int
	duration time.Duration
	tps      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "constellation",
		Short: "Animated constellation point field",
		Long: `Constellation renders a decorative field of drifting points connected
by proximity edges, attracted toward the pointer position.`,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (default: constellation.yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Open the animation window",
		RunE:  runRun,
	}
	runCmd.Flags().BoolVar(&audio, "audio", false, "enable the ambient drone")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation headless and log frame statistics",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&frames, "frames", 0, "number of frames to step as fast as possible (0 = paced by --duration)")
	simulateCmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "how long to run in paced mode")
	simulateCmd.Flags().IntVar(&tps, "tps", 60, "ticks per second in paced mode")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(runCmd, simulateCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, fmt.Errorf("logger init: %w", err)
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config validate: %w", err)
	}
	return cfg, logger, nil
}

func newField(cfg *config.Config) *field.Field {
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	if cfg.Seed != 0 {
		return field.NewWithRand(w, h, cfg.Field.Tuning(), rand.New(rand.NewSource(cfg.Seed)))
	}
	return field.New(w, h, cfg.Field.Tuning())
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cmd.Flags().Changed("audio") {
		cfg.Audio.Enabled = audio
	}

	logger.Info("starting constellation",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("audio", cfg.Audio.Enabled))
	return game.Run(cfg, logger)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	f := newField(cfg)

	if frames > 0 {
		start := time.Now()
		for i := 0; i < frames; i++ {
			f.Step()
		}
		logger.Info("simulation finished",
			zap.Int("frames", frames),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("points", len(f.Points())),
			zap.Int("edges", len(f.Edges())))
		return nil
	}

	if tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", tps)
	}

	var stepped atomic.Int64
	animator := anim.New(&anim.Ticker{Interval: time.Second / time.Duration(tps)}, func() {
		f.Step()
		stepped.Add(1)
	})
	animator.Resume()
	time.Sleep(duration)
	animator.Dispose()

	logger.Info("simulation finished",
		zap.Int64("frames", stepped.Load()),
		zap.Duration("duration", duration),
		zap.Int("points", len(f.Points())),
		zap.Int("edges", len(f.Edges())))
	return nil
}
