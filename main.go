package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sonic-cloud/internal/config"
	"github.com/iburimskiy/sonic-cloud/internal/field"
	"github.com/iburimskiy/sonic-cloud/internal/game"
	"github.com/iburimskiy/sonic-cloud/internal/player"
	"github.com/iburimskiy/sonic-cloud/internal/playlist"
	"github.com/iburimskiy/sonic-cloud/internal/scene"
	"github.com/iburimskiy/sonic-cloud/internal/spectrum"
)

// initLogger installs a text slog handler on stderr as the default logger.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func main() {
	configFile := flag.String("config", "", "Path to a YAML settings file")
	songs := flag.String("songs", "", "Directory with audio files (default: songs)")
	images := flag.String("images", "", "Directory with background images (default: images)")
	seed := flag.Int64("seed", 0, "Random seed for the point cloud (0: time based)")
	status := flag.Bool("status", false, "Show the status line at startup")
	debug := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	initLogger(*debug)

	cfg := config.Default()
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.ApplyEnv()

	if *songs != "" {
		cfg.AudioDir = *songs
	}
	if *images != "" {
		cfg.ImageDir = *images
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *status {
		cfg.ShowStatus = true
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	audioFiles, err := playlist.Scan(cfg.AudioDir, cfg.AudioExts)
	if err != nil {
		slog.Error("scan audio", "err", err)
	}
	imageFiles, err := playlist.Scan(cfg.ImageDir, cfg.ImageExts)
	if err != nil {
		slog.Error("scan images", "err", err)
	}
	slog.Info("assets", "audio", len(audioFiles.Files), "images", len(imageFiles.Files), "seed", cfg.Seed)

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)>>1))
	sc := scene.New(scene.Options{
		Points:        cfg.Points,
		Bands:         cfg.Bands,
		Width:         float64(cfg.Width),
		Audio:         audioFiles.Cursor(),
		Image:         imageFiles.Cursor(),
		RainbowToggle: cfg.RainbowToggle,
		TrailAlpha:    cfg.TrailAlpha,
		NoiseX:        field.NewSimplex(cfg.Seed),
		NoiseY:        field.NewSimplex(cfg.Seed + 1),
		Rand:          rng,
	})

	p := player.New(cfg.Loop, config.VisualRingSize, spectrum.FFTSize(cfg.Bands))
	g := game.New(cfg, sc, p, audioFiles, imageFiles)
	defer g.Close()
	g.Start()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("sonic-cloud - 1 image, 2 points, 3 bands, 4 next track, 5 next image, 7 trails, O open, H status, Q quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
