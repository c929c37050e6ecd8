package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	VisualRingSize = 8192

	// Point cloud
	PointCount        = 550
	PointVelocity     = 0.5
	CloudRadius       = 625
	CloudVerticalBias = 50
	OffsetRange       = 1000
	ConnectDistance   = 50

	// Bands
	BandCount         = 250
	BandWidth         = 11
	MaxBandHeight     = 300
	MinBandHeight     = 25
	SpectrumSmoothing = 0.92

	// Rainbow bars
	RainbowInnerRadius = 100
	RainbowLength      = 400
	RainbowBarWidth    = 40
	RainbowAlpha       = 50

	// Background
	MaxColorValue      = 255
	ReactiveChangeRate = 5
	IdleChangeRate     = 2
	InitialBackground  = 200
	TrailAlpha         = 25
)

// Energy presets applied to the point cloud.
const (
	BoostPointRadius = 6
	BoostLineWidth   = 4
	BoostSpeed       = 1.1

	NormalPointRadius = 3
	NormalLineWidth   = 2
	NormalSpeed       = 0.8
)

// Settings is the runtime configuration. Fields absent from a YAML file keep
// their defaults; window size, counts and extension lists also fall back to
// them when set to zero or empty.
type Settings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	AudioDir  string   `yaml:"audio_dir"`
	AudioExts []string `yaml:"audio_exts"`
	ImageDir  string   `yaml:"image_dir"`
	ImageExts []string `yaml:"image_exts"`

	Points int `yaml:"points"`
	Bands  int `yaml:"bands"`

	Loop          bool  `yaml:"loop"`
	RainbowToggle bool  `yaml:"rainbow_toggle"`
	ShowStatus    bool  `yaml:"show_status"`
	TrailAlpha    uint8 `yaml:"trail_alpha"`
	Seed          int64 `yaml:"seed"`
}

func Default() Settings {
	return Settings{
		Width:     WindowWidth,
		Height:    WindowHeight,
		AudioDir:  "songs",
		AudioExts: []string{"wav", "mp3"},
		ImageDir:  "images",
		ImageExts: []string{"bmp", "jpg", "png"},
		Points:    PointCount,
		Bands:     BandCount,
		Loop:      true,
		// Rainbow bars stay reachable only through the config file.
		RainbowToggle: false,
		ShowStatus:    false,
		TrailAlpha:    TrailAlpha,
	}
}

// LoadFile overlays the YAML file at path onto s.
func (s *Settings) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	s.fillDefaults()
	return nil
}

// ApplyEnv overrides asset directories and seed from SONIC_* variables.
func (s *Settings) ApplyEnv() {
	s.AudioDir = envStr("SONIC_AUDIO_DIR", s.AudioDir)
	s.ImageDir = envStr("SONIC_IMAGE_DIR", s.ImageDir)
	s.Seed = envInt64("SONIC_SEED", s.Seed)
}

func (s *Settings) fillDefaults() {
	d := Default()
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.Points <= 0 {
		s.Points = d.Points
	}
	if s.Bands <= 0 {
		s.Bands = d.Bands
	}
	if len(s.AudioExts) == 0 {
		s.AudioExts = d.AudioExts
	}
	if len(s.ImageExts) == 0 {
		s.ImageExts = d.ImageExts
	}
	s.AudioExts = normalizeExts(s.AudioExts)
	s.ImageExts = normalizeExts(s.ImageExts)
}

func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
