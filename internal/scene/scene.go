// Package scene runs the per-frame pipeline: spectrum smoothing, energy
// evaluation, point drift, connections, recoloring and the background level.
package scene

import (
	"math/rand/v2"

	"github.com/iburimskiy/sonic-cloud/internal/config"
	"github.com/iburimskiy/sonic-cloud/internal/field"
	"github.com/iburimskiy/sonic-cloud/internal/mode"
	"github.com/iburimskiy/sonic-cloud/internal/playlist"
	"github.com/iburimskiy/sonic-cloud/internal/render"
	"github.com/iburimskiy/sonic-cloud/internal/spectrum"
)

type Options struct {
	Points int
	Bands  int
	Width  float64

	Audio         playlist.Cursor
	Image         playlist.Cursor
	RainbowToggle bool
	TrailAlpha    uint8

	NoiseX field.Noise
	NoiseY field.Noise
	Rand   *rand.Rand
}

// Scene owns all visual state. It is not safe for concurrent use; input
// handlers queue commands with Dispatch and Update applies them.
type Scene struct {
	smoother  *spectrum.Smoother
	field     *field.Field
	connector *field.Connector
	palette   *field.Palette

	state    mode.State
	backdrop mode.Backdrop
	energy   mode.Energy
	boosted  bool

	width   float64
	style   render.Style
	pending []mode.Command

	lastTime float64
	started  bool

	edges     []field.Edge
	connected []bool
}

func New(opts Options) *Scene {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	if opts.NoiseX == nil {
		opts.NoiseX = field.NewSimplex(opts.Rand.Int64())
	}
	if opts.NoiseY == nil {
		opts.NoiseY = field.NewSimplex(opts.Rand.Int64())
	}

	params := field.Params{
		Velocity:     config.PointVelocity,
		Radius:       config.CloudRadius,
		VerticalBias: config.CloudVerticalBias,
		OffsetRange:  config.OffsetRange,
	}

	return &Scene{
		smoother:  spectrum.NewSmoother(opts.Bands, config.BandWidth, config.SpectrumSmoothing),
		field:     field.New(opts.Points, params, opts.NoiseX, opts.NoiseY, opts.Rand),
		connector: field.NewConnector(config.ConnectDistance),
		palette:   field.NewPalette(opts.Points, opts.Rand),
		state:     mode.NewState(opts.Audio, opts.Image, opts.RainbowToggle),
		backdrop:  mode.NewBackdrop(),
		// the cloud starts at boost speed until the first frame is evaluated
		energy: mode.Energy{PointRadius: config.NormalPointRadius, LineWidth: config.NormalLineWidth, Speed: config.BoostSpeed},
		width:  opts.Width,
		style: render.Style{
			Bands: render.BandStyle{
				Width:     config.BandWidth,
				MaxHeight: config.MaxBandHeight,
				MinHeight: config.MinBandHeight,
			},
			Rainbow: render.RainbowStyle{
				InnerRadius: config.RainbowInnerRadius,
				Length:      config.RainbowLength,
				BarWidth:    config.RainbowBarWidth,
				Alpha:       config.RainbowAlpha,
			},
			TrailAlpha: opts.TrailAlpha,
		},
	}
}

// Dispatch queues cmd for the next Update.
func (s *Scene) Dispatch(cmd mode.Command) {
	s.pending = append(s.pending, cmd)
}

// Update advances the scene to now (seconds since any fixed origin) using raw
// as this frame's spectrum. It returns the commands applied this frame so the
// caller can act on playlist changes.
func (s *Scene) Update(now float64, raw []float64) []mode.Command {
	applied := s.pending
	s.pending = nil
	for _, cmd := range applied {
		s.state = s.state.Apply(cmd)
	}

	dt := 0.0
	if s.started {
		dt = now - s.lastTime
	}
	s.lastTime = now
	s.started = true

	// the previous frame's energy sets this frame's speed
	speed := s.energy.Speed

	smoothed := s.smoother.Update(raw, s.width)
	s.boosted = mode.Boosted(smoothed, config.MaxBandHeight, config.MinBandHeight)
	s.energy = mode.EnergyFor(s.boosted)

	positions := s.field.Advance(dt, s.smoother.Max(), speed)
	s.edges, s.connected = s.connector.Connect(positions)
	s.palette.Recolor(s.connected)

	s.backdrop.Step(s.state.Reactive(), s.boosted)
	return applied
}

// Frame snapshots the current state for rendering.
func (s *Scene) Frame() render.Frame {
	return render.Frame{
		State:     s.state,
		Energy:    s.energy,
		Gray:      s.backdrop.Gray(),
		Spectrum:  s.smoother.Values(),
		BandX:     s.smoother.Positions(),
		Positions: s.field.Positions(),
		Edges:     s.edges,
		Colors:    s.palette.Colors(),
	}
}

func (s *Scene) Draw(c render.Canvas) {
	render.Draw(c, s.Frame(), s.style)
}

func (s *Scene) State() mode.State { return s.state }

func (s *Scene) Boosted() bool { return s.boosted }

func (s *Scene) Connected() []bool { return s.connected }
