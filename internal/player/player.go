// Package player plays local audio files through the system speaker and
// exposes the spectrum of what is currently audible.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/sonic-cloud/internal/spectrum"
)

var ErrUnsupported = errors.New("unsupported file type")

type Player struct {
	loop     bool
	ringSize int
	analyzer *spectrum.Analyzer

	// audio
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *spectrum.Tap

	// state
	playing  bool
	ended    atomic.Bool
	initDone bool
}

// New returns an idle player. With loop set every loaded track repeats
// until it is stopped.
func New(loop bool, ringSize, fftSize int) *Player {
	return &Player{
		loop:     loop,
		ringSize: ringSize,
		analyzer: spectrum.NewAnalyzer(fftSize),
	}
}

// Load decodes path and prepares it for playback, replacing whatever was
// loaded before. The track does not start until Play.
func (p *Player) Load(path string) error {
	p.Unload()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if err := p.initSpeaker(format); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	var src beep.Streamer = streamer
	if p.loop {
		src = beep.Loop(-1, streamer)
	}

	// Prepare audio chain: streamer -> tap -> ctrl
	p.tap = spectrum.NewTap(src, p.ringSize)
	p.ctrl = &beep.Ctrl{Streamer: p.tap}
	p.path = path
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ended.Store(false)

	slog.Info("track loaded", "path", path, "sample_rate", int(format.SampleRate), "length", p.Duration())
	return nil
}

func (p *Player) Play() {
	if !p.IsLoaded() || p.playing {
		return
	}
	p.playing = true
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		p.ended.Store(true)
	})))
}

// Stop silences the speaker; the track stays loaded.
func (p *Player) Stop() {
	if !p.playing {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.playing = false
}

// Unload stops playback and releases the file.
func (p *Player) Unload() {
	p.Stop()
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.path = ""
}

func (p *Player) IsLoaded() bool { return p.streamer != nil }

func (p *Player) IsPlaying() bool {
	return p.playing && !p.Paused() && !p.ended.Load()
}

func (p *Player) Paused() bool {
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
}

func (p *Player) Path() string { return p.path }

// Spectrum implements spectrum.Source. It reports silence while nothing is
// audible so the cloud stops with the music.
func (p *Player) Spectrum(bands int) []float64 {
	if !p.IsPlaying() {
		return nil
	}
	return spectrum.TapSource{Tap: p.tap, Analyzer: p.analyzer}.Spectrum(bands)
}

func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Close releases the track and the speaker.
func (p *Player) Close() {
	p.Unload()
	if p.initDone {
		speaker.Close()
		p.initDone = false
	}
}

func (p *Player) initSpeaker(format beep.Format) error {
	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return err
		}
		p.initDone = true
		return nil
	}
	if p.format.SampleRate == format.SampleRate {
		return nil
	}
	// Re-init when sample rate changes
	speaker.Close()
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		p.initDone = false
		return err
	}
	return nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
}
