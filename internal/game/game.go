// Package game adapts the scene to an ebiten window: keyboard input, audio
// playback, background images and the status line.
package game

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/bmp"

	"github.com/iburimskiy/sonic-cloud/internal/config"
	"github.com/iburimskiy/sonic-cloud/internal/mode"
	"github.com/iburimskiy/sonic-cloud/internal/player"
	"github.com/iburimskiy/sonic-cloud/internal/playlist"
	"github.com/iburimskiy/sonic-cloud/internal/scene"
)

type binding struct {
	key ebiten.Key
	cmd mode.Command
}

var bindings = []binding{
	{ebiten.Key1, mode.Command{Kind: mode.ToggleBackground}},
	{ebiten.Key2, mode.Command{Kind: mode.TogglePoints}},
	{ebiten.Key3, mode.Command{Kind: mode.ToggleBands}},
	{ebiten.Key4, mode.Command{Kind: mode.NextTrack}},
	{ebiten.Key5, mode.Command{Kind: mode.NextImage}},
	{ebiten.Key6, mode.Command{Kind: mode.ToggleRainbows}},
	{ebiten.Key7, mode.Command{Kind: mode.ToggleTrails}},
}

type Game struct {
	cfg    config.Settings
	scene  *scene.Scene
	player *player.Player
	songs  playlist.Playlist
	images playlist.Playlist

	background *ebiten.Image
	canvas     screenCanvas
	start      time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	showStatus bool
	lastErr    error
}

func New(cfg config.Settings, sc *scene.Scene, p *player.Player, songs, images playlist.Playlist) *Game {
	return &Game{
		cfg:        cfg,
		scene:      sc,
		player:     p,
		songs:      songs,
		images:     images,
		start:      time.Now(),
		prevKey:    map[ebiten.Key]bool{},
		showStatus: cfg.ShowStatus,
	}
}

// Start plays the first track and shows the first image, when there are any.
func (g *Game) Start() {
	st := g.scene.State()
	if st.Audio.Valid() {
		g.playTrack(st.Audio)
	} else {
		slog.Warn("no audio files found", "dir", g.cfg.AudioDir, "exts", g.cfg.AudioExts)
	}
	if st.Image.Valid() {
		g.loadImage(st.Image)
	} else {
		slog.Warn("no images found", "dir", g.cfg.ImageDir, "exts", g.cfg.ImageExts)
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	for _, b := range bindings {
		if justPressed(b.key) {
			g.scene.Dispatch(b.cmd)
		}
	}
	if justPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if justPressed(ebiten.KeyO) {
		g.openFile()
	}
	if justPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Since(g.start).Seconds()
	for _, cmd := range g.scene.Update(now, g.player.Spectrum(g.cfg.Bands)) {
		g.handle(cmd)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.reset(screen, g.background)
	g.scene.Draw(&g.canvas)

	if g.showStatus {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Close stops playback and frees the background image.
func (g *Game) Close() {
	g.player.Close()
	if g.background != nil {
		g.background.Deallocate()
		g.background = nil
	}
}

// handle performs the side effects of a command the scene just applied.
func (g *Game) handle(cmd mode.Command) {
	st := g.scene.State()
	slog.Debug("command", "kind", cmd.Kind)

	switch cmd.Kind {
	case mode.NextTrack, mode.SelectTrack:
		if st.Audio.Valid() {
			g.playTrack(st.Audio)
		}
	case mode.NextImage:
		if st.Image.Valid() {
			g.loadImage(st.Image)
		}
	case mode.ToggleTrails:
		ebiten.SetScreenClearedEveryFrame(!st.ShowTrails)
	}
}

func (g *Game) playTrack(c playlist.Cursor) {
	path, ok := g.songs.Path(c)
	if !ok {
		return
	}
	if err := g.player.Load(path); err != nil {
		g.fail("load track", err)
		return
	}
	g.player.Play()
	g.lastErr = nil
}

func (g *Game) loadImage(c playlist.Cursor) {
	path, ok := g.images.Path(c)
	if !ok {
		return
	}
	if g.background != nil {
		g.background.Deallocate()
		g.background = nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		g.fail("load image", fmt.Errorf("%s: %w", path, err))
		return
	}
	g.background = img
	slog.Info("image loaded", "path", path)
}

func (g *Game) openFile() {
	path, err := player.ChooseFile(g.cfg.AudioExts)
	if err != nil {
		g.fail("open file dialog", err)
		return
	}
	if path == "" {
		return
	}
	slog.Info("file chosen", "path", path)
	g.scene.Dispatch(mode.Command{Kind: mode.SelectTrack, Cursor: g.songs.Add(path)})
}

func (g *Game) fail(op string, err error) {
	slog.Error(op, "err", err)
	g.lastErr = err
}

func (g *Game) status() string {
	st := g.scene.State()
	status := fmt.Sprintf("%s  %s / %s  [%d/%d]  %s",
		trackName(g.player.Path()),
		formatDuration(g.player.Position()), formatDuration(g.player.Duration()),
		st.Audio.Index+1, st.Audio.Len,
		layerSummary(st))
	if g.player.Paused() {
		status += "  (paused)"
	}
	if g.scene.Boosted() {
		status += "  BOOST"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}
