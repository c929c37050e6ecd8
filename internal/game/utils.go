package game

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/iburimskiy/sonic-cloud/internal/mode"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// layerSummary lists the visible layers, e.g. "img pts bands".
func layerSummary(s mode.State) string {
	var parts []string
	for _, l := range []struct {
		on   bool
		name string
	}{
		{s.ShowBackground, "img"},
		{s.ShowPoints, "pts"},
		{s.ShowBands, "bands"},
		{s.ShowRainbows, "rainbow"},
		{s.ShowTrails, "trails"},
	} {
		if l.on {
			parts = append(parts, l.name)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func trackName(path string) string {
	if path == "" {
		return "no audio"
	}
	return filepath.Base(path)
}
