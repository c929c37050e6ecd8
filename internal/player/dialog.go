package player

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ChooseFile asks the user for an audio file. Cancelling the dialog returns
// an empty path and no error.
func ChooseFile(exts []string) (string, error) {
	patterns := make([]string, 0, len(exts)+1)
	for _, e := range exts {
		patterns = append(patterns, "*."+e)
	}
	if len(patterns) == 0 {
		patterns = append(patterns, "*.wav", "*.mp3", "*.flac")
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
