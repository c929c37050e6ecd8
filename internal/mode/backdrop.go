package mode

import "github.com/iburimskiy/sonic-cloud/internal/config"

// Backdrop is the gray level of the background. While a reactive layer is
// shown it chases the music; otherwise it breathes between black and white.
type Backdrop struct {
	Level  int
	Rising bool
}

func NewBackdrop() Backdrop {
	return Backdrop{Level: config.InitialBackground, Rising: true}
}

func (b *Backdrop) Step(reactive, boosted bool) {
	if reactive {
		if boosted {
			b.Level = min(b.Level+config.ReactiveChangeRate, config.MaxColorValue)
		} else {
			b.Level = max(b.Level-config.ReactiveChangeRate, 0)
		}
		return
	}

	if b.Rising {
		b.Level += config.IdleChangeRate
		if b.Level >= config.MaxColorValue {
			b.Level = config.MaxColorValue
			b.Rising = false
		}
		return
	}
	b.Level -= config.IdleChangeRate
	if b.Level <= 0 {
		b.Level = 0
		b.Rising = true
	}
}

func (b Backdrop) Gray() uint8 { return uint8(b.Level) }
