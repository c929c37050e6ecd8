package mode

import "github.com/iburimskiy/sonic-cloud/internal/config"

// Energy is the point-cloud look for the current frame.
type Energy struct {
	PointRadius float64
	LineWidth   float64
	Speed       float64
}

var (
	Boost  = Energy{PointRadius: config.BoostPointRadius, LineWidth: config.BoostLineWidth, Speed: config.BoostSpeed}
	Normal = Energy{PointRadius: config.NormalPointRadius, LineWidth: config.NormalLineWidth, Speed: config.NormalSpeed}
)

// Boosted reports whether any band reaches the peak zone this frame:
// smoothed*maxHeight >= maxHeight - minHeight.
func Boosted(smoothed []float64, maxHeight, minHeight float64) bool {
	threshold := maxHeight - minHeight
	for _, v := range smoothed {
		if v*maxHeight >= threshold {
			return true
		}
	}
	return false
}

func EnergyFor(boosted bool) Energy {
	if boosted {
		return Boost
	}
	return Normal
}
