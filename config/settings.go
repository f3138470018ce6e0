package config

// SettingsMenuConfig contains the volume option screen configuration
type SettingsMenuConfig struct {
	VolumeSteps []float64
	SliderMax   float64 // sliders show volumes as [0, SliderMax]
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		SliderMax:   100,
	}
}

// StepVolume moves current to the neighbouring entry of VolumeSteps in the
// given direction, snapping to the closest step first.
func StepVolume(current float64, direction int) float64 {
	steps := SettingsMenu.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	idx := closestStep(current, steps) + direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

func closestStep(value float64, steps []float64) int {
	best := 0
	bestDiff := -1.0
	for i, s := range steps {
		diff := value - s
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best
}
