package reveal

// LocalProgress remaps a global progress value into the timeline
// window owned by the index-th of total sub-elements. Each window has
// width 1/(1+(N-1)*lagRatio) and starts at index*lagRatio*width, so
// window 0 opens exactly at global 0 and window N-1 closes exactly at
// global 1. A lag ratio of 0 keeps every sub-element synchronized
// with the global progress; 1 plays them strictly one after another.
func LocalProgress(global float64, index, total int, lagRatio float64) float64 {
	global = clamp01(global)
	if total <= 1 || lagRatio <= 0 {
		return global
	}
	if lagRatio > 1 {
		lagRatio = 1
	}
	if index < 0 {
		index = 0
	}
	if index > total-1 {
		index = total - 1
	}

	width := 1.0 / (1.0 + float64(total-1)*lagRatio)
	start := float64(index) * lagRatio * width
	return clamp01((global - start) / width)
}
