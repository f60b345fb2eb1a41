package options

import (
	"fmt"
	"sort"
)

// ScreenMode is one display mode offered by a monitor.
type ScreenMode struct {
	Screen int
	Width  int
	Height int
}

func (m ScreenMode) String() string {
	return fmt.Sprintf("%d x %d", m.Width, m.Height)
}

// Less orders modes by screen, then width, then height.
func (m ScreenMode) Less(o ScreenMode) bool {
	if m.Screen != o.Screen {
		return m.Screen < o.Screen
	}
	if m.Width != o.Width {
		return m.Width < o.Width
	}
	return m.Height < o.Height
}

// SortModes returns a sorted copy of modes with duplicates removed.
func SortModes(modes []ScreenMode) []ScreenMode {
	out := make([]ScreenMode, len(modes))
	copy(out, modes)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	uniq := out[:0]
	for i, m := range out {
		if i > 0 && m == out[i-1] {
			continue
		}
		uniq = append(uniq, m)
	}
	return uniq
}

// StepResolution returns the mode after (or before) current among modes.
// When current is not offered, stepping starts from the closest lower mode,
// or from the first one when every mode is higher. It reports false when
// there are no modes at all.
func StepResolution(modes []ScreenMode, current ScreenMode, forward bool) (ScreenMode, bool) {
	sorted := SortModes(modes)
	if len(sorted) == 0 {
		return current, false
	}

	idx := sort.Search(len(sorted), func(i int) bool { return !sorted[i].Less(current) })
	if idx == len(sorted) || sorted[idx] != current {
		idx--
	}
	if idx < 0 {
		idx = 0
	}

	idx = StepCycle(idx, 0, len(sorted)-1, forward)
	return sorted[idx], true
}
