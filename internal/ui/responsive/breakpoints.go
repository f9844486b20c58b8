package responsive

import (
	"sort"
	"strconv"
	"strings"
)

// BreakpointWidth pairs a viewport breakpoint with the image width to use
// from that breakpoint up, both in CSS pixels.
type BreakpointWidth struct {
	Breakpoint int
	Width      int
}

// MapWidthsToBreakpoints pairs breakpoints with candidate widths by position.
// The first candidate is the default width and is dropped before pairing;
// when candidates run out the last one is reused. A single candidate is used
// for every breakpoint. Nil is returned when either list is empty.
func MapWidthsToBreakpoints(breakpoints, widths []int) []BreakpointWidth {
	if len(breakpoints) == 0 || len(widths) == 0 {
		return nil
	}
	candidates := widths[1:]
	if len(candidates) == 0 {
		candidates = widths
	}
	mapping := make([]BreakpointWidth, 0, len(breakpoints))
	for i, breakpoint := range breakpoints {
		width := candidates[len(candidates)-1]
		if i < len(candidates) {
			width = candidates[i]
		}
		mapping = append(mapping, BreakpointWidth{Breakpoint: breakpoint, Width: width})
	}
	return mapping
}

// BuildSizes renders a sizes attribute from a breakpoint mapping. Browsers
// take the first matching condition, so larger breakpoints come first and the
// default width closes the list.
func BuildSizes(mapping []BreakpointWidth, defaultWidth int) string {
	ordered := append([]BreakpointWidth(nil), mapping...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Breakpoint > ordered[j].Breakpoint
	})
	parts := make([]string, 0, len(ordered)+1)
	for _, entry := range ordered {
		if entry.Breakpoint <= 0 || entry.Width <= 0 {
			continue
		}
		parts = append(parts, "(min-width: "+strconv.Itoa(entry.Breakpoint)+"px) "+strconv.Itoa(entry.Width)+"px")
	}
	if defaultWidth > 0 {
		parts = append(parts, strconv.Itoa(defaultWidth)+"px")
	}
	return strings.Join(parts, ", ")
}
