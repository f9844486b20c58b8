// Package aspectratio derives aspect ratios from optional dimensions and
// renders boxes that reserve layout space with the padding-bottom technique.
//
// An aspect ratio is height divided by width. Zero, negative and non-finite
// values are treated as absent throughout the package.
package aspectratio

import (
	"strings"

	"github.com/louisbranch/imagebox/internal/platform/style"
)

// Dimensions holds optional box dimensions in CSS pixels.
type Dimensions struct {
	Width  float64
	Height float64
}

// HasWidth reports whether a usable width is set.
func (d Dimensions) HasWidth() bool { return style.Finite(d.Width) }

// HasHeight reports whether a usable height is set.
func (d Dimensions) HasHeight() bool { return style.Finite(d.Height) }

// Complete reports whether both dimensions are set.
func (d Dimensions) Complete() bool { return d.HasWidth() && d.HasHeight() }

// ResponsiveRatio overrides the ratio while Condition (a media query) matches.
type ResponsiveRatio struct {
	Condition string
	Ratio     float64
}

// Input is the set of optional values a ratio can be derived from.
type Input struct {
	Ratio      float64
	Width      float64
	Height     float64
	Responsive []ResponsiveRatio
}

// HasRatio reports whether an explicit ratio is set.
func (in Input) HasRatio() bool { return style.Finite(in.Ratio) }

// Dimensions returns the width and height of the input.
func (in Input) Dimensions() Dimensions {
	return Dimensions{Width: in.Width, Height: in.Height}
}

// IsDefined reports whether enough is known to reserve space: an explicit
// ratio, at least one usable responsive entry, or both dimensions.
func IsDefined(in Input) bool {
	if in.HasRatio() {
		return true
	}
	if len(NormalizeResponsive(in.Responsive)) > 0 {
		return true
	}
	return in.Dimensions().Complete()
}

// Calculate returns the explicit ratio, else height/width when both are set.
func Calculate(in Input) (float64, bool) {
	if in.HasRatio() {
		return in.Ratio, true
	}
	dims := in.Dimensions()
	if !dims.Complete() {
		return 0, false
	}
	return dims.Height / dims.Width, true
}

// DeriveDimensions reconciles dimensions with an explicit ratio. When ratio,
// width and height are all set the width becomes width/ratio; otherwise the
// input dimensions are returned unchanged.
func DeriveDimensions(in Input) Dimensions {
	dims := in.Dimensions()
	if in.HasRatio() && dims.Complete() {
		return Dimensions{Width: dims.Width / in.Ratio, Height: dims.Height}
	}
	return dims
}

// NormalizeResponsive drops entries without a condition or a usable ratio and
// entries whose condition could escape a style block. A repeated condition
// replaces the earlier ratio but keeps the earlier position.
func NormalizeResponsive(entries []ResponsiveRatio) []ResponsiveRatio {
	if len(entries) == 0 {
		return nil
	}
	var out []ResponsiveRatio
	index := make(map[string]int, len(entries))
	for _, entry := range entries {
		condition := strings.TrimSpace(entry.Condition)
		if condition == "" || !style.Finite(entry.Ratio) || style.ValidateMedia(condition) != nil {
			continue
		}
		if i, ok := index[condition]; ok {
			out[i].Ratio = entry.Ratio
			continue
		}
		index[condition] = len(out)
		out = append(out, ResponsiveRatio{Condition: condition, Ratio: entry.Ratio})
	}
	return out
}
