// Package responsive composes art-directed <source> lists, per-condition
// aspect ratios, and srcset/sizes strings for resolution switching.
package responsive

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/ui/aspectratio"
	"github.com/louisbranch/imagebox/internal/ui/markup"
)

// Source describes one art-directed alternative of a picture. Ratio or
// Width and Height let the picture reserve space per media condition.
type Source struct {
	SrcSet string
	Media  string
	Type   string

	Ratio  float64
	Width  float64
	Height float64
}

func (s Source) aspectInput() aspectratio.Input {
	return aspectratio.Input{Ratio: s.Ratio, Width: s.Width, Height: s.Height}
}

// BuildSourceList renders one <source> per descriptor, keeping only the
// non-empty srcset, media and type attributes.
func BuildSourceList(sources []Source) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, source := range sources {
			if err := markup.Open(w, "source",
				markup.Attr{Name: "srcset", Value: strings.TrimSpace(source.SrcSet)},
				markup.Attr{Name: "media", Value: strings.TrimSpace(source.Media)},
				markup.Attr{Name: "type", Value: strings.TrimSpace(source.Type)},
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// BuildResponsiveRatios returns one entry per source that has both a media
// condition and a computable ratio. It returns nil when none qualify.
func BuildResponsiveRatios(sources []Source) []aspectratio.ResponsiveRatio {
	var entries []aspectratio.ResponsiveRatio
	for _, source := range sources {
		media := strings.TrimSpace(source.Media)
		if media == "" {
			continue
		}
		ratio, ok := aspectratio.Calculate(source.aspectInput())
		if !ok {
			continue
		}
		entries = append(entries, aspectratio.ResponsiveRatio{Condition: media, Ratio: ratio})
	}
	return aspectratio.NormalizeResponsive(entries)
}
