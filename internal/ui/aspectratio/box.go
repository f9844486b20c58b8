package aspectratio

import (
	"context"
	"hash/fnv"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/platform/style"
	"github.com/louisbranch/imagebox/internal/ui/markup"
)

// Class tokens consumed by external stylesheets.
const (
	ClassContainer = "AspectRatioContainer"
	ClassBox       = "AspectRatioBox"
	ClassBoxInside = "AspectRatioBoxInside"
)

// BoxOptions configures an aspect ratio box.
type BoxOptions struct {
	Ratio      float64
	Width      float64
	Height     float64
	Responsive []ResponsiveRatio

	// ContainerStyle and BoxStyle are merged over the computed declarations.
	ContainerStyle style.Declarations
	BoxStyle       style.Declarations

	Content templ.Component
}

// Input returns the calculator input for the box.
func (o BoxOptions) Input() Input {
	return Input{Ratio: o.Ratio, Width: o.Width, Height: o.Height, Responsive: o.Responsive}
}

// Box reserves space for Content before it loads. Without content nothing is
// rendered; without a resolvable ratio the content is rendered unwrapped.
func Box(opts BoxOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if opts.Content == nil {
			return nil
		}
		layout, ok := ResolveLayout(opts)
		if !ok {
			return opts.Content.Render(ctx, w)
		}
		if sheet := style.Sheet(layout.Rules); sheet != "" {
			if err := markup.Wrap(w, "style", nil, func() error {
				_, err := io.WriteString(w, sheet)
				return err
			}); err != nil {
				return err
			}
		}
		return markup.Wrap(w, "div", []markup.Attr{
			{Name: "class", Value: ClassContainer},
			{Name: "style", Value: layout.Container.Inline()},
		}, func() error {
			return markup.Wrap(w, "div", []markup.Attr{
				{Name: "class", Value: markup.Classes(ClassBox, layout.ScopeClass)},
				{Name: "style", Value: layout.Box.Inline()},
			}, func() error {
				return markup.Wrap(w, "div", []markup.Attr{
					{Name: "class", Value: ClassBoxInside},
					{Name: "style", Value: layout.Inside.Inline()},
				}, func() error {
					return opts.Content.Render(ctx, w)
				})
			})
		})
	})
}

// Layout is the resolved style of a box.
type Layout struct {
	Container style.Declarations
	Box       style.Declarations
	Inside    style.Declarations

	// ScopeClass and Rules are set in responsive mode, where padding is driven
	// by a scoped stylesheet instead of the inline style.
	ScopeClass string
	Rules      []style.Rule
}

// ResolveLayout computes the container, box and inside declarations. It
// reports false when no ratio can be resolved.
func ResolveLayout(opts BoxOptions) (Layout, bool) {
	in := opts.Input()
	if !IsDefined(in) {
		return Layout{}, false
	}

	container := style.Declarations{}
	dims := DeriveDimensions(in)
	if dims.HasWidth() {
		container["width"] = style.Pixels(dims.Width)
	}
	if dims.HasHeight() {
		container["height"] = style.Pixels(dims.Height)
	}

	box := style.Declarations{
		"position": "relative",
		"height":   "0",
		"overflow": "hidden",
	}
	inside := style.Declarations{
		"position": "absolute",
		"top":      "0",
		"left":     "0",
		"width":    "100%",
		"height":   "100%",
	}
	ratio, hasRatio := Calculate(in)
	responsive := NormalizeResponsive(in.Responsive)

	var layout Layout
	switch {
	case len(responsive) == 0:
		box["padding-bottom"] = style.PaddingRatio(ratio)
	case hasRatio:
		layout.ScopeClass = scopeClass(ratio, hasRatio, responsive)
		selector := "." + layout.ScopeClass
		layout.Rules = append(layout.Rules, style.Rule{
			Selector:     selector,
			Declarations: style.Declarations{"padding-bottom": style.PaddingRatio(ratio)},
		})
		for _, entry := range responsive {
			layout.Rules = append(layout.Rules, style.Rule{
				Media:        entry.Condition,
				Selector:     selector,
				Declarations: style.Declarations{"padding-bottom": style.PaddingRatio(entry.Ratio)},
			})
		}
	default:
		// Without a base ratio the box only collapses under a matching
		// condition; elsewhere the content keeps its natural flow.
		layout.ScopeClass = scopeClass(ratio, hasRatio, responsive)
		selector := "." + layout.ScopeClass
		insideSelector := selector + " > ." + ClassBoxInside
		for _, entry := range responsive {
			layout.Rules = append(layout.Rules,
				style.Rule{
					Media:    entry.Condition,
					Selector: selector,
					Declarations: style.Declarations{
						"height":         box["height"],
						"overflow":       box["overflow"],
						"padding-bottom": style.PaddingRatio(entry.Ratio),
					},
				},
				style.Rule{
					Media:        entry.Condition,
					Selector:     insideSelector,
					Declarations: inside,
				},
			)
		}
		box = style.Declarations{"position": "relative"}
		inside = style.Declarations{}
	}
	layout.Inside = inside
	layout.Container = container.Merge(opts.ContainerStyle)
	layout.Box = box.Merge(opts.BoxStyle)
	return layout, true
}

func scopeClass(ratio float64, hasRatio bool, entries []ResponsiveRatio) string {
	h := fnv.New64a()
	if hasRatio {
		_, _ = h.Write([]byte(style.Number(ratio)))
	}
	for _, entry := range entries {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(entry.Condition))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(style.Number(entry.Ratio)))
	}
	return ClassBox + "-" + strconv.FormatUint(h.Sum64(), 36)
}
