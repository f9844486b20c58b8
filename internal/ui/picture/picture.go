// Package picture renders art-directed <picture> elements whose layout space
// follows the aspect ratio of the source matching the viewport.
package picture

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/platform/style"
	"github.com/louisbranch/imagebox/internal/ui/aspectratio"
	"github.com/louisbranch/imagebox/internal/ui/image"
	"github.com/louisbranch/imagebox/internal/ui/markup"
	"github.com/louisbranch/imagebox/internal/ui/responsive"
)

// ClassPicture marks the picture element.
const ClassPicture = "Picture"

// BoxOptions styles the aspect ratio box around the picture. Ratio, Width
// and Height act as the base when no source condition matches.
type BoxOptions struct {
	Ratio          float64
	Width          float64
	Height         float64
	ContainerStyle style.Declarations
	BoxStyle       style.Declarations
}

// Options configures a picture. The fallback image never carries width or
// height since dimensions vary per source.
type Options struct {
	Image   image.Options
	Sources []responsive.Source
	Box     BoxOptions
}

// Picture renders <picture> with one <source> per descriptor and the fallback
// <img>. When any source yields a responsive ratio the picture is wrapped in
// an aspect ratio box. It renders nothing when the fallback image cannot
// resolve its source.
func Picture(opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := image.ResolveSource(opts.Image.Source); err != nil {
			return nil
		}
		fallback := opts.Image
		fallback.Width, fallback.Height, fallback.Ratio = 0, 0, 0

		pictureElement := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return markup.Wrap(w, "picture", []markup.Attr{{Name: "class", Value: ClassPicture}}, func() error {
				if err := responsive.BuildSourceList(opts.Sources).Render(ctx, w); err != nil {
					return err
				}
				return image.Tag(fallback).Render(ctx, w)
			})
		})

		ratios := responsive.BuildResponsiveRatios(opts.Sources)
		if len(ratios) == 0 {
			return pictureElement.Render(ctx, w)
		}
		return aspectratio.Box(aspectratio.BoxOptions{
			Ratio:          opts.Box.Ratio,
			Width:          opts.Box.Width,
			Height:         opts.Box.Height,
			Responsive:     ratios,
			ContainerStyle: opts.Box.ContainerStyle,
			BoxStyle:       opts.Box.BoxStyle,
			Content:        pictureElement,
		}).Render(ctx, w)
	})
}
