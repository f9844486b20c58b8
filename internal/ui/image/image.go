// Package image renders sized <img> elements that fail closed on bad input
// and reserve their layout space through an aspect ratio box.
package image

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/platform/style"
	"github.com/louisbranch/imagebox/internal/ui/aspectratio"
	"github.com/louisbranch/imagebox/internal/ui/markup"
)

// DefaultCaption is the alt text used when neither a caption nor a fallback
// caption is supplied.
const DefaultCaption = "Image"

// Class tokens consumed by external stylesheets.
const (
	ClassImage     = "Image"
	ClassContainer = "ImageContainer"
)

// Options configures an image.
type Options struct {
	Source

	// Caption becomes the alt text.
	Caption string
	// FallbackCaption replaces DefaultCaption, e.g. with a localized label.
	FallbackCaption string

	Width  float64
	Height float64
	Ratio  float64

	// Class adds tokens after ClassImage.
	Class string

	// ContainerStyle and BoxStyle are handed to the aspect ratio box.
	ContainerStyle style.Declarations
	BoxStyle       style.Declarations

	srcSet string
	sizes  string
}

func (o Options) aspectInput() aspectratio.Input {
	return aspectratio.Input{Ratio: o.Ratio, Width: o.Width, Height: o.Height}
}

// AltText returns the caption, the fallback caption or DefaultCaption, in
// that order. It is never empty.
func (o Options) AltText() string {
	if caption := strings.TrimSpace(o.Caption); caption != "" {
		return caption
	}
	if fallback := strings.TrimSpace(o.FallbackCaption); fallback != "" {
		return fallback
	}
	return DefaultCaption
}

// Image renders the image inside a div.ImageContainer, nested in an aspect
// ratio box when a ratio can be resolved. It renders nothing when the source
// is missing or invalid.
func Image(opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		src, err := ResolveSource(opts.Source)
		if err != nil {
			return nil
		}
		tag := tagComponent(src, opts, aspectratio.DeriveDimensions(opts.aspectInput()))
		content := tag
		if aspectratio.IsDefined(opts.aspectInput()) {
			content = aspectratio.Box(aspectratio.BoxOptions{
				Ratio:          opts.Ratio,
				Width:          opts.Width,
				Height:         opts.Height,
				ContainerStyle: opts.ContainerStyle,
				BoxStyle:       opts.BoxStyle,
				Content:        tag,
			})
		}
		return markup.Wrap(w, "div", []markup.Attr{{Name: "class", Value: ClassContainer}}, func() error {
			return content.Render(ctx, w)
		})
	})
}

// Tag renders only the <img> element, without container or box and without
// width/height attributes. It is the fallback image inside <picture>.
func Tag(opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		src, err := ResolveSource(opts.Source)
		if err != nil {
			return nil
		}
		return tagComponent(src, opts, aspectratio.Dimensions{}).Render(ctx, w)
	})
}

func tagComponent(src string, opts Options, dims aspectratio.Dimensions) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		attrs := []markup.Attr{
			{Name: "class", Value: markup.Classes(ClassImage, opts.Class)},
			{Name: "src", Value: string(templ.URL(src))},
			{Name: "srcset", Value: strings.TrimSpace(opts.srcSet)},
			{Name: "sizes", Value: strings.TrimSpace(opts.sizes)},
			{Name: "alt", Value: opts.AltText()},
		}
		if dims.HasWidth() {
			attrs = append(attrs, markup.Attr{Name: "width", Value: style.Number(dims.Width)})
		}
		if dims.HasHeight() {
			attrs = append(attrs, markup.Attr{Name: "height", Value: style.Number(dims.Height)})
		}
		attrs = append(attrs, markup.Attr{Name: "style", Value: style.Declarations{
			"max-width": "100%",
			"height":    "auto",
		}.Inline()})
		return markup.Open(w, "img", attrs...)
	})
}
