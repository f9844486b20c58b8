package gallery

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/platform/assets/imagecdn"
	"github.com/louisbranch/imagebox/internal/ui/aspectratio"
	"github.com/louisbranch/imagebox/internal/ui/image"
	"github.com/louisbranch/imagebox/internal/ui/markup"
	"github.com/louisbranch/imagebox/internal/ui/picture"
	"github.com/louisbranch/imagebox/internal/ui/responsive"
)

// renderEnv carries request-scoped inputs for building story components.
type renderEnv struct {
	cdn             imagecdn.CDN
	fallbackCaption string
}

// component builds the component a story previews.
func (s Story) component(env renderEnv) (templ.Component, error) {
	switch s.Kind {
	case KindImage:
		return image.Image(s.imageOptions(env)), nil
	case KindResponsive:
		opts, err := s.responsiveOptions(env)
		if err != nil {
			return nil, err
		}
		return image.Responsive(opts), nil
	case KindPicture:
		return picture.Picture(picture.Options{
			Image:   s.imageOptions(env),
			Sources: s.sources(),
			Box: picture.BoxOptions{
				Ratio:          float64(s.Box.Ratio),
				Width:          s.Box.Width,
				Height:         s.Box.Height,
				ContainerStyle: s.Box.containerStyle(),
				BoxStyle:       s.Box.boxStyle(),
			},
		}), nil
	case KindBox:
		var content templ.Component
		if text := strings.TrimSpace(s.Content); text != "" {
			content = textBlock(text)
		}
		return aspectratio.Box(aspectratio.BoxOptions{
			Ratio:          float64(s.Box.Ratio),
			Width:          s.Box.Width,
			Height:         s.Box.Height,
			ContainerStyle: s.Box.containerStyle(),
			BoxStyle:       s.Box.boxStyle(),
			Content:        content,
		}), nil
	default:
		return nil, fmt.Errorf("story %s: unknown kind %q", s.ID, s.Kind)
	}
}

func (s Story) imageOptions(env renderEnv) image.Options {
	return image.Options{
		Source:          image.Source{URL: s.Image.URL, Path: s.Image.Path},
		Caption:         s.Image.Caption,
		FallbackCaption: env.fallbackCaption,
		Width:           s.Image.Width,
		Height:          s.Image.Height,
		Ratio:           float64(s.Image.Ratio),
		ContainerStyle:  s.Box.containerStyle(),
		BoxStyle:        s.Box.boxStyle(),
	}
}

func (s Story) responsiveOptions(env renderEnv) (image.ResponsiveOptions, error) {
	opts := image.ResponsiveOptions{
		Options:      s.imageOptions(env),
		SrcSet:       s.Responsive.SrcSet,
		Sizes:        s.Responsive.Sizes,
		SrcSetWidths: s.Responsive.SrcSetWidths,
		Breakpoints:  s.Responsive.Breakpoints,
	}
	if strings.TrimSpace(opts.SrcSet) == "" && strings.TrimSpace(s.Responsive.AssetID) != "" {
		srcSet, err := responsive.BuildSrcSet(env.cdn, imagecdn.Request{
			AssetID:   s.Responsive.AssetID,
			Extension: s.Responsive.AssetExt,
		}, s.Responsive.SrcSetWidths)
		if err != nil {
			return image.ResponsiveOptions{}, fmt.Errorf("story %s: build srcset: %w", s.ID, err)
		}
		opts.SrcSet = srcSet
	}
	return opts, nil
}

func (s Story) sources() []responsive.Source {
	if len(s.Sources) == 0 {
		return nil
	}
	sources := make([]responsive.Source, 0, len(s.Sources))
	for _, source := range s.Sources {
		sources = append(sources, responsive.Source{
			SrcSet: source.SrcSet,
			Media:  source.Media,
			Type:   source.Type,
			Ratio:  float64(source.Ratio),
			Width:  source.Width,
			Height: source.Height,
		})
	}
	return sources
}

func textBlock(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return markup.Wrap(w, "p", []markup.Attr{{Name: "class", Value: "StoryContent"}}, func() error {
			_, err := io.WriteString(w, templ.EscapeString(text))
			return err
		})
	})
}
