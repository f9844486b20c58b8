package gallery

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/platform/branding"
	"github.com/louisbranch/imagebox/internal/ui/markup"
)

// pageLayout wraps body in a minimal HTML document titled with the app name.
func pageLayout(lang, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		return markup.Wrap(w, "html", []markup.Attr{{Name: "lang", Value: lang}}, func() error {
			if err := markup.Wrap(w, "head", nil, func() error {
				if _, err := io.WriteString(w, `<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`); err != nil {
					return err
				}
				return markup.Wrap(w, "title", nil, func() error {
					_, err := io.WriteString(w, templ.EscapeString(branding.ComposePageTitle(title)))
					return err
				})
			}); err != nil {
				return err
			}
			return markup.Wrap(w, "body", nil, func() error {
				return markup.Wrap(w, "main", []markup.Attr{{Name: "class", Value: "Gallery"}}, func() error {
					return body.Render(ctx, w)
				})
			})
		})
	})
}

func heading(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return markup.Wrap(w, "h1", nil, func() error {
			_, err := io.WriteString(w, templ.EscapeString(text))
			return err
		})
	})
}

// storyIndex lists links to every story.
func storyIndex(title string, stories []Story) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(title).Render(ctx, w); err != nil {
			return err
		}
		return markup.Wrap(w, "ul", []markup.Attr{{Name: "class", Value: "StoryIndex"}}, func() error {
			for _, story := range stories {
				if err := markup.Wrap(w, "li", nil, func() error {
					href := string(templ.URL("/stories/" + story.ID))
					return markup.Wrap(w, "a", []markup.Attr{{Name: "href", Value: href}}, func() error {
						_, err := io.WriteString(w, templ.EscapeString(story.Title))
						return err
					})
				}); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// storyPage renders the story preview. Components that render nothing, e.g.
// an image with an invalid source, are replaced by emptyNotice.
func storyPage(ctx context.Context, story Story, preview templ.Component, emptyNotice string) (templ.Component, error) {
	var rendered bytes.Buffer
	if err := preview.Render(ctx, &rendered); err != nil {
		return nil, err
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := heading(story.Title).Render(ctx, w); err != nil {
			return err
		}
		return markup.Wrap(w, "section", []markup.Attr{
			{Name: "class", Value: "Story"},
			{Name: "data-story", Value: story.ID},
			{Name: "data-kind", Value: story.Kind},
		}, func() error {
			if strings.TrimSpace(rendered.String()) == "" {
				return markup.Wrap(w, "p", []markup.Attr{{Name: "class", Value: "StoryEmpty"}}, func() error {
					_, err := io.WriteString(w, templ.EscapeString(emptyNotice))
					return err
				})
			}
			_, err := w.Write(rendered.Bytes())
			return err
		})
	}), nil
}
