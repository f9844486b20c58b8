package gallery

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	apperrors "github.com/louisbranch/imagebox/internal/platform/errors"
	"github.com/louisbranch/imagebox/internal/platform/style"
)

//go:embed data/stories.toml
var storiesTOML []byte

var (
	loadStoriesOnce  sync.Once
	embeddedCatalog  Catalog
	catalogLoadError error
)

// Story kinds.
const (
	KindImage      = "image"
	KindResponsive = "responsive"
	KindPicture    = "picture"
	KindBox        = "box"
)

// Ratio is an aspect ratio read from TOML as a number or as "height/width".
type Ratio float64

// UnmarshalTOML implements toml.Unmarshaler.
func (r *Ratio) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case float64:
		*r = Ratio(v)
	case int64:
		*r = Ratio(v)
	case string:
		parsed, err := parseRatio(v)
		if err != nil {
			return err
		}
		*r = Ratio(parsed)
	default:
		return fmt.Errorf("ratio: unsupported value %T", value)
	}
	return nil
}

func parseRatio(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	height, width, ok := strings.Cut(raw, "/")
	if !ok {
		return strconv.ParseFloat(raw, 64)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(height), 64)
	if err != nil {
		return 0, fmt.Errorf("ratio %q: %w", raw, err)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(width), 64)
	if err != nil {
		return 0, fmt.Errorf("ratio %q: %w", raw, err)
	}
	if w == 0 {
		return 0, fmt.Errorf("ratio %q: zero width", raw)
	}
	return h / w, nil
}

// StoryImage holds the image fields of a story.
type StoryImage struct {
	URL     string  `toml:"url"`
	Path    string  `toml:"path"`
	Caption string  `toml:"caption"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Ratio   Ratio   `toml:"ratio"`
}

// StoryResponsive holds resolution-switching fields.
type StoryResponsive struct {
	SrcSet       string `toml:"src_set"`
	Sizes        string `toml:"sizes"`
	SrcSetWidths []int  `toml:"src_set_widths"`
	Breakpoints  []int  `toml:"breakpoints"`
	AssetID      string `toml:"asset_id"`
	AssetExt     string `toml:"asset_ext"`
}

// StorySource is one art-directed source.
type StorySource struct {
	Media  string  `toml:"media"`
	SrcSet string  `toml:"src_set"`
	Type   string  `toml:"type"`
	Ratio  Ratio   `toml:"ratio"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// StoryBox holds aspect ratio box fields.
type StoryBox struct {
	Ratio          Ratio             `toml:"ratio"`
	Width          float64           `toml:"width"`
	Height         float64           `toml:"height"`
	BoxStyle       map[string]string `toml:"box_style"`
	ContainerStyle map[string]string `toml:"container_style"`
}

// Story is one gallery entry.
type Story struct {
	ID         string          `toml:"id"`
	Title      string          `toml:"title"`
	Kind       string          `toml:"kind"`
	Content    string          `toml:"content"`
	Image      StoryImage      `toml:"image"`
	Responsive StoryResponsive `toml:"responsive"`
	Sources    []StorySource   `toml:"sources"`
	Box        StoryBox        `toml:"box"`
}

func (b StoryBox) boxStyle() style.Declarations       { return style.Declarations(b.BoxStyle) }
func (b StoryBox) containerStyle() style.Declarations { return style.Declarations(b.ContainerStyle) }

// Catalog is an ordered set of stories.
type Catalog struct {
	stories []Story
	byID    map[string]int
}

type catalogDocument struct {
	Stories []Story `toml:"stories"`
}

// ParseCatalog decodes and validates a TOML story catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var doc catalogDocument
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Catalog{}, apperrors.Wrap(apperrors.CodeStoryInvalid, "decode story catalog", err)
	}
	catalog := Catalog{byID: make(map[string]int, len(doc.Stories))}
	for _, story := range doc.Stories {
		story.ID = strings.TrimSpace(story.ID)
		story.Kind = strings.TrimSpace(story.Kind)
		if story.ID == "" {
			return Catalog{}, apperrors.New(apperrors.CodeStoryInvalid, "story id is required")
		}
		if _, dup := catalog.byID[story.ID]; dup {
			return Catalog{}, apperrors.WithMetadata(apperrors.CodeStoryInvalid, "duplicate story id", map[string]string{"id": story.ID})
		}
		switch story.Kind {
		case KindImage, KindResponsive, KindPicture, KindBox:
		default:
			return Catalog{}, apperrors.WithMetadata(apperrors.CodeStoryInvalid, "unknown story kind", map[string]string{"id": story.ID, "kind": story.Kind})
		}
		if strings.TrimSpace(story.Title) == "" {
			story.Title = story.ID
		}
		catalog.byID[story.ID] = len(catalog.stories)
		catalog.stories = append(catalog.stories, story)
	}
	return catalog, nil
}

// EmbeddedCatalog returns the stories shipped with the gallery.
func EmbeddedCatalog() (Catalog, error) {
	loadStoriesOnce.Do(func() {
		embeddedCatalog, catalogLoadError = ParseCatalog(storiesTOML)
	})
	return embeddedCatalog, catalogLoadError
}

// Stories returns the stories in catalog order.
func (c Catalog) Stories() []Story {
	return append([]Story(nil), c.stories...)
}

// Lookup returns the story with id.
func (c Catalog) Lookup(id string) (Story, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Story{}, apperrors.WithMetadata(apperrors.CodeStoryNotFound, "story not found", map[string]string{"id": id})
	}
	return c.stories[i], nil
}
