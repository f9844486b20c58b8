package responsive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/imagebox/internal/platform/assets/imagecdn"
)

// ErrResolverRequired is returned when BuildSrcSet has no resolver.
var ErrResolverRequired = errors.New("url resolver is required")

// URLResolver resolves asset delivery URLs.
type URLResolver interface {
	URL(imagecdn.Request) (string, error)
}

// BuildSrcSet renders a width-descriptor srcset ("<url> <w>w, ...") by
// requesting each width from resolver. Non-positive widths are skipped.
func BuildSrcSet(resolver URLResolver, req imagecdn.Request, widths []int) (string, error) {
	if resolver == nil {
		return "", ErrResolverRequired
	}
	parts := make([]string, 0, len(widths))
	for _, width := range widths {
		if width <= 0 {
			continue
		}
		variant := req
		delivery := imagecdn.Delivery{WidthPX: width}
		variant.Delivery = &delivery
		resolved, err := resolver.URL(variant)
		if err != nil {
			return "", fmt.Errorf("resolve %dw variant: %w", width, err)
		}
		parts = append(parts, resolved+" "+strconv.Itoa(width)+"w")
	}
	return strings.Join(parts, ", "), nil
}
