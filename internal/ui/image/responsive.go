package image

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/ui/markup"
	"github.com/louisbranch/imagebox/internal/ui/responsive"
)

// ClassResponsive marks resolution-switching images.
const ClassResponsive = "ResponsiveImage"

// ResponsiveOptions configures a resolution-switching image: the same image
// offered at several widths through srcset and sizes. Use picture.Picture
// for art direction.
type ResponsiveOptions struct {
	Options

	SrcSet string
	Sizes  string

	// SrcSetWidths lists the widths present in SrcSet, smallest first. With
	// Breakpoints it derives Sizes when Sizes is empty; the first width is
	// the default below every breakpoint.
	SrcSetWidths []int
	Breakpoints  []int
}

// ResolvedSizes returns Sizes, or sizes composed from the breakpoint mapping.
func (o ResponsiveOptions) ResolvedSizes() string {
	if sizes := strings.TrimSpace(o.Sizes); sizes != "" {
		return sizes
	}
	mapping := responsive.MapWidthsToBreakpoints(o.Breakpoints, o.SrcSetWidths)
	if mapping == nil {
		return ""
	}
	return responsive.BuildSizes(mapping, o.SrcSetWidths[0])
}

// Responsive renders Image with srcset and sizes attributes.
func Responsive(opts ResponsiveOptions) templ.Component {
	base := opts.Options
	base.Class = markup.Classes(ClassResponsive, base.Class)
	base.srcSet = opts.SrcSet
	base.sizes = opts.ResolvedSizes()
	return Image(base)
}
