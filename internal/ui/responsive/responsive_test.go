package responsive

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/imagebox/internal/platform/assets/imagecdn"
	"github.com/louisbranch/imagebox/internal/ui/aspectratio"
)

func TestBuildResponsiveRatiosKeyedByMedia(t *testing.T) {
	got := BuildResponsiveRatios([]Source{
		{Media: "(min-width:600px)", Ratio: 1024.0 / 768.0},
		{Media: "(max-width:599px)", Ratio: 320.0 / 320.0},
	})
	want := []aspectratio.ResponsiveRatio{
		{Condition: "(min-width:600px)", Ratio: 1024.0 / 768.0},
		{Condition: "(max-width:599px)", Ratio: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("BuildResponsiveRatios() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildResponsiveRatiosFromDimensions(t *testing.T) {
	got := BuildResponsiveRatios([]Source{{Media: "(min-width: 1600px)", Width: 1600, Height: 900}})
	if len(got) != 1 || got[0].Ratio != 900.0/1600.0 {
		t.Fatalf("BuildResponsiveRatios() = %+v, want ratio %v", got, 900.0/1600.0)
	}
}

func TestBuildResponsiveRatiosSkipsIncompleteSources(t *testing.T) {
	got := BuildResponsiveRatios([]Source{
		{Media: "(min-width: 1600px)", SrcSet: "a.png"},
		{Ratio: 0.5},
		{Media: "(min-width: 600px)", Width: 768},
		{Media: "(max-width: 599px)", Ratio: 1},
	})
	if len(got) != 1 || got[0].Condition != "(max-width: 599px)" {
		t.Fatalf("BuildResponsiveRatios() = %+v, want only the max-width entry", got)
	}
}

func TestBuildResponsiveRatiosEmpty(t *testing.T) {
	if got := BuildResponsiveRatios(nil); got != nil {
		t.Fatalf("BuildResponsiveRatios(nil) = %+v, want nil", got)
	}
	if got := BuildResponsiveRatios([]Source{{Media: "(min-width: 1px)"}}); got != nil {
		t.Fatalf("BuildResponsiveRatios(no ratio) = %+v, want nil", got)
	}
}

func TestBuildSourceListOmitsEmptyAttributes(t *testing.T) {
	var b strings.Builder
	err := BuildSourceList([]Source{
		{SrcSet: "a.png, a2x.png 2x", Media: "(min-width: 1024px)", Type: "image/png"},
		{SrcSet: "b.png"},
	}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	want := `<source srcset="a.png, a2x.png 2x" media="(min-width: 1024px)" type="image/png"><source srcset="b.png">`
	if b.String() != want {
		t.Fatalf("BuildSourceList() = %q, want %q", b.String(), want)
	}
}

func TestMapWidthsToBreakpoints(t *testing.T) {
	cases := []struct {
		name        string
		breakpoints []int
		widths      []int
		want        []BreakpointWidth
	}{
		{
			name:        "one to one after default",
			breakpoints: []int{600, 1024, 1600},
			widths:      []int{960, 1722, 2388, 3840},
			want:        []BreakpointWidth{{600, 1722}, {1024, 2388}, {1600, 3840}},
		},
		{
			name:        "reuses last width",
			breakpoints: []int{600, 1024, 1600},
			widths:      []int{320, 640},
			want:        []BreakpointWidth{{600, 640}, {1024, 640}, {1600, 640}},
		},
		{
			name:        "single candidate",
			breakpoints: []int{600, 1024},
			widths:      []int{960},
			want:        []BreakpointWidth{{600, 960}, {1024, 960}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapWidthsToBreakpoints(tc.breakpoints, tc.widths)
			if len(got) != len(tc.want) {
				t.Fatalf("MapWidthsToBreakpoints() = %+v, want %+v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("entry %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestMapWidthsToBreakpointsAbsentInputs(t *testing.T) {
	if got := MapWidthsToBreakpoints(nil, []int{1}); got != nil {
		t.Fatalf("MapWidthsToBreakpoints(nil, ...) = %+v, want nil", got)
	}
	if got := MapWidthsToBreakpoints([]int{600}, nil); got != nil {
		t.Fatalf("MapWidthsToBreakpoints(..., nil) = %+v, want nil", got)
	}
}

func TestBuildSizesOrdersLargestFirst(t *testing.T) {
	got := BuildSizes([]BreakpointWidth{{600, 1722}, {1024, 2388}}, 960)
	want := "(min-width: 1024px) 2388px, (min-width: 600px) 1722px, 960px"
	if got != want {
		t.Fatalf("BuildSizes() = %q, want %q", got, want)
	}
	if got := BuildSizes(nil, 0); got != "" {
		t.Fatalf("BuildSizes(nil, 0) = %q, want empty", got)
	}
}

func TestBuildSrcSetUsesDeliveryWidths(t *testing.T) {
	cdn := imagecdn.New("https://res.cloudinary.com/imagebox/image/upload")
	got, err := BuildSrcSet(cdn, imagecdn.Request{AssetID: "hero"}, []int{320, 0, 640})
	if err != nil {
		t.Fatalf("BuildSrcSet() error = %v", err)
	}
	want := "https://res.cloudinary.com/imagebox/image/upload/f_auto,q_auto,dpr_auto,c_limit,w_320/hero.png 320w, " +
		"https://res.cloudinary.com/imagebox/image/upload/f_auto,q_auto,dpr_auto,c_limit,w_640/hero.png 640w"
	if got != want {
		t.Fatalf("BuildSrcSet() = %q, want %q", got, want)
	}
}

func TestBuildSrcSetPropagatesResolverErrors(t *testing.T) {
	_, err := BuildSrcSet(imagecdn.New(""), imagecdn.Request{}, []int{320})
	if !errors.Is(err, imagecdn.ErrAssetIDRequired) {
		t.Fatalf("BuildSrcSet() error = %v, want %v", err, imagecdn.ErrAssetIDRequired)
	}
	if _, err := BuildSrcSet(nil, imagecdn.Request{}, nil); !errors.Is(err, ErrResolverRequired) {
		t.Fatalf("BuildSrcSet(nil) error = %v, want %v", err, ErrResolverRequired)
	}
}

func TestBuildResponsiveRatiosKeepsRangeSyntax(t *testing.T) {
	got := BuildResponsiveRatios([]Source{
		{Media: "(width >= 600px)", Ratio: 0.75},
		{Media: "(width < 600px)", Ratio: 1},
	})
	want := []aspectratio.ResponsiveRatio{
		{Condition: "(width >= 600px)", Ratio: 0.75},
		{Condition: "(width < 600px)", Ratio: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("BuildResponsiveRatios() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
