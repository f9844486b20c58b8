package aspectratio

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/platform/style"
	"golang.org/x/net/html"
)

func textContent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "class" {
				for _, token := range strings.Fields(attr.Val) {
					if token == class {
						return n
					}
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestBoxRendersNothingWithoutContent(t *testing.T) {
	if got := render(t, Box(BoxOptions{Ratio: 1})); got != "" {
		t.Fatalf("Box() = %q, want empty", got)
	}
}

func TestBoxRendersBareContentWhenUndefined(t *testing.T) {
	got := render(t, Box(BoxOptions{Width: 100, Content: textContent("<p>hi</p>")}))
	if got != "<p>hi</p>" {
		t.Fatalf("Box() = %q, want bare content", got)
	}
}

func TestBoxReservesSquareSpace(t *testing.T) {
	doc := parse(t, render(t, Box(BoxOptions{Width: 150, Height: 150, Content: textContent("x")})))

	container := findByClass(doc, ClassContainer)
	if container == nil {
		t.Fatal("expected container")
	}
	if got := attr(container, "style"); got != "height:150px; width:150px;" {
		t.Fatalf("container style = %q", got)
	}
	box := findByClass(doc, ClassBox)
	if box == nil {
		t.Fatal("expected box")
	}
	if got := attr(box, "style"); !strings.Contains(got, "padding-bottom:calc(1 * 100%);") {
		t.Fatalf("box style = %q, want square padding", got)
	}
	inside := findByClass(doc, ClassBoxInside)
	if inside == nil || inside.FirstChild == nil || inside.FirstChild.Data != "x" {
		t.Fatal("expected content inside the inner box")
	}
	if got := attr(inside, "style"); got != "height:100%; left:0; position:absolute; top:0; width:100%;" {
		t.Fatalf("inside style = %q", got)
	}
}

func TestBoxReconcilesWidthWithRatio(t *testing.T) {
	doc := parse(t, render(t, Box(BoxOptions{Ratio: 9.0 / 16.0, Width: 150, Height: 150, Content: textContent("x")})))
	container := findByClass(doc, ClassContainer)
	if got := attr(container, "style"); got != "height:150px; width:266.6666666666667px;" {
		t.Fatalf("container style = %q", got)
	}
	if got := attr(findByClass(doc, ClassBox), "style"); !strings.Contains(got, "padding-bottom:calc(0.5625 * 100%);") {
		t.Fatalf("box style = %q", got)
	}
}

func TestBoxResponsiveUsesScopedRules(t *testing.T) {
	out := render(t, Box(BoxOptions{
		Responsive: []ResponsiveRatio{
			{Condition: "(min-width:600px)", Ratio: 1024.0 / 768.0},
			{Condition: "(max-width:599px)", Ratio: 320.0 / 320.0},
		},
		Content: textContent("x"),
	}))
	doc := parse(t, out)
	box := findByClass(doc, ClassBox)
	if box == nil {
		t.Fatal("expected box")
	}
	if strings.Contains(attr(box, "style"), "padding-bottom") {
		t.Fatalf("inline padding would override media rules: %q", attr(box, "style"))
	}
	classes := strings.Fields(attr(box, "class"))
	if len(classes) != 2 || !strings.HasPrefix(classes[1], ClassBox+"-") {
		t.Fatalf("box class = %q, want scope class", attr(box, "class"))
	}
	scope := "." + classes[1]
	if !strings.Contains(out, "@media (min-width:600px){"+scope+"{height:0; overflow:hidden; padding-bottom:calc(1.3333333333333333 * 100%);}}") {
		t.Fatalf("missing min-width rule in %q", out)
	}
	if !strings.Contains(out, "@media (max-width:599px){"+scope+"{height:0; overflow:hidden; padding-bottom:calc(1 * 100%);}}") {
		t.Fatalf("missing max-width rule in %q", out)
	}
	if strings.Contains(out, "<style>"+scope+"{") {
		t.Fatalf("unexpected base rule without a base ratio: %q", out)
	}
}

func TestBoxResponsiveWithoutBaseRatioKeepsUnmatchedViewportsVisible(t *testing.T) {
	out := render(t, Box(BoxOptions{
		Responsive: []ResponsiveRatio{{Condition: "(min-width: 600px)", Ratio: 0.75}},
		Content:    textContent(`<img src="a.png" alt="a">`),
	}))
	doc := parse(t, out)
	box := findByClass(doc, ClassBox)
	if box == nil {
		t.Fatal("expected box")
	}
	if got := attr(box, "style"); got != "position:relative;" {
		t.Fatalf("box style = %q, want only position", got)
	}
	inside := findByClass(doc, ClassBoxInside)
	if inside == nil {
		t.Fatal("expected inner box")
	}
	if got := attr(inside, "style"); got != "" {
		t.Fatalf("inside style = %q, want none outside the media rule", got)
	}
	scope := "." + strings.Fields(attr(box, "class"))[1]
	wantRules := []string{
		"@media (min-width: 600px){" + scope + "{height:0; overflow:hidden; padding-bottom:calc(0.75 * 100%);}}",
		"@media (min-width: 600px){" + scope + " > ." + ClassBoxInside + "{height:100%; left:0; position:absolute; top:0; width:100%;}}",
	}
	for _, want := range wantRules {
		if !strings.Contains(out, want) {
			t.Fatalf("missing rule %q in %q", want, out)
		}
	}
}

func TestBoxResponsiveKeepsRangeConditions(t *testing.T) {
	out := render(t, Box(BoxOptions{
		Ratio:      1,
		Responsive: []ResponsiveRatio{{Condition: "(400px <= width <= 700px)", Ratio: 0.5}},
		Content:    textContent("x"),
	}))
	if !strings.Contains(out, "@media (400px <= width <= 700px){") {
		t.Fatalf("missing range rule in %q", out)
	}
}

func TestBoxResponsiveKeepsBaseRatioFirst(t *testing.T) {
	layout, ok := ResolveLayout(BoxOptions{
		Ratio:      0.5,
		Responsive: []ResponsiveRatio{{Condition: "(min-width: 1024px)", Ratio: 0.75}},
	})
	if !ok {
		t.Fatal("expected layout")
	}
	if len(layout.Rules) != 2 || layout.Rules[0].Media != "" || layout.Rules[1].Media != "(min-width: 1024px)" {
		t.Fatalf("rules = %+v, want base then media", layout.Rules)
	}
}

func TestBoxStyleOverridesMerge(t *testing.T) {
	layout, ok := ResolveLayout(BoxOptions{
		Ratio:          1,
		BoxStyle:       style.Declarations{"background-color": "red"},
		ContainerStyle: style.Declarations{"width": "50%"},
	})
	if !ok {
		t.Fatal("expected layout")
	}
	if layout.Box["background-color"] != "red" {
		t.Fatalf("box background = %q", layout.Box["background-color"])
	}
	if layout.Container["width"] != "50%" {
		t.Fatalf("container width = %q", layout.Container["width"])
	}
}

func TestBoxRenderIsIdempotent(t *testing.T) {
	opts := BoxOptions{
		Ratio: 0.5,
		Responsive: []ResponsiveRatio{
			{Condition: "(min-width: 1600px)", Ratio: 900.0 / 1600.0},
			{Condition: "(max-width: 599px)", Ratio: 1},
		},
		BoxStyle: style.Declarations{"background-color": "red", "outline": "1px solid"},
		Content:  textContent("x"),
	}
	first := render(t, Box(opts))
	second := render(t, Box(opts))
	if first != second {
		t.Fatalf("renders differ:\n%s\n%s", first, second)
	}
}
