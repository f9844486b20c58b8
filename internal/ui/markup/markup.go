// Package markup writes escaped HTML elements for hand-written templ
// components.
package markup

import (
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one element attribute. Attributes with empty values are omitted.
type Attr struct {
	Name  string
	Value string
}

// Classes joins non-blank class tokens in order.
func Classes(tokens ...string) string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		for _, field := range strings.Fields(token) {
			kept = append(kept, field)
		}
	}
	return strings.Join(kept, " ")
}

// Open writes a start tag.
func Open(w io.Writer, tag string, attrs ...Attr) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, attr := range attrs {
		if attr.Name == "" || attr.Value == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	_, err := io.WriteString(w, b.String())
	return err
}

// Close writes an end tag.
func Close(w io.Writer, tag string) error {
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// Wrap renders content inside tag.
func Wrap(w io.Writer, tag string, attrs []Attr, content func() error) error {
	if err := Open(w, tag, attrs...); err != nil {
		return err
	}
	if content != nil {
		if err := content(); err != nil {
			return err
		}
	}
	return Close(w, tag)
}
