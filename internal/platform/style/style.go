// Package style builds inline CSS and scoped style rules from plain
// property/value mappings.
//
// Declarations are rendered in sorted property order so the same input always
// yields the same markup.
package style

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	apperrors "github.com/louisbranch/imagebox/internal/platform/errors"
)

// Declarations maps CSS property names to values.
type Declarations map[string]string

// Rule pairs a selector with declarations, optionally scoped to a media
// condition.
type Rule struct {
	Media        string
	Selector     string
	Declarations Declarations
}

// Merge returns a new mapping with overrides applied on top of d. Blank
// override values remove the property.
func (d Declarations) Merge(overrides Declarations) Declarations {
	merged := make(Declarations, len(d)+len(overrides))
	for property, value := range d {
		merged[property] = value
	}
	for property, value := range overrides {
		if strings.TrimSpace(value) == "" {
			delete(merged, property)
			continue
		}
		merged[property] = value
	}
	return merged
}

// Inline renders the declarations for a style attribute.
func (d Declarations) Inline() string {
	if len(d) == 0 {
		return ""
	}
	properties := make([]string, 0, len(d))
	for property := range d {
		property = strings.TrimSpace(property)
		if property == "" {
			continue
		}
		properties = append(properties, property)
	}
	sort.Strings(properties)

	var b strings.Builder
	for _, property := range properties {
		value := strings.TrimSpace(d[property])
		if value == "" || !SafeValue(value) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(property)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteByte(';')
	}
	return b.String()
}

// Sheet renders rules as a stylesheet body. Rules keep their given order
// since later media rules must override earlier ones.
func Sheet(rules []Rule) string {
	var b strings.Builder
	for _, rule := range rules {
		body := rule.Declarations.Inline()
		selector := strings.TrimSpace(rule.Selector)
		if body == "" || selector == "" {
			continue
		}
		media := strings.TrimSpace(rule.Media)
		if media != "" {
			if ValidateMedia(media) != nil {
				continue
			}
			b.WriteString("@media ")
			b.WriteString(media)
			b.WriteByte('{')
		}
		b.WriteString(selector)
		b.WriteByte('{')
		b.WriteString(body)
		b.WriteByte('}')
		if media != "" {
			b.WriteByte('}')
		}
	}
	return b.String()
}

// SafeValue reports whether value can be embedded in a declaration without
// closing the surrounding block or element.
func SafeValue(value string) bool {
	return !strings.ContainsAny(value, "<>{};\\")
}

// ValidateMedia checks that condition can be written as an @media prelude
// inside a style element. Range comparisons such as (width >= 600px) are kept;
// block delimiters, escapes, control characters and end tags are not.
func ValidateMedia(condition string) error {
	if strings.ContainsAny(condition, "{};\\") ||
		strings.Contains(condition, "</") ||
		strings.IndexFunc(condition, unicode.IsControl) >= 0 {
		return apperrors.WithMetadata(apperrors.CodeMediaConditionUnsafe, "media condition cannot be embedded in a style block", map[string]string{"condition": condition})
	}
	return nil
}

// Number formats a float with the shortest exact representation.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Pixels formats a length in px.
func Pixels(v float64) string {
	return Number(v) + "px"
}

// PaddingRatio formats the padding-bottom value that reserves ratio * width.
func PaddingRatio(ratio float64) string {
	return "calc(" + Number(ratio) + " * 100%)"
}

// Finite reports whether v is a usable positive length or ratio.
func Finite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
