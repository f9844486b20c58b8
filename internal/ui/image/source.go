package image

import (
	"net/url"
	"strings"
	"unicode"

	apperrors "github.com/louisbranch/imagebox/internal/platform/errors"
)

// Source names where an image comes from. Exactly one field should be set.
type Source struct {
	// URL is an absolute http(s) URL.
	URL string
	// Path is a relative or absolute path served by the host, e.g. logo192.png.
	Path string
}

// ResolveSource returns the validated src for s, byte for byte as supplied.
// URL takes precedence over Path; an invalid URL is an error even when a Path
// is also set. Blank fields count as absent and surrounding whitespace is
// rejected rather than trimmed.
func ResolveSource(s Source) (string, error) {
	switch {
	case strings.TrimSpace(s.URL) != "":
		if err := validateURL(s.URL); err != nil {
			return "", err
		}
		return s.URL, nil
	case strings.TrimSpace(s.Path) != "":
		if err := validatePath(s.Path); err != nil {
			return "", err
		}
		return s.Path, nil
	default:
		return "", apperrors.New(apperrors.CodeImageSourceMissing, "image source requires a url or a path")
	}
}

func validateURL(raw string) error {
	if raw != strings.TrimSpace(raw) {
		return apperrors.WithMetadata(apperrors.CodeImageURLInvalid, "image url has surrounding whitespace", map[string]string{"url": raw})
	}
	if hasControl(raw) {
		return apperrors.WithMetadata(apperrors.CodeImageURLInvalid, "image url contains control characters", map[string]string{"url": raw})
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeImageURLInvalid, "image url is malformed", map[string]string{"url": raw}, err)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return apperrors.WithMetadata(apperrors.CodeImageURLInvalid, "image url must be absolute http(s)", map[string]string{"url": raw})
	}
	if parsed.Host == "" || parsed.Hostname() == "" {
		return apperrors.WithMetadata(apperrors.CodeImageURLInvalid, "image url has no host", map[string]string{"url": raw})
	}
	return nil
}

func validatePath(raw string) error {
	if raw != strings.TrimSpace(raw) {
		return apperrors.WithMetadata(apperrors.CodeImagePathInvalid, "image path has surrounding whitespace", map[string]string{"path": raw})
	}
	if hasControl(raw) {
		return apperrors.WithMetadata(apperrors.CodeImagePathInvalid, "image path contains control characters", map[string]string{"path": raw})
	}
	if strings.ContainsAny(raw, `<>"\`) {
		return apperrors.WithMetadata(apperrors.CodeImagePathInvalid, "image path contains reserved characters", map[string]string{"path": raw})
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeImagePathInvalid, "image path is malformed", map[string]string{"path": raw}, err)
	}
	if parsed.Scheme != "" || parsed.Host != "" || strings.HasPrefix(raw, "//") {
		return apperrors.WithMetadata(apperrors.CodeImagePathInvalid, "image path must not carry a scheme or host", map[string]string{"path": raw})
	}
	if strings.Trim(parsed.Path, "/.") == "" {
		return apperrors.WithMetadata(apperrors.CodeImagePathInvalid, "image path names no file", map[string]string{"path": raw})
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
