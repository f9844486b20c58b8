// Package imagecdn builds delivery URLs for image assets hosted on a flat
// object store or on an image CDN that understands URL transforms.
package imagecdn

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/imagebox/internal/platform/errors"
)

const (
	cloudinaryHost   = "res.cloudinary.com"
	defaultExtension = ".png"
)

var (
	// ErrAssetIDRequired is returned when a request names no asset.
	ErrAssetIDRequired = apperrors.New(apperrors.CodeAssetIDRequired, "asset id is required")
	// ErrBaseURLInvalid is returned when the CDN base URL cannot be parsed.
	ErrBaseURLInvalid = apperrors.New(apperrors.CodeAssetBaseURL, "asset base url is invalid")
)

// Crop selects a region of the source asset in pixels.
type Crop struct {
	X        int
	Y        int
	WidthPX  int
	HeightPX int
}

// Delivery bounds the delivered image size in pixels.
type Delivery struct {
	WidthPX  int
	HeightPX int
}

// Request names one asset and its optional transforms.
type Request struct {
	AssetID   string
	Extension string
	Crop      *Crop
	Delivery  *Delivery
}

// CDN resolves asset URLs under a base URL.
type CDN struct {
	baseURL    string
	transforms bool
}

// New returns a CDN for baseURL. Transforms are only emitted for hosts known
// to apply them; other hosts get flat asset URLs.
func New(baseURL string) CDN {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	cdn := CDN{baseURL: baseURL}
	if parsed, err := url.Parse(baseURL); err == nil && strings.EqualFold(parsed.Hostname(), cloudinaryHost) {
		cdn.transforms = true
	}
	return cdn
}

// SupportsTransforms reports whether delivery widths change the URL.
func (c CDN) SupportsTransforms() bool {
	return c.transforms
}

// URL resolves the delivery URL for req.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimSpace(req.Extension)
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	segments := []string{}
	if c.transforms {
		if crop := cropTransform(req.Crop); crop != "" {
			segments = append(segments, crop)
		}
		if delivery := deliveryTransform(req.Delivery); delivery != "" {
			segments = append(segments, delivery)
		}
	}
	segments = append(segments, assetID+ext)

	if c.baseURL == "" {
		return "/" + path.Join(segments...), nil
	}
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAssetBaseURL, ErrBaseURLInvalid.Message, err)
	}
	parsed.Path = path.Join(append([]string{"/", parsed.Path}, segments...)...)
	return parsed.String(), nil
}

func cropTransform(crop *Crop) string {
	if crop == nil || crop.WidthPX <= 0 || crop.HeightPX <= 0 {
		return ""
	}
	return strings.Join([]string{
		"c_crop",
		"w_" + strconv.Itoa(crop.WidthPX),
		"h_" + strconv.Itoa(crop.HeightPX),
		"x_" + strconv.Itoa(crop.X),
		"y_" + strconv.Itoa(crop.Y),
	}, ",")
}

func deliveryTransform(delivery *Delivery) string {
	parts := []string{"f_auto", "q_auto", "dpr_auto", "c_limit"}
	if delivery == nil {
		return strings.Join(parts, ",")
	}
	if delivery.WidthPX > 0 {
		parts = append(parts, "w_"+strconv.Itoa(delivery.WidthPX))
	}
	if delivery.HeightPX > 0 {
		parts = append(parts, "h_"+strconv.Itoa(delivery.HeightPX))
	}
	return strings.Join(parts, ",")
}
