// Package errors provides coded domain errors for image input validation.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Source errors
	CodeImageSourceMissing Code = "IMAGE_SOURCE_MISSING"
	CodeImageURLInvalid    Code = "IMAGE_URL_INVALID"
	CodeImagePathInvalid   Code = "IMAGE_PATH_INVALID"

	// Layout errors
	CodeMediaConditionUnsafe Code = "MEDIA_CONDITION_UNSAFE"

	// Asset errors
	CodeAssetIDRequired Code = "ASSET_ID_REQUIRED"
	CodeAssetBaseURL    Code = "ASSET_BASE_URL_INVALID"

	// Catalog errors
	CodeStoryNotFound Code = "STORY_NOT_FOUND"
	CodeStoryInvalid  Code = "STORY_INVALID"
)

// String returns the raw code value.
func (c Code) String() string {
	return string(c)
}
