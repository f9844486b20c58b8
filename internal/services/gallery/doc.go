// Package gallery serves previews of the image components.
//
// Stories live in an embedded TOML catalog. Each story page renders one
// component exactly as a host page would, so class tokens, reserved padding
// and fail-closed behavior can be inspected in a browser.
package gallery
