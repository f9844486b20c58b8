// Package branding holds product naming shared by rendered pages.
package branding

import "strings"

// AppName is the product name shown in page titles.
const AppName = "imagebox"

const titleSeparator = " | "

// ComposePageTitle appends the app name to title unless it already ends
// with it. A blank title yields the app name alone.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == AppName {
		return AppName
	}
	if strings.HasSuffix(title, titleSeparator+AppName) {
		return title
	}
	if trimmed, ok := strings.CutSuffix(title, " - "+AppName); ok {
		title = strings.TrimSpace(trimmed)
	}
	return title + titleSeparator + AppName
}
