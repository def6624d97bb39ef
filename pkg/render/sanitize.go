package render

import "github.com/microcosm-cc/bluemonday"

// The occurrence description is free text typed by the user. It is
// rendered inside the document as plain prose, so every markup construct
// is stripped before the template sees it.
var descriptionPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup from user-entered free text. The result
// is already entity-escaped; templates must emit it as trusted output or
// benign characters like & and quotes get escaped a second time.
func SanitizeText(s string) string {
	return descriptionPolicy.Sanitize(s)
}
