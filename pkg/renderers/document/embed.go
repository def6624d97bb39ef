package document

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*.css
var embeddedAssets embed.FS

// StylesheetName identifies the built-in document stylesheet.
const StylesheetName = "advertencia-document.css"

// TemplatesFS exposes the embedded template bundle for consumers that want
// the built-in document layout out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
