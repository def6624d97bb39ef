package form

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// StylesheetName identifies the built-in form stylesheet.
	StylesheetName = "advertencia-form.css"
	// MaskScriptName identifies the keystroke mask script.
	MaskScriptName = "advertencia-mask.js"
)

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded asset bundle (CSS/JS) so callers can serve
// it over HTTP instead of relying on the inlined copies.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}

func maskScript() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+MaskScriptName)
	if err != nil {
		return ""
	}
	return string(data)
}
