// Package sustainastock provides embedded assets for production builds.
package sustainastock

import "embed"

// In dev mode (IsDev=true) templates and static assets are read from disk instead.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
