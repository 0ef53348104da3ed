package app

import (
	"fmt"
	"log/slog"
	"mime"
)

// staticMIMETypes are registered when the host has no mapping for them.
var staticMIMETypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".svg":  "image/svg+xml",
	".json": "application/json",
}

func init() {
	if err := registerStaticMIMETypes(staticMIMETypes); err != nil {
		slog.Default().Warn("register static mime types", slog.Any("error", err))
	}
}

func registerStaticMIMETypes(types map[string]string) error {
	for ext, typ := range types {
		if mime.TypeByExtension(ext) != "" {
			continue
		}
		if err := mime.AddExtensionType(ext, typ); err != nil {
			return fmt.Errorf("app: mime type for %s: %w", ext, err)
		}
	}
	return nil
}
