package logging

import (
	"maps"

	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

// WithFields attaches structured fields when the logger supports the optional
// FieldsLogger extension; otherwise the logger passes through unchanged. Nil
// loggers and empty field maps are safe.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok || len(fields) == 0 {
		return logger
	}
	return fl.WithFields(maps.Clone(fields))
}
