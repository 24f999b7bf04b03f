package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError reports a declaration that cannot be handed to the framework.
// Field is a dotted path such as "themeConfig.nav[2].items[0].link".
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid site config: %s: %s", e.Field, e.Reason)
}

func newConfigError(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}

// IsConfigError reports whether err, or anything it wraps, is a ConfigError.
func IsConfigError(err error) bool {
	var cerr *ConfigError
	return errors.As(err, &cerr)
}
