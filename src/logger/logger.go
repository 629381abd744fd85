package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// SetLogLevel applies the configured level to the global zerolog state.
func SetLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}
