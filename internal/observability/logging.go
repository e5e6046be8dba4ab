package observability

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the standard logrus logger.
// Format is "text" or "json"; an unknown level falls back to info with a warning.
func InitLogger(level, format string) error {
	return configure(log.StandardLogger(), os.Stderr, level, format)
}

func configure(logger *log.Logger, out io.Writer, level, format string) error {
	logger.SetOutput(out)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q (must be text or json)", format)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.WithError(err).Warnf("Unknown log level %q, using info.", level)
		return nil
	}
	logger.SetLevel(lvl)
	logger.Debugf("Logger configured at level %s.", lvl)
	return nil
}
