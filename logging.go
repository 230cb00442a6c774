package search

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level structured logger used for index lifecycle
// events: document indexing and removal, and query execution. It defaults
// to a quiet level (warnings and above) so that embedding applications
// aren't flooded with per-document logs unless they opt in.
var logger = zerolog.New(defaultWriter()).With().Timestamp().Str("component", "search").Logger().Level(zerolog.WarnLevel)

func defaultWriter() io.Writer {
	return os.Stderr
}

// SetLogger replaces the package-level logger, letting an embedding
// application route logs to its own sink or raise the verbosity.
func SetLogger(l zerolog.Logger) {
	logger = l
}
