package pkg

import (
	"os"

	"compressor/pkg/logger"
)

type Options struct {
	// Extension replaces the source extension when encoding.
	Extension string
	// DecodeSuffix replaces the source extension when decoding.
	DecodeSuffix string
	// Output, if set, overrides the derived destination path.
	Output string
	Perm   os.FileMode
	Logger logger.Logger
}

func DefaultOptions() Options {
	return Options{
		Extension:    ".huf",
		DecodeSuffix: "_decode.txt",
		Perm:         0644,
		Logger:       logger.New(),
	}
}

// Log returns the configured logger, or one that discards everything.
func (o Options) Log() logger.Logger {
	if o.Logger == nil {
		return logger.Nop()
	}

	return o.Logger
}

func (o Options) perm() os.FileMode {
	if o.Perm == 0 {
		return 0644
	}

	return o.Perm
}
