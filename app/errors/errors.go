package errors

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
)

// Log logs an error with logger, rendering the cause and metadata as fields if
// it's a StructuredError.
func Log(logger *slog.Logger, err error) {
	var serr *StructuredError
	if !errors.As(err, &serr) {
		logger.Error(err.Error())
		return
	}

	args := make([]any, 0, len(serr.metadata)*2+2)
	if serr.cause != nil {
		args = append(args, "cause", serr.cause.Error())
	}

	for _, k := range slices.Sorted(maps.Keys(serr.metadata)) {
		args = append(args, k, serr.metadata[k])
	}

	logger.Error(serr.Error(), args...)
}
