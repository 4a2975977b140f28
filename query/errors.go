package q

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for pagination arguments that can never
	// produce a valid backend request, e.g. a non-positive first or a size
	// above the configured maximum.
	ErrInvalidArgument = errors.New("invalid pagination argument")

	// ErrInvalidCursor is returned when a cursor was not produced by EncodeCursor.
	ErrInvalidCursor = errors.New("invalid cursor")
)

func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func invalidCursor(cursor Cursor, reason string) error {
	return errors.Wrapf(ErrInvalidCursor, "%q: %s", string(cursor), reason)
}
