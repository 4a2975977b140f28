package q

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Cursor is an opaque reference to a zero-based offset within a result set.
type Cursor string

// cursorPrefix matches the graphql-relay array connection scheme so cursors
// stay valid for clients that persisted them against older gateways.
const cursorPrefix = "arrayconnection:"

func (c Cursor) String() string {
	return string(c)
}

// EncodeCursor returns the cursor for the item at offset.
func EncodeCursor(offset int) Cursor {
	return Cursor(base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset))))
}

// DecodeCursor returns the offset the cursor refers to. Only strings that
// EncodeCursor could have produced are accepted.
func DecodeCursor(cursor Cursor) (int, error) {
	if cursor == "" {
		return 0, invalidCursor(cursor, "empty")
	}

	b, err := base64.StdEncoding.DecodeString(string(cursor))
	if err != nil {
		return 0, invalidCursor(cursor, "not base64")
	}

	raw, ok := strings.CutPrefix(string(b), cursorPrefix)
	if !ok {
		return 0, invalidCursor(cursor, "unknown cursor kind")
	}

	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidCursor(cursor, "offset is not an integer")
	}

	if offset < 0 {
		return 0, invalidCursor(cursor, "negative offset")
	}

	// Rejects leading zeros, "+" signs and similar non-canonical spellings.
	if EncodeCursor(offset) != cursor {
		return 0, invalidCursor(cursor, "not in canonical form")
	}

	return offset, nil
}
