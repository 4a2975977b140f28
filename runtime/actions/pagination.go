package actions

import (
	"strconv"

	"github.com/pkg/errors"
	q "github.com/teamkeel/graphgate/query"
)

// ParsePage extracts relay paging arguments from the given map and uses them to
// compose a Page. Counts may arrive as any numeric type, depending on whether the
// args came from a literal or a variable.
func ParsePage(args map[string]any) (q.Page, error) {
	page := q.Page{}

	first, err := parseCount(args, "first")
	if err != nil {
		return page, err
	}
	page.First = first

	last, err := parseCount(args, "last")
	if err != nil {
		return page, err
	}
	page.Last = last

	if after, ok := args["after"]; ok && after != nil {
		asString, ok := after.(string)
		if !ok {
			return page, errors.Wrapf(q.ErrInvalidArgument, "cannot cast this: %v to a string", after)
		}
		page.After = q.Cursor(asString)
	}

	if before, ok := args["before"]; ok && before != nil {
		asString, ok := before.(string)
		if !ok {
			return page, errors.Wrapf(q.ErrInvalidArgument, "cannot cast this: %v to a string", before)
		}
		page.Before = q.Cursor(asString)
	}

	return page, nil
}

func parseCount(args map[string]any, key string) (*int, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}

	var count int
	switch v := value.(type) {
	case int64:
		count = int(v)
	case int32:
		count = int(v)
	case int:
		count = v
	case float64:
		if v != float64(int(v)) {
			return nil, errors.Wrapf(q.ErrInvalidArgument, "%s must be a whole number, got %v", key, v)
		}
		count = int(v)
	case string:
		num, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(q.ErrInvalidArgument, "cannot parse %s: %q is not a number", key, v)
		}
		count = num
	default:
		return nil, errors.Wrapf(q.ErrInvalidArgument, "cannot cast this: %v to an int", value)
	}

	return &count, nil
}
