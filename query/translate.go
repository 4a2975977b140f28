package q

import "math"

// TranslateArgs converts relay arguments into a backend page request.
//
// Forward paging (first/after) and backward paging (last/before) cannot be
// mixed. With neither first nor last the defaultSize is used. Sizes above
// maxSize are rejected rather than clamped so callers learn their request
// would not be honoured.
//
// Page is page-granular in both directions. With before, it is the page that
// contains the item just before the cursor, so when the cursor falls inside
// that page the page also holds the before item and the ones after it:
// last:4 before:cursor(10) asks for page 3, items 8 to 11. Offset is the
// exact window instead, the size items ending just before the cursor (6 to 9
// in the same example), clamped at 0.
func TranslateArgs(page Page, defaultSize, maxSize int) (PageRequest, error) {
	forward := page.First != nil || page.After != ""
	backward := page.Last != nil || page.Before != ""
	if forward && backward {
		return PageRequest{}, invalidArgument("cannot paginate forwards and backwards at the same time")
	}

	size := defaultSize
	switch {
	case page.First != nil:
		if *page.First <= 0 {
			return PageRequest{}, invalidArgument("first must be positive, got %d", *page.First)
		}
		size = *page.First
	case page.Last != nil:
		if *page.Last <= 0 {
			return PageRequest{}, invalidArgument("last must be positive, got %d", *page.Last)
		}
		size = *page.Last
	}

	if size <= 0 {
		return PageRequest{}, invalidArgument("page size must be positive, got %d", size)
	}
	if size > maxSize {
		return PageRequest{}, invalidArgument("page size %d exceeds the maximum of %d", size, maxSize)
	}

	req := PageRequest{
		Page:           1,
		Size:           size,
		WantTotalCount: page.WantTotalCount,
	}

	if page.After != "" {
		after, err := DecodeCursor(page.After)
		if err != nil {
			return PageRequest{}, err
		}
		if after == math.MaxInt {
			after--
		}
		req.Offset = after + 1
		req.Page = req.Offset/size + 1
		return req, nil
	}

	if page.Last != nil && page.Before == "" {
		return PageRequest{}, invalidArgument("last requires a before cursor")
	}

	if page.Before != "" {
		end, err := DecodeCursor(page.Before)
		if err != nil {
			return PageRequest{}, err
		}
		if end > 0 {
			req.Page = (end-1)/size + 1
		}
		req.Offset = end - size
		if req.Offset < 0 {
			req.Offset = 0
		}
	}

	return req, nil
}
