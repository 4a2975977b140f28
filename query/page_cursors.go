package q

import "github.com/samber/lo"

// DefaultWindowRadius is the number of pages shown either side of the current
// page in a numbered pagination control.
const DefaultWindowRadius = 2

type PageCursor struct {
	Page      int    `json:"page"`
	Cursor    Cursor `json:"cursor"`
	IsCurrent bool   `json:"isCurrent"`
}

// PageCursors are jump-to-page links for numbered pagination. First and Last
// are only set when they fall outside Around.
type PageCursors struct {
	First    *PageCursor  `json:"first"`
	Last     *PageCursor  `json:"last"`
	Around   []PageCursor `json:"around"`
	Previous *PageCursor  `json:"previous"`
	Next     *PageCursor  `json:"next"`
}

// PageCursorWindow computes page cursors with a configurable radius.
type PageCursorWindow struct {
	Radius int
}

// BuildPageCursors computes page cursors using DefaultWindowRadius.
func BuildPageCursors(page, size, totalCount int) (PageCursors, error) {
	return PageCursorWindow{Radius: DefaultWindowRadius}.Build(page, size, totalCount)
}

// Build computes the page cursors for the given page. A page's cursor is the
// cursor of its first item, the same cursor BuildConnection gives that item.
// Pages past the end are treated as the last page.
func (w PageCursorWindow) Build(page, size, totalCount int) (PageCursors, error) {
	switch {
	case size <= 0:
		return PageCursors{}, invalidArgument("page size must be positive, got %d", size)
	case page < 1:
		return PageCursors{}, invalidArgument("page must be at least 1, got %d", page)
	case totalCount < 0:
		return PageCursors{}, invalidArgument("total count cannot be negative, got %d", totalCount)
	case w.Radius < 0:
		return PageCursors{}, invalidArgument("window radius cannot be negative, got %d", w.Radius)
	}

	totalPages := totalCount / size
	if totalCount%size != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	cursorFor := func(p int) *PageCursor {
		return &PageCursor{
			Page:      p,
			Cursor:    EncodeCursor((p - 1) * size),
			IsCurrent: p == page,
		}
	}

	from := page - w.Radius
	if from < 1 {
		from = 1
	}
	to := page + w.Radius
	if to > totalPages {
		to = totalPages
	}

	cursors := PageCursors{
		Around: lo.Map(lo.RangeFrom(from, to-from+1), func(p int, _ int) PageCursor {
			return *cursorFor(p)
		}),
	}

	if from > 1 {
		cursors.First = cursorFor(1)
	}
	if to < totalPages {
		cursors.Last = cursorFor(totalPages)
	}
	if page > 1 {
		cursors.Previous = cursorFor(page - 1)
	}
	if page < totalPages {
		cursors.Next = cursorFor(page + 1)
	}

	return cursors, nil
}
