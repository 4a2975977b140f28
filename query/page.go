package q

// A Page describes which page you want from a list of records,
// in the style of this "Connection" pattern:
// https://relay.dev/graphql/connections.htm
//
// Consider for example, that you previously fetched a page of 10 records
// and from that previous response you also knew that the last of those 10 records
// could be referred to with the opaque cursor "abc123". Armed with that information you can
// ask for the next page of 10 records by setting First to 10, and After to "abc123".
//
// To move backwards, you'd set the Last and Before fields instead.
//
// When you have no prior positional context you can leave everything unset and the
// default page size applies. First and Last are pointers so that an explicit zero can be
// told apart from an absent argument.
type Page struct {
	First  *int
	Last   *int
	After  Cursor
	Before Cursor

	// WantTotalCount asks the backend for the size of the full result set.
	// It is not a relay argument; resolvers set it when the query selects
	// fields that need the total.
	WantTotalCount bool
}

// PageRequest is what the backend understands: a one-based page number and
// a page size.
type PageRequest struct {
	Page int
	Size int

	// Offset is the exact start of the requested window. It can fall inside
	// Page rather than on its boundary. Loaders that take a raw offset may
	// page by it instead of by Page, and must then report it back in
	// FetchResult.Offset so cursors are derived from it.
	Offset int

	WantTotalCount bool
}

// PageStart is the offset of the first item of the requested page.
func (r PageRequest) PageStart() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.Size
}
