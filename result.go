package sqlpager

// PaginationResult is a generic paginated result container.
type PaginationResult[T any] struct {
	// Items result elements. See Paginate for the cursor page overlap.
	Items []T `json:"items"`
	// Pager adjacent page offsets.
	Pager Pager `json:"pager"`
	// NextPageToken cursor of the next page. Empty on the last page.
	NextPageToken string `json:"nextPageToken,omitempty"`
	// PrevPageToken cursor of the previous page. Empty on the first page.
	PrevPageToken string `json:"prevPageToken,omitempty"`
}

// Paginate builds the result for rows fetched with query. rows must be the
// full result set of the statement, lookahead row included. One lookahead row
// is dropped from Items. On cursor pages the statement requests PageSize+2
// rows (see SQLQuery.Limit), so Items may hold PageSize+1 rows, the last one
// repeated as the first row of the next page.
func Paginate[T any](query *SQLQuery, rows []T) PaginationResult[T] {
	items := Rows[T](rows)
	pager := query.GetPager(&items)

	if items == nil {
		items = make(Rows[T], 0)
	}

	return PaginationResult[T]{
		Items:         items,
		Pager:         pager,
		NextPageToken: tokenOf(pager.Next),
		PrevPageToken: tokenOf(pager.Prev),
	}
}

func tokenOf(offset *uint64) string {
	if offset == nil {
		return ""
	}

	return EncodeCursor(*offset)
}
