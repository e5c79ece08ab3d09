package sqlpager

import "github.com/samber/lo"

// PageInfo describes which page is requested and how big it is.
//
// Cursor is the offset of the first row of the page; nil means the first page.
// PageSize must be non-zero whenever the value is used for paging.
type PageInfo struct {
	Cursor   *uint64 `json:"cursor,omitempty" yaml:"cursor,omitempty"`
	PageSize uint64  `json:"pageSize" yaml:"pageSize"`
}

// Pager holds the offsets of the pages adjacent to the current one. A nil
// offset means there is no such page.
type Pager struct {
	Prev *uint64 `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next *uint64 `json:"next,omitempty" yaml:"next,omitempty"`
	// Total is reserved and never computed.
	Total *uint64 `json:"total,omitempty" yaml:"total,omitempty"`
}

// HasPrev returns true if there is a previous page.
func (p Pager) HasPrev() bool {
	return p.Prev != nil
}

// HasNext returns true if there is a next page.
func (p Pager) HasNext() bool {
	return p.Next != nil
}

// GetPager computes the adjacent pages for the current one.
//
// data must hold the rows fetched for this page, requested with one extra
// (lookahead) row: PageSize+1 rows starting at Cursor. When more than PageSize
// rows are present exactly one row is popped from data. Statements rendered by
// SQLQuery request PageSize+2 rows on cursor pages (see SQLQuery.Limit), so
// data may keep one row past the page, which is the first row of the next one.
//
// A page at cursor 0 has no previous page. A page that returned PageSize rows
// or less has no next page.
func (p PageInfo) GetPager(data Container) Pager {
	var ret Pager

	cursor := lo.FromPtr(p.Cursor)
	if cursor > 0 {
		ret.Prev = lo.ToPtr(lo.Ternary(cursor > p.PageSize, cursor-p.PageSize, 0))
	}

	if uint64(data.Len()) > p.PageSize {
		data.Pop()
		ret.Next = lo.ToPtr(cursor + p.PageSize)
	}

	return ret
}

// NextPage returns the descriptor of the next page, or nil if pager has none.
func (p PageInfo) NextPage(pager Pager) *PageInfo {
	if pager.Next == nil {
		return nil
	}

	return &PageInfo{
		Cursor:   lo.ToPtr(*pager.Next),
		PageSize: p.PageSize,
	}
}

// PrevPage returns the descriptor of the previous page, or nil if pager has none.
func (p PageInfo) PrevPage(pager Pager) *PageInfo {
	if pager.Prev == nil {
		return nil
	}

	return &PageInfo{
		Cursor:   lo.ToPtr(*pager.Prev),
		PageSize: p.PageSize,
	}
}
