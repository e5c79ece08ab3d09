// Package sqlpager provides cursor-based pagination over offset-addressable
// SQL result sets.
//
// Overview
//
// A SQLQuery describes a SELECT statement once: source, projection, filter,
// order and page size. The caller renders it with ToSQL (or applies it to a
// gorm chain with Apply), executes it, and hands the fetched rows back to
// GetPager. The statement always requests one lookahead row beyond the page
// size; its presence tells GetPager that a next page exists, and GetPager
// drops it from the rows.
//
// Key concepts
//   - Cursor: an opaque URL-safe token wrapping a row offset. See
//     EncodeCursor and DecodeCursor.
//   - PageInfo: the (cursor, page size) pair of a page.
//   - Pager: offsets of the previous and next pages.
//   - Container: anything the lookahead row can be popped from (Rows, Deque).
//
// Filter, order and source are rendered verbatim. They are not escaped or
// validated, use Orderings/WithOrderings for user-provided sorting.
package sqlpager
