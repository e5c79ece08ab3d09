package sqlpager

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// RawSQLQuery is the plain form of SQLQuery, suitable for API payloads and
// config files. Build it to obtain a normalized and validated SQLQuery.
//
// Empty Filter, Order and Cursor mean the clause is absent.
type RawSQLQuery struct {
	// Source - table or view name.
	Source string `json:"source" yaml:"source" mapstructure:"source"`
	// Projection - column expressions to select. Empty selects all columns.
	Projection []string `json:"projection,omitempty" yaml:"projection,omitempty" mapstructure:"projection"`
	// Filter - WHERE clause body, used verbatim.
	Filter string `json:"filter,omitempty" yaml:"filter,omitempty" mapstructure:"filter"`
	// Order - ORDER BY clause body, used verbatim.
	Order string `json:"order,omitempty" yaml:"order,omitempty" mapstructure:"order"`
	// Cursor - token obtained via EncodeCursor or a previous page. Empty means
	// no cursor.
	Cursor string `json:"cursor,omitempty" yaml:"cursor,omitempty" mapstructure:"cursor"`
	// PageSize - 0 selects DefaultPageSize.
	PageSize uint64 `json:"pageSize,omitempty" yaml:"pageSize,omitempty" mapstructure:"page_size"`
}

// Build normalizes the page size, then validates the query.
func (r RawSQLQuery) Build() (*SQLQuery, error) {
	q := &SQLQuery{
		source:     r.Source,
		projection: slices.Clone(r.Projection),
		filter:     r.Filter,
		order:      r.Order,
		cursor:     r.Cursor,
		pageSize:   r.PageSize,
	}
	q.normalize()

	if err := q.validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// SQLQuery describes a paginated SELECT statement. It is immutable: moving
// between pages produces a new value via NextPage.
//
// source, filter and order are rendered verbatim. Sanitizing them is up to
// the caller.
type SQLQuery struct {
	source     string
	projection []string
	filter     string
	order      string
	cursor     string
	pageSize   uint64
}

// QueryOption customizes a query built with NewSQLQuery.
type QueryOption func(*RawSQLQuery) error

func WithProjection(columns ...string) QueryOption {
	return func(r *RawSQLQuery) error {
		r.Projection = append(r.Projection, columns...)
		return nil
	}
}

func WithFilter(filter string) QueryOption {
	return func(r *RawSQLQuery) error {
		r.Filter = filter
		return nil
	}
}

func WithOrder(order string) QueryOption {
	return func(r *RawSQLQuery) error {
		r.Order = order
		return nil
	}
}

// WithOrderings validates orderings and renders them as the ORDER BY body.
func WithOrderings(orderings ...OrderBy) QueryOption {
	return func(r *RawSQLQuery) error {
		o := Orderings(orderings)
		if err := o.validate(); err != nil {
			return fmt.Errorf("invalid orderings: %w", err)
		}

		r.Order = o.ToSQL()
		return nil
	}
}

// WithCursor sets the page token. An empty token means no cursor: the query
// reads the first page with LIMIT PageSize+1. EncodeCursor never returns "".
func WithCursor(cursor string) QueryOption {
	return func(r *RawSQLQuery) error {
		r.Cursor = cursor
		return nil
	}
}

func WithPageSize(pageSize uint64) QueryOption {
	return func(r *RawSQLQuery) error {
		r.PageSize = pageSize
		return nil
	}
}

// NewSQLQuery builds a query over source. See RawSQLQuery.Build.
func NewSQLQuery(source string, opts ...QueryOption) (*SQLQuery, error) {
	raw := RawSQLQuery{Source: source}
	for _, opt := range opts {
		if err := opt(&raw); err != nil {
			return nil, err
		}
	}

	return raw.Build()
}

func (q *SQLQuery) Source() string { return q.source }

// Projection returns a copy of the selected column expressions.
func (q *SQLQuery) Projection() []string { return slices.Clone(q.projection) }

func (q *SQLQuery) Filter() string { return q.filter }

func (q *SQLQuery) Order() string { return q.order }

// Cursor returns the raw cursor token as given.
func (q *SQLQuery) Cursor() string { return q.cursor }

func (q *SQLQuery) PageSize() uint64 { return q.pageSize }

// Raw returns the plain form of the query.
func (q *SQLQuery) Raw() RawSQLQuery {
	return RawSQLQuery{
		Source:     q.source,
		Projection: q.Projection(),
		Filter:     q.filter,
		Order:      q.order,
		Cursor:     q.cursor,
		PageSize:   q.pageSize,
	}
}

// ToSQL renders the statement:
//
//	SELECT <projection> FROM <source> [WHERE <filter>] [ORDER BY <order>] LIMIT <limit> OFFSET <offset>
//
// The offset is the decoded cursor, or 0 when the cursor is absent or cannot
// be decoded.
func (q *SQLQuery) ToSQL() string {
	parts := []string{
		"SELECT",
		q.projectionSQL(),
		"FROM",
		q.source,
		lo.Ternary(q.filter != "", "WHERE "+q.filter, ""),
		lo.Ternary(q.order != "", "ORDER BY "+q.order, ""),
		"LIMIT",
		strconv.FormatUint(q.Limit(), 10),
		"OFFSET",
		strconv.FormatUint(q.Offset(), 10),
	}

	return strings.Join(lo.Compact(parts), " ")
}

// Limit returns the number of rows the statement requests: PageSize plus the
// lookahead row, plus one more whenever a cursor token is set.
//
// IMPORTANT:
// Cursor pages request PageSize+2 rows, even when the token cannot be
// decoded. GetPager still pops only one row.
func (q *SQLQuery) Limit() uint64 {
	return q.pageSize + 1 + lo.Ternary[uint64](q.cursor != "", 1, 0)
}

// Offset returns the decoded cursor, or 0.
func (q *SQLQuery) Offset() uint64 {
	return lo.FromPtr(q.GetCursor())
}

// GetCursor decodes the cursor token. A missing or undecodable token yields
// nil: a corrupted cursor falls back to the first page instead of failing.
func (q *SQLQuery) GetCursor() *uint64 {
	if q.cursor == "" {
		return nil
	}

	offset, err := DecodeCursor(q.cursor)
	if err != nil {
		logger().Debug().
			Err(err).
			Str("cursor", q.cursor).
			Str("source", q.source).
			Msg("discarding undecodable cursor")

		return nil
	}

	return &offset
}

// PageInfo returns the page descriptor of the query.
func (q *SQLQuery) PageInfo() PageInfo {
	return PageInfo{
		Cursor:   q.GetCursor(),
		PageSize: q.pageSize,
	}
}

// GetPager computes the adjacent pages from the fetched rows and pops the
// lookahead row from data. See PageInfo.GetPager.
func (q *SQLQuery) GetPager(data Container) Pager {
	return q.PageInfo().GetPager(data)
}

// NextPage returns the query for the next page, or nil if there is none.
func (q *SQLQuery) NextPage(pager Pager) *SQLQuery {
	next := q.PageInfo().NextPage(pager)
	if next == nil {
		return nil
	}

	return &SQLQuery{
		source:     q.source,
		projection: slices.Clone(q.projection),
		filter:     q.filter,
		order:      q.order,
		cursor:     EncodeCursor(lo.FromPtr(next.Cursor)),
		pageSize:   next.PageSize,
	}
}

// MarshalJSON - implements json.Marshaler.
func (q *SQLQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Raw())
}

// UnmarshalJSON - implements json.Unmarshaler. The decoded query is
// normalized and validated like RawSQLQuery.Build.
func (q *SQLQuery) UnmarshalJSON(data []byte) error {
	var raw RawSQLQuery
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal sql query: %w", err)
	}

	built, err := raw.Build()
	if err != nil {
		return err
	}

	*q = *built

	return nil
}

func (q *SQLQuery) projectionSQL() string {
	if len(q.projection) == 0 {
		return "*"
	}

	return strings.Join(q.projection, ", ")
}

func (q *SQLQuery) normalize() {
	q.pageSize = NormalizePageSize(q.pageSize)
}

func (q *SQLQuery) validate() error {
	if err := ValidatePageSize(q.pageSize); err != nil {
		return err
	}

	if q.source == "" {
		return ErrInvalidSource
	}

	return nil
}

var (
	_ json.Marshaler   = (*SQLQuery)(nil)
	_ json.Unmarshaler = (*SQLQuery)(nil)
)
