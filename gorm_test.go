package sqlpager

import (
	"fmt"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

type tUser struct {
	ID   uint
	Name string
}

func Test_SQLQuery_Apply(t *testing.T) {
	tests := []struct {
		name          string
		raw           RawSQLQuery
		expectedQuery string
	}{
		{
			name:          "first page",
			raw:           RawSQLQuery{Source: "users", PageSize: 10},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] LIMIT 11$",
		},
		{
			name: "all clauses with cursor",
			raw: RawSQLQuery{
				Source:     "users",
				Projection: []string{"id", "name"},
				Filter:     "id > 10",
				Order:      "id DESC",
				Cursor:     EncodeCursor(10),
				PageSize:   10,
			},
			expectedQuery: "^SELECT [`\"]?id[`\"]?, ?[`\"]?name[`\"]? FROM [`'\"]users[`'\"] WHERE id > 10 ORDER BY id DESC LIMIT 12 OFFSET 10$",
		},
		{
			name:          "undecodable cursor",
			raw:           RawSQLQuery{Source: "users", Order: "id ASC", Cursor: "%%", PageSize: 3},
			expectedQuery: "^SELECT \\* FROM [`'\"]users[`'\"] ORDER BY id ASC LIMIT 5$",
		},
	}

	for dialect := range _testDialectors {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s %s", dialect, tt.name), func(t *testing.T) {
				db, dbMock := newGORMMock(t, dialect)

				dbMock.ExpectQuery(tt.expectedQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "John Doe"))

				q, err := tt.raw.Build()
				require.NoError(t, err)

				var users []tUser
				require.NoError(t, q.Apply(db).Find(&users).Error)
				require.Len(t, users, 1)
			})
		}
	}
}

func Test_SQLQuery_Apply_Paging(t *testing.T) {
	for dialect := range _testDialectors {
		t.Run(dialect, func(t *testing.T) {
			db, dbMock := newGORMMock(t, dialect)

			firstPage := sqlmock.NewRows([]string{"id", "name"})
			for i := 1; i <= 3; i++ {
				firstPage.AddRow(i, fmt.Sprintf("user %d", i))
			}
			dbMock.ExpectQuery("^SELECT \\* FROM [`'\"]users[`'\"] ORDER BY id ASC LIMIT 3$").
				WillReturnRows(firstPage)
			dbMock.ExpectQuery("^SELECT \\* FROM [`'\"]users[`'\"] ORDER BY id ASC LIMIT 4 OFFSET 2$").
				WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "user 3"))

			query, err := NewSQLQuery("users", WithOrder("id ASC"), WithPageSize(2))
			require.NoError(t, err)

			var users []tUser
			require.NoError(t, query.Apply(db).Find(&users).Error)

			result := Paginate(query, users)
			require.Equal(t, []tUser{{1, "user 1"}, {2, "user 2"}}, result.Items)
			require.Equal(t, EncodeCursor(2), result.NextPageToken)
			require.Empty(t, result.PrevPageToken)

			query = query.NextPage(result.Pager)
			require.NotNil(t, query)

			users = nil
			require.NoError(t, query.Apply(db).Find(&users).Error)

			result = Paginate(query, users)
			require.Equal(t, []tUser{{3, "user 3"}}, result.Items)
			require.Empty(t, result.NextPageToken)
			require.Equal(t, EncodeCursor(0), result.PrevPageToken)
		})
	}
}

func Test_SQLQuery_Apply_OutOfRangeCursor(t *testing.T) {
	for dialect := range _testDialectors {
		t.Run(dialect, func(t *testing.T) {
			db, dbMock := newGORMMock(t, dialect)

			dbMock.ExpectQuery(fmt.Sprintf("^SELECT \\* FROM [`'\"]users[`'\"] LIMIT 7 OFFSET %d$", math.MaxInt)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

			query, err := NewSQLQuery("users", WithCursor(EncodeCursor(math.MaxUint64)), WithPageSize(5))
			require.NoError(t, err)

			var users []tUser
			require.NoError(t, query.Apply(db).Find(&users).Error)

			result := Paginate(query, users)
			require.Empty(t, result.Items)
			require.Empty(t, result.NextPageToken)
		})
	}
}
