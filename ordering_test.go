package sqlpager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Direction_Valid(t *testing.T) {
	require.True(t, DirectionASC.Valid())
	require.True(t, DirectionDESC.Valid())
	require.False(t, Direction("asc").Valid())
	require.False(t, Direction("").Valid())
}

func Test_Orderings_validate(t *testing.T) {
	tests := []struct {
		name string
		ord  Orderings
		ok   bool
	}{
		{"empty returns error", Orderings{}, false},
		{"invalid direction", Orderings{{Column: "id", Direction: "bad"}}, false},
		{"empty column", Orderings{{Column: "", Direction: DirectionASC}}, false},
		{"forbidden symbols", Orderings{{Column: "id)--", Direction: DirectionASC}}, false},
		{"qualified column", Orderings{{Column: "u.created_at", Direction: DirectionDESC}}, true},
		{"valid list", Orderings{{Column: "id", Direction: DirectionASC}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ord.validate(); (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
			}
		})
	}
}

func Test_Orderings_ToSQL(t *testing.T) {
	ord := Orderings{{Column: "a", Direction: DirectionASC}, {Column: "b", Direction: DirectionDESC}}

	require.Equal(t, []string{"a ASC", "b DESC"}, ord.ToSQLSlice())
	require.Equal(t, "a ASC, b DESC", ord.ToSQL())
	require.Equal(t, "", Orderings{}.ToSQL())
}

func Test_ParseSort(t *testing.T) {
	mapping := ColumnMapping{
		"id":   "t.id",
		"name": "t.name",
	}

	tests := []struct {
		name  string
		in    []string
		ok    bool
		first OrderBy
	}{
		{"invalid format", []string{"id"}, false, OrderBy{}},
		{"unknown alias", []string{"idx asc"}, false, OrderBy{}},
		{"valid asc", []string{"id asc"}, true, OrderBy{Column: "t.id", Direction: DirectionASC}},
		{"valid desc with extra spaces", []string{"  name   desc "}, true, OrderBy{Column: "t.name", Direction: DirectionDESC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.in, mapping)
			if (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
				return
			}
			if tt.ok {
				if len(got) == 0 || got[0] != tt.first {
					t.Errorf("%s: first=%v want %v", tt.name, got, tt.first)
				}
			}
		})
	}
}

func Test_ParseSort_SuggestsClosestAlias(t *testing.T) {
	_, err := ParseSort([]string{"nmae asc"}, ColumnMapping{"id": "id", "name": "name"})
	require.ErrorContains(t, err, "closest: 'name'")
}

func Test_closestAlias(t *testing.T) {
	aliases := []ColumnAlias{"id", "name", "created_at"}
	tests := []struct {
		name string
		in   ColumnAlias
		out  ColumnAlias
	}{
		{"closest to id", "idx", "id"},
		{"closest to name", "nme", "name"},
		{"closest to created_at", "createdat", "created_at"},
		{"empty data set", "id", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := aliases
			if tt.out == "" {
				data = nil
			}
			if got := closestAlias(tt.in, data); got != tt.out {
				t.Errorf("%s: got %s want %s", tt.name, got, tt.out)
			}
		})
	}
}
