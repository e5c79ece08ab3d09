package sqlpager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Rows_Pop(t *testing.T) {
	rows := Rows[int]{1, 2, 3}
	rows.Pop()
	require.Equal(t, Rows[int]{1, 2}, rows)
	require.Equal(t, 2, rows.Len())

	empty := Rows[int]{}
	empty.Pop()
	require.Equal(t, 0, empty.Len())

	var nilRows *Rows[int]
	nilRows.Pop()
	require.Equal(t, 0, nilRows.Len())
}

func Test_Deque_Pop(t *testing.T) {
	d := NewDeque(1, 2)
	d.PushFront(0)
	require.Equal(t, 3, d.Len())

	d.Pop()
	require.Equal(t, 2, d.Len())
	require.Equal(t, 0, d.Front().Value)
	require.Equal(t, 1, d.Back().Value)

	d.Pop()
	d.Pop()
	d.Pop()
	require.Equal(t, 0, d.Len())

	var zero Deque
	zero.Pop()
	require.Equal(t, 0, zero.Len())
}
