package sqlpager

import "container/list"

// Container is an ordered collection of fetched rows. GetPager only needs to
// know its length and to drop the lookahead row from the tail.
type Container interface {
	Pop()
	Len() int
}

// Rows adapts a slice to Container.
//
//	rows := sqlpager.Rows[User](users)
//	pager := query.GetPager(&rows)
type Rows[T any] []T

// Pop - implements Container. Removes the last element, if any.
func (r *Rows[T]) Pop() {
	if r == nil || len(*r) == 0 {
		return
	}

	*r = (*r)[:len(*r)-1]
}

// Len - implements Container.
func (r *Rows[T]) Len() int {
	if r == nil {
		return 0
	}

	return len(*r)
}

// Deque adapts container/list to Container. Rows can be pushed to either end
// by the caller, Pop always removes from the back.
type Deque struct {
	*list.List
}

func NewDeque(values ...any) Deque {
	d := Deque{List: list.New()}
	for _, v := range values {
		d.PushBack(v)
	}

	return d
}

// Pop - implements Container.
func (d Deque) Pop() {
	if d.List == nil {
		return
	}

	if back := d.Back(); back != nil {
		d.Remove(back)
	}
}

// Len - implements Container.
func (d Deque) Len() int {
	if d.List == nil {
		return 0
	}

	return d.List.Len()
}

var (
	_ Container = (*Rows[any])(nil)
	_ Container = Deque{}
)
