package sqlpager

import (
	"math"

	"gorm.io/gorm"
)

// Apply translates the query into a gorm chain on db: table, projection,
// filter, order, limit and offset. It uses the same LIMIT/OFFSET arithmetic as
// ToSQL and does not execute anything. Offsets above math.MaxInt are clamped
// to it, so an out-of-range cursor still yields an empty page.
//
// Usage:
//
//	var rows []User
//	err := query.Apply(db).Find(&rows).Error
//	pager := query.GetPager((*sqlpager.Rows[User])(&rows))
func (q *SQLQuery) Apply(db *gorm.DB) *gorm.DB {
	db = db.Table(q.source)

	if len(q.projection) > 0 {
		db = db.Select(q.projectionSQL())
	}

	if q.filter != "" {
		db = db.Where(q.filter)
	}

	if q.order != "" {
		db = db.Order(q.order)
	}

	return db.Limit(int(q.Limit())).Offset(int(min(q.Offset(), math.MaxInt)))
}
