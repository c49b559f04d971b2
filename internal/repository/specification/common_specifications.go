package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByPublicId filters communications by their public identifier
type ByPublicId struct {
	PublicId string
}

func (s ByPublicId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("public_id = ?", s.PublicId)
}

// ByCommunicationId filters records that belong to one communication
type ByCommunicationId struct {
	CommunicationId string
}

func (s ByCommunicationId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("communication_id = ?", s.CommunicationId)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Apply folds specs over db in order.
func Apply(db *gorm.DB, specs ...Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}
