package model

import (
	"time"
)

// RouteModel is the GORM-specific struct for the 'route' table.
type RouteModel struct {
	ID        uint                 `gorm:"primaryKey;autoIncrement"`
	Reference string               `gorm:"type:varchar(255);not null"`
	Version   int                  `gorm:"not null;default:0"`
	Segments  []*RouteSegmentModel `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "route"
}

// RouteSegmentModel is the GORM-specific struct for the 'route_segment' table.
type RouteSegmentModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	RouteID     uint   `gorm:"not null;index"`
	Order       int    `gorm:"column:segment_order;not null"`
	StartDevice string `gorm:"type:varchar(50);not null"`
	EndDevice   string `gorm:"type:varchar(50);not null"`
	Version     int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteSegmentModel) TableName() string {
	return "route_segment"
}
