package model

import (
	"time"
)

// DeviceTelemetryModel is the GORM-specific struct for the 'device_telemetry' table.
// Each row is one position report; the latest-position queries read it with DISTINCT ON (device).
type DeviceTelemetryModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Device     string    `gorm:"type:varchar(50);not null;index:idx_device_telemetry_latest,priority:1"`
	RecordTime time.Time `gorm:"column:record_time;not null;index:idx_device_telemetry_latest,priority:2,sort:desc"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Active     bool      `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTelemetryModel) TableName() string {
	return "device_telemetry"
}
