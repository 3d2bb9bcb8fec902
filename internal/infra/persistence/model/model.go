// Package model holds the GORM persistence models.
package model

// All returns every persisted model, in migration order.
func All() []any {
	return []any{
		&RouteModel{},
		&RouteSegmentModel{},
		&DeviceTelemetryModel{},
	}
}
