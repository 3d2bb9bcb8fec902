package main

import (
	"tracker/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the tracker models. The repositories use
// plain gorm; the generated package is for ad-hoc tooling.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
