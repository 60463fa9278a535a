//go:build tools

package tools

// This file tracks tool dependencies for reproducible builds.
// Run `go mod tidy` after adding/removing tools here.
// The goose CLI applies internal/adapters/postgres/migrations by hand:
//   goose -dir internal/adapters/postgres/migrations postgres "$DATABASE_URL" status

// internal/api is regenerated from api/openapi.yaml with `go generate ./internal/api`.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
