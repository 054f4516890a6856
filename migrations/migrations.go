// migrations содержит встроенные SQL-миграции схемы БД (goose).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
