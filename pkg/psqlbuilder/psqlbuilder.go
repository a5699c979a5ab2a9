// Package psqlbuilder pins squirrel statement builders to PostgreSQL
// placeholders so repositories never configure them ad hoc.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select returns a SELECT builder with $-placeholders. The catalog store is
// read-only, so the select path is the only one exposed.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
