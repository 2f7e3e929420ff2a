// Package export mirrors a built catalog into a SQLite database so search
// frontends can query it without parsing the JSON artifact.
//
// Every export writes a fresh database next to the target and swaps it into
// place, so readers never observe a half-written file. The schema is embedded
// from schema.sql and versioned through the schema_version table.
package export
