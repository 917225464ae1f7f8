package dialect

import "fmt"

type BigQueryDialect struct{}

// QuoteTable wraps the whole fully qualified name in a single pair of backticks.
// Identifiers containing backticks are rejected when settings are validated.
func (BigQueryDialect) QuoteTable(tableID TableIdentifier) string {
	return fmt.Sprintf("`%s`", tableID.FullyQualifiedName())
}

// BuildDedupeQuery collapses rows with identical content down to a single copy.
// Rows are grouped by their JSON serialization and one representative per group is kept. Since the
// join condition is always false, every existing row is deleted and every representative is inserted.
func (bd BigQueryDialect) BuildDedupeQuery(tableID TableIdentifier) string {
	quotedTable := bd.QuoteTable(tableID)
	return fmt.Sprintf(`MERGE %s AS target_t
USING (
  SELECT a.* FROM (
    SELECT ANY_VALUE(a) a FROM %s a
    GROUP BY TO_JSON_STRING(a)
  )
) AS source_t
ON FALSE
WHEN NOT MATCHED BY SOURCE THEN DELETE
WHEN NOT MATCHED BY TARGET THEN INSERT ROW;`, quotedTable, quotedTable)
}
