package dialect

import "fmt"

type TableIdentifier struct {
	projectID string
	dataset   string
	table     string
}

func NewTableIdentifier(projectID, dataset, table string) TableIdentifier {
	return TableIdentifier{projectID: projectID, dataset: dataset, table: table}
}

func (ti TableIdentifier) ProjectID() string {
	return ti.projectID
}

func (ti TableIdentifier) Dataset() string {
	return ti.dataset
}

func (ti TableIdentifier) Table() string {
	return ti.table
}

func (ti TableIdentifier) WithTable(table string) TableIdentifier {
	return NewTableIdentifier(ti.projectID, ti.dataset, table)
}

// FullyQualifiedName returns project.dataset.table without any quoting.
func (ti TableIdentifier) FullyQualifiedName() string {
	return fmt.Sprintf("%s.%s.%s", ti.projectID, ti.dataset, ti.table)
}

func (ti TableIdentifier) String() string {
	return ti.FullyQualifiedName()
}
