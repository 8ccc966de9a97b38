package dto

// TableID identifies one of the five tables of a run.
type TableID string

const (
	TableMaster    TableID = "master"
	TableLoan      TableID = "loan"
	TableField     TableID = "field"
	TableSecondary TableID = "secondary"
	TableTruck     TableID = "truck"
)

// ReferenceTables lists the reference tables in the order mappings are applied.
var ReferenceTables = []TableID{TableLoan, TableField, TableSecondary, TableTruck}

// Table is a sheet loaded into memory: ordered headers and rows of raw cell
// text. Every row has exactly len(Columns) cells. Tables are read-only once
// loaded.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
	// Date1904 is set when the source workbook uses the 1904 date system,
	// so raw serial dates in Rows count days from 1904-01-01.
	Date1904 bool
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the raw value at row/column, or "" when either is out of range.
func (t *Table) Cell(row int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// FieldMapping pairs a master column keyword with the reference column
// keyword that holds the authoritative value.
type FieldMapping struct {
	Reference        TableID `json:"reference"`
	MasterKeyword    string  `json:"master_keyword"`
	ReferenceKeyword string  `json:"reference_keyword"`
}

// Outcome is the result of comparing one field of one master row.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeMatch
	OutcomeMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "skipped"
	}
}

// Coordinate addresses a master cell by zero-based data row and column index.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Mismatch describes one mismatching field.
type Mismatch struct {
	Coordinate
	Column           string  `json:"column"`
	ContractNo       string  `json:"contract_no"`
	Reference        TableID `json:"reference"`
	MasterKeyword    string  `json:"master_keyword"`
	ReferenceKeyword string  `json:"reference_keyword"`
	MasterValue      string  `json:"master_value"`
	ReferenceValue   string  `json:"reference_value"`
}

// ReconcileResult is everything a run produces.
type ReconcileResult struct {
	MismatchCount int
	Mismatches    []Mismatch
	// Highlights holds primary-highlight cells in first-seen order.
	Highlights []Coordinate
	// FlaggedRows holds rows whose contract cell gets the secondary highlight.
	FlaggedRows []int
	Workbook    []byte
}
