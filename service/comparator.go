package service

import (
	"strings"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/utils"
)

// referenceTable is a reference table with its resolved join column.
// contractColumn is empty when the table has no contract column, in which
// case every comparison against it is skipped.
type referenceTable struct {
	table          *dto.Table
	contractColumn string
}

// fieldComparator compares master rows against reference tables. All of its
// inputs are read-only; it keeps no state between calls.
type fieldComparator struct {
	master         *dto.Table
	contractColumn string
	refs           map[dto.TableID]referenceTable
}

// compare checks one field of one master row. The returned Mismatch is only
// meaningful when the outcome is OutcomeMismatch.
func (c *fieldComparator) compare(row int, m dto.FieldMapping) (dto.Outcome, dto.Mismatch) {
	ref, ok := c.refs[m.Reference]
	if !ok || ref.contractColumn == "" {
		return dto.OutcomeSkipped, dto.Mismatch{}
	}
	masterCol, ok := utils.FindColumn(c.master, m.MasterKeyword)
	if !ok {
		return dto.OutcomeSkipped, dto.Mismatch{}
	}
	refCol, ok := utils.FindColumn(ref.table, m.ReferenceKeyword)
	if !ok {
		return dto.OutcomeSkipped, dto.Mismatch{}
	}

	contractNo := strings.TrimSpace(c.master.Cell(row, c.contractColumn))
	if utils.IsEmptyLike(contractNo) {
		return dto.OutcomeSkipped, dto.Mismatch{}
	}
	refRow := findReferenceRow(ref, contractNo)
	if refRow < 0 {
		return dto.OutcomeSkipped, dto.Mismatch{}
	}

	mainVal := c.master.Cell(row, masterCol)
	refVal := ref.table.Cell(refRow, refCol)
	if utils.IsEmptyLike(mainVal) && utils.IsEmptyLike(refVal) {
		return dto.OutcomeSkipped, dto.Mismatch{}
	}

	mainCell := utils.DateCell{Raw: mainVal, Date1904: c.master.Date1904}
	refCell := utils.DateCell{Raw: refVal, Date1904: ref.table.Date1904}
	if valuesAgree(m, mainCell, refCell) {
		return dto.OutcomeMatch, dto.Mismatch{}
	}
	return dto.OutcomeMismatch, dto.Mismatch{
		Coordinate:       dto.Coordinate{Row: row, Col: c.master.ColumnIndex(masterCol)},
		Column:           masterCol,
		ContractNo:       contractNo,
		Reference:        m.Reference,
		MasterKeyword:    m.MasterKeyword,
		ReferenceKeyword: m.ReferenceKeyword,
		MasterValue:      strings.TrimSpace(mainVal),
		ReferenceValue:   strings.TrimSpace(refVal),
	}
}

// valuesAgree applies the field-type rules: date fields compare by calendar
// day in each workbook's date system, everything else through the
// numeric/text normalizer.
func valuesAgree(m dto.FieldMapping, mainVal, refVal utils.DateCell) bool {
	if utils.IsDateKeyword(m.MasterKeyword) || utils.IsDateKeyword(m.ReferenceKeyword) {
		return utils.SameCalendarDayCells(mainVal, refVal)
	}
	return utils.NormalizeNumeric(mainVal.Raw).Equal(utils.NormalizeNumeric(refVal.Raw))
}

// findReferenceRow returns the first row whose trimmed contract cell equals
// contractNo, or -1. Duplicate contract numbers resolve to the first row.
func findReferenceRow(ref referenceTable, contractNo string) int {
	idx := ref.table.ColumnIndex(ref.contractColumn)
	if idx < 0 {
		return -1
	}
	for i, r := range ref.table.Rows {
		if strings.TrimSpace(r[idx]) == contractNo {
			return i
		}
	}
	return -1
}
