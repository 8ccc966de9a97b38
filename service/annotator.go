package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/utils"
	"github.com/xuri/excelize/v2"
)

const (
	// PrimaryFill marks a mismatched cell.
	PrimaryFill = "FFC7CE"
	// SecondaryFill marks the contract cell of a row with any mismatch.
	SecondaryFill = "FFFF00"

	outputHeaderRow = 1
	outputBlankRows = 1
	// OutputDataRowOffset converts a zero-based master data row into its
	// 1-based row in the output sheet: header, then one blank row, then data.
	OutputDataRowOffset = outputHeaderRow + outputBlankRows + 1

	outputDateFormat = "yyyy-mm-dd hh:mm:ss"
)

// AnnotationPlan is the highlight state handed to the renderer once all
// comparisons are done.
type AnnotationPlan struct {
	ContractColumn string
	Highlights     []dto.Coordinate
	FlaggedRows    []int
}

// FlagRows returns, ascending, every row holding at least one highlight.
func FlagRows(highlights []dto.Coordinate) []int {
	set := make(map[int]struct{}, len(highlights))
	for _, h := range highlights {
		set[h.Row] = struct{}{}
	}
	rows := make([]int, 0, len(set))
	for r := range set {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

type styleKey struct {
	date bool
	fill string
}

// styleBook creates excelize styles on first use.
type styleBook struct {
	f      *excelize.File
	styles map[styleKey]int
}

func (b *styleBook) get(date bool, fill string) (int, error) {
	key := styleKey{date: date, fill: fill}
	if id, ok := b.styles[key]; ok {
		return id, nil
	}
	style := &excelize.Style{}
	if date {
		format := outputDateFormat
		style.CustomNumFmt = &format
	}
	if fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}}
	}
	id, err := b.f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	b.styles[key] = id
	return id, nil
}

// Render writes the master table into a new workbook and applies the plan.
func (p *excelProcessor) Render(master *dto.Table, plan AnnotationPlan) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	book := &styleBook{f: f, styles: make(map[styleKey]int)}

	header := make([]interface{}, len(master.Columns))
	dateCols := make([]bool, len(master.Columns))
	for i, c := range master.Columns {
		header[i] = c
		dateCols[i] = utils.IsDateKeyword(c)
	}
	if err := f.SetSheetRow(sheet, cellName(0, outputHeaderRow), &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	if len(master.Columns) > 0 {
		last := cellName(len(master.Columns)-1, outputHeaderRow)
		if err := f.SetCellStyle(sheet, cellName(0, outputHeaderRow), last, bold); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
	}

	// isSerial tracks date cells so highlights keep their number format.
	isSerial := func(row, col int) bool {
		_, serial := cellValue(master.Rows[row][col], dateCols[col], master.Date1904)
		return serial
	}

	for i, r := range master.Rows {
		values := make([]interface{}, len(r))
		for j, raw := range r {
			values[j], _ = cellValue(raw, dateCols[j], master.Date1904)
		}
		sheetRow := i + OutputDataRowOffset
		if err := f.SetSheetRow(sheet, cellName(0, sheetRow), &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", sheetRow, err)
		}
		for j := range r {
			if !isSerial(i, j) {
				continue
			}
			if err := applyStyle(f, book, sheet, i, j, true, ""); err != nil {
				return nil, err
			}
		}
	}

	for _, h := range plan.Highlights {
		if h.Row < 0 || h.Row >= len(master.Rows) || h.Col < 0 || h.Col >= len(master.Columns) {
			continue
		}
		if err := applyStyle(f, book, sheet, h.Row, h.Col, isSerial(h.Row, h.Col), PrimaryFill); err != nil {
			return nil, err
		}
	}

	contractIdx := master.ColumnIndex(plan.ContractColumn)
	if contractIdx >= 0 {
		for _, row := range plan.FlaggedRows {
			if row < 0 || row >= len(master.Rows) {
				continue
			}
			if err := applyStyle(f, book, sheet, row, contractIdx, isSerial(row, contractIdx), SecondaryFill); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func applyStyle(f *excelize.File, book *styleBook, sheet string, row, col int, date bool, fill string) error {
	id, err := book.get(date, fill)
	if err != nil {
		return err
	}
	cell := cellName(col, row+OutputDataRowOffset)
	if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
		return fmt.Errorf("style %s: %w", cell, err)
	}
	return nil
}

// cellValue picks the value written for a raw cell. serial is true for an
// Excel serial in a date column, which is written as a 1900-system date.
// Date text such as 20240105 is not a serial and keeps its value.
func cellValue(raw string, dateColumn, date1904 bool) (value interface{}, serial bool) {
	if dateColumn {
		if v, ok := utils.ExcelSerial(raw); ok {
			if date1904 {
				v += utils.Date1904Offset
			}
			return v, true
		}
	}
	if v, ok := numericCell(raw); ok {
		return v, false
	}
	return raw, false
}

// numericCell converts raw text to a number only when the round trip keeps
// the text intact, so IDs with leading zeros or more than 15 digits stay text.
func numericCell(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	if strconv.FormatFloat(v, 'f', -1, 64) != raw {
		return 0, false
	}
	return v, true
}

// cellName maps a zero-based column and 1-based sheet row to "A1" notation.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
