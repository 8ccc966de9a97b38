package service

import (
	"bytes"
	"fmt"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/utils"
	"github.com/xuri/excelize/v2"
)

// WorkbookProcessor reads tables out of uploaded workbooks and renders the
// annotated master workbook.
type WorkbookProcessor interface {
	LoadTable(file dto.UploadedFile, sheetKeyword string, headerRow int) (*dto.Table, error)
	Render(master *dto.Table, plan AnnotationPlan) ([]byte, error)
}

type excelProcessor struct{}

func NewWorkbookProcessor() WorkbookProcessor {
	return &excelProcessor{}
}

// LoadTable opens the workbook from memory, picks the sheet whose name
// contains sheetKeyword (or the first sheet when the keyword is empty) and
// reads it with headers taken from headerRow. Cell values are raw, so dates
// arrive as Excel serial numbers and percentages as fractions; the table
// records whether those serials use the 1904 date system.
func (p *excelProcessor) LoadTable(file dto.UploadedFile, sheetKeyword string, headerRow int) (*dto.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", file.Name, dto.ErrUnreadableUpload, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("open %s: %w: no sheets found", file.Name, dto.ErrUnreadableUpload)
	}

	sheet := sheets[0]
	if sheetKeyword != "" {
		sheet, err = utils.FindSheet(sheets, sheetKeyword, file.Name)
		if err != nil {
			return nil, err
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w: %v", sheet, file.Name, dto.ErrUnreadableUpload, err)
	}
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("read workbook properties of %s: %w: %v", file.Name, dto.ErrUnreadableUpload, err)
	}

	t := buildTable(sheet, rows, headerRow)
	t.Date1904 = props.Date1904 != nil && *props.Date1904
	return t, nil
}

// buildTable turns physical rows into a Table. Rows above headerRow are
// dropped; blank headers become "Unnamed: <i>" and repeated headers get a
// ".<n>" suffix so every column name is unique.
func buildTable(name string, rows [][]string, headerRow int) *dto.Table {
	t := &dto.Table{Name: name}
	if headerRow < 0 || headerRow >= len(rows) {
		return t
	}

	data := rows[headerRow+1:]
	width := len(rows[headerRow])
	for _, r := range data {
		if len(r) > width {
			width = len(r)
		}
	}

	t.Columns = make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		var h string
		if i < len(rows[headerRow]) {
			h = rows[headerRow][i]
		}
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			h = fmt.Sprintf("%s.%d", h, n+1)
		} else {
			seen[h] = 0
		}
		t.Columns[i] = h
	}

	t.Rows = make([][]string, len(data))
	for i, r := range data {
		row := make([]string, width)
		copy(row, r)
		t.Rows[i] = row
	}
	return t
}
