package service

import (
	"testing"
	"time"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildTable(t *testing.T) {
	rows := [][]string{
		{"title"},
		{"合同编号", "", "金额", "金额"},
		{"C001", "x", "1"},
		{"C002", "y", "2", "3", "extra"},
	}

	table := buildTable("二次", rows, 1)

	assert.Equal(t, "二次", table.Name)
	assert.Equal(t, []string{"合同编号", "Unnamed: 1", "金额", "金额.1", "Unnamed: 4"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"C001", "x", "1", "", ""}, table.Rows[0])
	assert.Equal(t, "3", table.Cell(1, "金额.1"))
	assert.Equal(t, "", table.Cell(0, "missing"))
}

func TestBuildTableHeaderBeyondData(t *testing.T) {
	table := buildTable("empty", [][]string{{"only row"}}, 1)

	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestLoadTableDefaultSheet(t *testing.T) {
	data := buildWorkbook(t,
		sheetSpec{name: "数据", rows: [][]interface{}{{"合同号", "核销时间"}, {"C001", "2024-01-01"}}},
		sheetSpec{name: "备注", rows: [][]interface{}{{"note"}}},
	)

	table, err := NewWorkbookProcessor().LoadTable(dto.UploadedFile{Name: "重卡数据.xlsx", Data: data}, "", 0)
	require.NoError(t, err)

	assert.Equal(t, "数据", table.Name)
	assert.Equal(t, []string{"合同号", "核销时间"}, table.Columns)
	assert.Equal(t, "C001", table.Cell(0, "合同号"))
}

func TestLoadTableReadsRawValues(t *testing.T) {
	data := buildWorkbook(t,
		sheetSpec{name: "本司", rows: [][]interface{}{{"合同号", "收益率"}, {"C001", 0.05}}},
	)

	table, err := NewWorkbookProcessor().LoadTable(dto.UploadedFile{Name: "放款明细.xlsx", Data: data}, "本司", 0)
	require.NoError(t, err)
	assert.Equal(t, "0.05", table.Cell(0, "收益率"))
}

func TestLoadTableDate1904(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	date1904 := true
	require.NoError(t, f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &date1904}))
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"合同编号", "起租日_商"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"C001", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := NewWorkbookProcessor().LoadTable(dto.UploadedFile{Name: "字段表.xlsx", Data: buf.Bytes()}, "", 0)
	require.NoError(t, err)

	assert.True(t, table.Date1904)
	raw := table.Cell(0, "起租日_商")
	assert.Equal(t, "43834", raw)
	assert.True(t, utils.SameCalendarDayCells(
		utils.DateCell{Raw: raw, Date1904: table.Date1904},
		utils.DateCell{Raw: "2024-01-05"},
	))
}

func TestLoadTableDate1900ByDefault(t *testing.T) {
	data := buildWorkbook(t,
		sheetSpec{name: "数据", rows: [][]interface{}{{"合同号"}, {"C001"}}},
	)

	table, err := NewWorkbookProcessor().LoadTable(dto.UploadedFile{Name: "重卡数据.xlsx", Data: data}, "", 0)
	require.NoError(t, err)
	assert.False(t, table.Date1904)
}
