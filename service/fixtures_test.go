package service

import (
	"testing"
	"time"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetSpec struct {
	name string
	rows [][]interface{}
}

// buildWorkbook writes the given sheets into an in-memory xlsx.
func buildWorkbook(t *testing.T, sheets ...sheetSpec) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			if len(row) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &values))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

var masterHeaders = []interface{}{
	"合同编号", "授信方", "租赁本金", "租赁期限", "客户经理", "起租收益率", "主车台数",
	"挂车台数", "保证金比例", "项目提报人", "起租时间", "二次时间", "结清日期",
}

// ledgerFixture holds the five tables of a run where every field agrees.
// Tests mutate it before calling files.
type ledgerFixture struct {
	master    [][]interface{}
	loan      [][]interface{}
	field     [][]interface{}
	secondary [][]interface{}
	truck     [][]interface{}

	masterSheet string
	names       map[dto.TableID]string
}

func newLedgerFixture() *ledgerFixture {
	return &ledgerFixture{
		masterSheet: "二次放款台账",
		master: [][]interface{}{
			{"不担保人事用合同记录表"},
			masterHeaders,
			{"C001", "某银行", 100000, 36, "张三", "5%", 2, 1, 10, "李四", "2024-01-05 10:00", "2024-03-01", "2027-01-05"},
			{"C002", "某银行", 200000, 24, "王五", 6, 1, 0, 15, "赵六", "2024-02-10", "2024-04-01", ""},
		},
		loan: [][]interface{}{
			{"合同号", "授信方", "本金", "期限", "客户经理", "收益率", "主车台数", "挂车台数"},
			{"C001", "某银行", 100000.0000001, 36, "张三", 5, 2, 1},
			{"C002", "某银行", 200000, 24, "王五", 6, 1, 0},
		},
		field: [][]interface{}{
			{"合同编号", "保证金比例_2", "提报人", "起租日_商", "总期数_商_资产"},
			{"C001", 10, "李四", "2024-01-05", 36},
			{"C002", 15, "赵六", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 24},
		},
		secondary: [][]interface{}{
			{"合同编号", "出本流程时间_节点"},
			{"C001", "2024-03-01 09:30:00"},
			{"C002", "2024/4/1"},
		},
		truck: [][]interface{}{
			{"合同号", "核销时间"},
			{"C001", "2027-01-05"},
			{"C002", ""},
		},
		names: map[dto.TableID]string{
			dto.TableMaster:    "不担保人事用合同记录表.xlsx",
			dto.TableLoan:      "放款明细.xlsx",
			dto.TableField:     "字段表.xlsx",
			dto.TableSecondary: "二次明细.xlsx",
			dto.TableTruck:     "重卡数据.xlsx",
		},
	}
}

// set replaces a cell addressed by header name; row is the physical row index.
func set(rows [][]interface{}, headerRow, row int, header string, v interface{}) {
	for i, h := range rows[headerRow] {
		if h == header {
			for len(rows[row]) <= i {
				rows[row] = append(rows[row], "")
			}
			rows[row][i] = v
			return
		}
	}
	panic("unknown header " + header)
}

// setMaster addresses master cells by zero-based data row.
func (fx *ledgerFixture) setMaster(dataRow int, header string, v interface{}) {
	set(fx.master, 1, dataRow+2, header, v)
}

func (fx *ledgerFixture) files(t *testing.T) []dto.UploadedFile {
	t.Helper()
	return []dto.UploadedFile{
		{Name: fx.names[dto.TableMaster], Data: buildWorkbook(t,
			sheetSpec{name: "首次放款", rows: [][]interface{}{{"ignored"}}},
			sheetSpec{name: fx.masterSheet, rows: fx.master},
		)},
		{Name: fx.names[dto.TableLoan], Data: buildWorkbook(t,
			sheetSpec{name: "本司放款", rows: fx.loan},
		)},
		{Name: fx.names[dto.TableField], Data: buildWorkbook(t,
			sheetSpec{name: "轻卡", rows: [][]interface{}{{"合同编号"}}},
			sheetSpec{name: "重卡字段", rows: fx.field},
		)},
		{Name: fx.names[dto.TableSecondary], Data: buildWorkbook(t,
			sheetSpec{name: "Sheet1", rows: fx.secondary},
		)},
		{Name: fx.names[dto.TableTruck], Data: buildWorkbook(t,
			sheetSpec{name: "Sheet1", rows: fx.truck},
		)},
	}
}
