package service

import "github.com/Aashish23092/ledger-reconciliation/dto"

// ContractKeyword locates the contract-number column in every table.
const ContractKeyword = "合同"

// TableSource says where a table is found among the uploads.
type TableSource struct {
	ID          dto.TableID
	FileKeyword string
	// SheetKeyword selects the sheet; empty means the first sheet.
	SheetKeyword string
	// HeaderRow is the zero-based physical row holding the headers.
	HeaderRow int
}

// DefaultSources lists the five inputs of a run, master first.
var DefaultSources = []TableSource{
	{ID: dto.TableMaster, FileKeyword: "不担保", SheetKeyword: "二次", HeaderRow: 1},
	{ID: dto.TableLoan, FileKeyword: "放款明细", SheetKeyword: "本司", HeaderRow: 0},
	{ID: dto.TableField, FileKeyword: "字段", SheetKeyword: "重卡", HeaderRow: 0},
	{ID: dto.TableSecondary, FileKeyword: "二次明细", HeaderRow: 0},
	{ID: dto.TableTruck, FileKeyword: "重卡数据", HeaderRow: 0},
}

// DefaultMappings is the fixed field mapping, grouped by reference table in
// the order the groups are applied.
var DefaultMappings = []dto.FieldMapping{
	{Reference: dto.TableLoan, MasterKeyword: "授信方", ReferenceKeyword: "授信"},
	{Reference: dto.TableLoan, MasterKeyword: "租赁本金", ReferenceKeyword: "本金"},
	{Reference: dto.TableLoan, MasterKeyword: "租赁期限", ReferenceKeyword: "期限"},
	{Reference: dto.TableLoan, MasterKeyword: "客户经理", ReferenceKeyword: "客户经理"},
	{Reference: dto.TableLoan, MasterKeyword: "起租收益率", ReferenceKeyword: "收益率"},
	{Reference: dto.TableLoan, MasterKeyword: "主车台数", ReferenceKeyword: "主车台数"},
	{Reference: dto.TableLoan, MasterKeyword: "挂车台数", ReferenceKeyword: "挂车台数"},

	{Reference: dto.TableField, MasterKeyword: "保证金比例", ReferenceKeyword: "保证金比例_2"},
	{Reference: dto.TableField, MasterKeyword: "项目提报人", ReferenceKeyword: "提报"},
	{Reference: dto.TableField, MasterKeyword: "起租时间", ReferenceKeyword: "起租日_商"},
	{Reference: dto.TableField, MasterKeyword: "租赁期限", ReferenceKeyword: "总期数_商_资产"},

	{Reference: dto.TableSecondary, MasterKeyword: "二次时间", ReferenceKeyword: "出本流程时间_节点"},

	{Reference: dto.TableTruck, MasterKeyword: "结清日期", ReferenceKeyword: "核销"},
}
