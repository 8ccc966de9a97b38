package service

import (
	"fmt"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/utils"
	"github.com/rs/zerolog/log"
)

type ReconcileService struct {
	processor WorkbookProcessor
	sources   []TableSource
	mappings  []dto.FieldMapping
}

func NewReconcileService(processor WorkbookProcessor) *ReconcileService {
	return &ReconcileService{
		processor: processor,
		sources:   DefaultSources,
		mappings:  DefaultMappings,
	}
}

// Reconcile runs one reconciliation over the uploaded workbooks and returns
// the annotated master workbook together with the mismatch count.
// Missing files, sheets or the master contract column abort the run with a
// *dto.NotFoundError; fewer than five uploads yield a *dto.InputCountError.
func (s *ReconcileService) Reconcile(files []dto.UploadedFile) (*dto.ReconcileResult, error) {
	if len(files) < dto.RequiredFileCount {
		return nil, &dto.InputCountError{Got: len(files), Want: dto.RequiredFileCount}
	}

	// Resolve every file before reading any of them.
	selected := make([]dto.UploadedFile, len(s.sources))
	for i, src := range s.sources {
		f, err := utils.FindFile(files, src.FileKeyword)
		if err != nil {
			log.Warn().Str("table", string(src.ID)).Str("keyword", src.FileKeyword).Msg("input file not found")
			return nil, err
		}
		selected[i] = f
	}

	tables := make(map[dto.TableID]*dto.Table, len(s.sources))
	for i, src := range s.sources {
		t, err := s.processor.LoadTable(selected[i], src.SheetKeyword, src.HeaderRow)
		if err != nil {
			return nil, fmt.Errorf("load %s table: %w", src.ID, err)
		}
		log.Debug().
			Str("table", string(src.ID)).
			Str("file", selected[i].Name).
			Str("sheet", t.Name).
			Int("rows", len(t.Rows)).
			Msg("table loaded")
		tables[src.ID] = t
	}

	master := tables[dto.TableMaster]
	contractColumn, ok := utils.FindColumn(master, ContractKeyword)
	if !ok {
		return nil, dto.NewNotFoundError(dto.NotFoundColumn, ContractKeyword, "主表")
	}

	refs := make(map[dto.TableID]referenceTable, len(dto.ReferenceTables))
	for _, id := range dto.ReferenceTables {
		t, ok := tables[id]
		if !ok {
			continue
		}
		col, found := utils.FindColumn(t, ContractKeyword)
		if !found {
			log.Warn().Str("table", string(id)).Msg("reference table has no contract column, its fields are skipped")
		}
		refs[id] = referenceTable{table: t, contractColumn: col}
	}

	cmp := &fieldComparator{master: master, contractColumn: contractColumn, refs: refs}
	run := cmp.run(s.mappings)

	plan := AnnotationPlan{
		ContractColumn: contractColumn,
		Highlights:     run.highlights,
		FlaggedRows:    FlagRows(run.highlights),
	}
	workbook, err := s.processor.Render(master, plan)
	if err != nil {
		return nil, fmt.Errorf("render annotated workbook: %w", err)
	}

	log.Info().
		Int("rows", len(master.Rows)).
		Int("mismatches", len(run.mismatches)).
		Int("flagged_rows", len(plan.FlaggedRows)).
		Msg("reconciliation completed")

	return &dto.ReconcileResult{
		MismatchCount: len(run.mismatches),
		Mismatches:    run.mismatches,
		Highlights:    plan.Highlights,
		FlaggedRows:   plan.FlaggedRows,
		Workbook:      workbook,
	}, nil
}
