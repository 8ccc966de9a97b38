package service

import (
	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/utils"
	"github.com/rs/zerolog/log"
)

// runResult is what one pass over the master table produces.
type runResult struct {
	mismatches []dto.Mismatch
	highlights []dto.Coordinate
}

// run applies every mapping to every master row that has a contract number.
// Each mismatch outcome is counted, even when two mappings hit the same
// cell; the highlight set holds each cell once.
func (c *fieldComparator) run(mappings []dto.FieldMapping) runResult {
	var out runResult
	seen := make(map[dto.Coordinate]struct{})

	for row := range c.master.Rows {
		if utils.IsEmptyLike(c.master.Cell(row, c.contractColumn)) {
			continue
		}
		for _, m := range mappings {
			outcome, mm := c.compare(row, m)
			if outcome != dto.OutcomeMismatch {
				continue
			}
			log.Debug().
				Int("row", row).
				Str("column", mm.Column).
				Str("reference", string(mm.Reference)).
				Str("master_value", mm.MasterValue).
				Str("reference_value", mm.ReferenceValue).
				Msg("field mismatch")

			out.mismatches = append(out.mismatches, mm)
			if _, dup := seen[mm.Coordinate]; !dup {
				seen[mm.Coordinate] = struct{}{}
				out.highlights = append(out.highlights, mm.Coordinate)
			}
		}
	}
	return out
}
