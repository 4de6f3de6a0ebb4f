package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetSpec describes how to locate one worksheet inside an uploaded
// workbook. Strategies are tried in order: exact names, then keyword
// sets (case-insensitive substring match, all keywords of a set must
// appear), then an operator-supplied override, then optionally the first
// sheet in the workbook.
type SheetSpec struct {
	Slot          string     // label used in errors and operator prompts
	Exact         []string   // exact sheet names
	Keywords      [][]string // fallback keyword sets, tried in order
	Override      string     // operator-supplied sheet name, may be empty
	Optional      bool       // unresolved is not an error, returns ""
	FallbackFirst bool       // last resort: first sheet of the workbook
}

// ResolveSheet locates a worksheet by trying each strategy in turn.
// Returns "" without error for unresolved optional sheets; unresolved
// required sheets are a configuration error.
func ResolveSheet(f *excelize.File, spec SheetSpec) (string, error) {
	sheets := f.GetSheetList()

	for _, name := range spec.Exact {
		for _, sheet := range sheets {
			if sheet == name {
				return sheet, nil
			}
		}
	}

	for _, keywords := range spec.Keywords {
		for _, sheet := range sheets {
			if containsAll(sheet, keywords) {
				return sheet, nil
			}
		}
	}

	if spec.Override != "" {
		for _, sheet := range sheets {
			if sheet == spec.Override {
				return sheet, nil
			}
		}
	}

	if spec.FallbackFirst && len(sheets) > 0 {
		return sheets[0], nil
	}

	if spec.Optional {
		return "", nil
	}

	return "", fmt.Errorf("cannot resolve %s sheet: none of %v matched (available: %v)",
		spec.Slot, spec.Exact, sheets)
}

// containsAll reports whether every keyword appears in the sheet name,
// case-insensitively.
func containsAll(sheet string, keywords []string) bool {
	lower := strings.ToLower(sheet)
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}
