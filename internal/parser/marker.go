package parser

import "strings"

// Vocabulary a fixed set of shift-marker tokens for one cell context.
// Aliases map raw tokens to canonical markers; Compounds are matched as
// substrings before the whitespace split because their parts are not
// space-separated (e.g. "2C/E" meaning day plus evening call).
type Vocabulary struct {
	Aliases   map[string]string
	Compounds map[string][]string
}

// Parse extracts the ordered set of recognized markers from raw cell
// text. Newlines are normalized to spaces, matching is case-insensitive,
// and unrecognized tokens are dropped silently: cells routinely carry
// free-form annotations ("vacation", clinic notes) that are not
// scheduling data.
func (v *Vocabulary) Parse(cell string) []string {
	text := strings.ToUpper(NormalizeCell(cell))
	if text == "" {
		return nil
	}

	for compound, markers := range v.Compounds {
		if strings.Contains(text, compound) {
			out := make([]string, len(markers))
			copy(out, markers)
			return out
		}
	}

	var markers []string
	seen := make(map[string]bool)
	for _, part := range strings.Fields(text) {
		marker, ok := v.Aliases[part]
		if !ok || seen[marker] {
			continue
		}
		seen[marker] = true
		markers = append(markers, marker)
	}
	return markers
}
