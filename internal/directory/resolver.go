package directory

import (
	"strings"
	"unicode"

	"github.com/sharadgeorge/oncall-converter/internal/schedule"
)

// Resolver maps free-text cell values (initials, full names,
// "Lastname, Firstname") to directory usernames. Failed resolutions are
// recorded in the run's tracker and reported as data-quality warnings;
// they are never errors.
type Resolver struct {
	dir     *Directory
	tracker *schedule.Tracker
}

// NewResolver creates a resolver writing failures to the given tracker.
func NewResolver(dir *Directory, tracker *schedule.Tracker) *Resolver {
	return &Resolver{dir: dir, tracker: tracker}
}

// Directory returns the directory the resolver matches against.
func (r *Resolver) Directory() *Directory {
	return r.dir
}

// Resolve maps free text to a username. Rule order, first match wins:
// exact case-insensitive initials (periods tolerated), exact full name,
// then case-insensitive full name with periods stripped from both
// sides. On failure the text is classified as initials-like or
// name-like, recorded once, and ok=false returned.
func (r *Resolver) Resolve(text string) (username string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if username, ok = r.Lookup(text); ok {
		return username, true
	}
	r.recordUnknown(text)
	return "", false
}

// ResolveLoose is Resolve with two extra name-matching fallbacks used
// by grids that carry hand-written names: "Lastname, Firstname"
// containment against directory names, then title-stripped substring
// containment in either direction.
func (r *Resolver) ResolveLoose(text string) (username string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if username, ok = r.Lookup(text); ok {
		return username, true
	}
	if username, ok = r.lookupLoose(text); ok {
		return username, true
	}
	r.recordUnknown(text)
	return "", false
}

// Lookup applies the exact resolution rules without recording a
// failure. Used for tokens that must never surface as warnings, such as
// the work-shift fallback reader.
func (r *Resolver) Lookup(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	initials := strings.ReplaceAll(text, ".", "")
	if username, ok := r.dir.ByInitials(initials); ok {
		return username, true
	}

	if username, ok := r.dir.byName[text]; ok {
		return username, true
	}

	if username, ok := r.dir.byNormName[normalizeName(text)]; ok {
		return username, true
	}

	return "", false
}

// lookupLoose matches hand-written names against directory entries in
// directory order.
func (r *Resolver) lookupLoose(text string) (string, bool) {
	upper := strings.ToUpper(text)

	if comma := strings.IndexByte(upper, ','); comma >= 0 {
		last := strings.TrimSpace(upper[:comma])
		first := strings.TrimSpace(upper[comma+1:])
		for _, e := range r.dir.entries {
			nameUpper := strings.ToUpper(e.FullName)
			if last != "" && strings.Contains(nameUpper, last) {
				if first == "" || strings.Contains(nameUpper, first) {
					return e.Username, true
				}
			}
		}
		return "", false
	}

	target := stripTitle(upper)
	if target == "" {
		return "", false
	}
	for _, e := range r.dir.entries {
		entryName := stripTitle(strings.ToUpper(e.FullName))
		if entryName == "" {
			continue
		}
		if strings.Contains(entryName, target) || strings.Contains(target, entryName) {
			return e.Username, true
		}
	}
	return "", false
}

// recordUnknown classifies an unresolved identifier: short all-upper
// text is initials-like, everything else is name-like.
func (r *Resolver) recordUnknown(text string) {
	if looksLikeInitials(text) {
		r.tracker.AddUnknownInitials(text)
	} else {
		r.tracker.AddUnknownName(text)
	}
}

// looksLikeInitials reports whether text is at most 4 characters with
// at least one letter and no lower-case letters.
func looksLikeInitials(text string) bool {
	if len(text) > 4 {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// stripTitle drops a leading doctor title ("Dr." or "Dr ") from an
// upper-cased name.
func stripTitle(name string) string {
	name = strings.TrimSpace(name)
	for _, prefix := range []string{"DR.", "DR "} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimSpace(name[len(prefix):])
		}
	}
	return name
}
