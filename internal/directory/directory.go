package directory

import (
	"strings"

	"github.com/sharadgeorge/oncall-converter/internal/model"
)

// Directory immutable in-memory lookup tables over the employee
// directory. Built once at process start; safe to share across
// concurrent runs because nothing mutates it afterwards.
type Directory struct {
	entries    []model.EmployeeDirectoryEntry
	byUsername map[string]int
	byInitials map[string]string // upper-cased initials -> username
	byName     map[string]string // exact full name -> username
	byNormName map[string]string // lower-cased, period-stripped name -> username
}

// New builds the lookup tables. Entry order is preserved: loose name
// matching iterates entries in directory order, so resolution is
// deterministic.
func New(entries []model.EmployeeDirectoryEntry) *Directory {
	d := &Directory{
		entries:    entries,
		byUsername: make(map[string]int, len(entries)),
		byInitials: make(map[string]string, len(entries)),
		byName:     make(map[string]string, len(entries)),
		byNormName: make(map[string]string, len(entries)),
	}
	for i, e := range entries {
		d.byUsername[e.Username] = i
		if key := strings.ToUpper(e.Initials); key != "" {
			if _, exists := d.byInitials[key]; !exists {
				d.byInitials[key] = e.Username
			}
		}
		if _, exists := d.byName[e.FullName]; !exists && e.FullName != "" {
			d.byName[e.FullName] = e.Username
		}
		if key := normalizeName(e.FullName); key != "" {
			if _, exists := d.byNormName[key]; !exists {
				d.byNormName[key] = e.Username
			}
		}
	}
	return d
}

// ForDepartment returns a directory restricted to one department's
// employees. Initials are only unique within a department, so runs
// resolve against the scoped view.
func (d *Directory) ForDepartment(name string) *Directory {
	var scoped []model.EmployeeDirectoryEntry
	for _, e := range d.entries {
		if strings.EqualFold(e.Department, name) {
			scoped = append(scoped, e)
		}
	}
	return New(scoped)
}

// Get returns the entry for a username.
func (d *Directory) Get(username string) (model.EmployeeDirectoryEntry, bool) {
	i, ok := d.byUsername[username]
	if !ok {
		return model.EmployeeDirectoryEntry{}, false
	}
	return d.entries[i], true
}

// ByInitials looks up a username by initials, case-insensitively.
func (d *Directory) ByInitials(initials string) (string, bool) {
	username, ok := d.byInitials[strings.ToUpper(strings.TrimSpace(initials))]
	return username, ok
}

// PrimaryRole returns the employee's first directory role, or the given
// default when the employee is not in the directory or has no roles.
func (d *Directory) PrimaryRole(username, fallback string) string {
	if e, ok := d.Get(username); ok {
		if role := e.PrimaryRole(); role != "" {
			return role
		}
	}
	return fallback
}

// Entries returns the directory contents in directory order.
func (d *Directory) Entries() []model.EmployeeDirectoryEntry {
	return d.entries
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// normalizeName lower-cases a name and strips period characters, so
// "Dr. A.B. Smith" and "Dr AB Smith" compare equal.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, ".", "")
	return strings.ToLower(strings.TrimSpace(name))
}
