package department

import (
	"fmt"
	"sort"
	"strings"
)

var registry = map[string]Department{}

// Register adds a department to the registry. Called from init;
// duplicate names are a programming error.
func Register(d Department) {
	key := strings.ToLower(d.Name())
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("department %q registered twice", d.Name()))
	}
	registry[key] = d
}

// Get returns the department by name, case-insensitively.
func Get(name string) (Department, error) {
	d, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown department: %s", name)
	}
	return d, nil
}

// Names returns registered department names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}
