// Package template is the fixed library of canned body generators. The
// set of units is built once at init time and read-only afterward;
// authoring a new unit means adding it to one of the category files and
// redeploying.
package template

import (
	"errors"
	"sort"

	"command-forge/internal/spec"
)

// ErrNotFound is returned when a spec references a unit name that is
// not in the library.
var ErrNotFound = errors.New("template not found")

// Unit is one named generation function plus its declared metadata.
// Generate must be a total, side-effect-free function over any
// well-formed spec; missing optional fields get documented defaults.
type Unit struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Options     []spec.OptionSpec `json:"options,omitempty"`
	Generate    func(data *spec.CommandSpec) string `json:"-"`
}

var registry = map[string]Unit{}

func register(units ...Unit) {
	for _, u := range units {
		registry[u.Name] = u
	}
}

// Lookup returns the unit with the given name.
func Lookup(name string) (Unit, bool) {
	u, ok := registry[name]
	return u, ok
}

// Generate runs the named unit against data. Returns ErrNotFound when
// the unit does not exist.
func Generate(name string, data *spec.CommandSpec) (string, error) {
	u, ok := registry[name]
	if !ok {
		return "", ErrNotFound
	}
	return u.Generate(data), nil
}

// List returns all units of one category sorted by name, or every unit
// when category is empty.
func List(category string) []Unit {
	var out []Unit
	for _, u := range registry {
		if category == "" || u.Category == category {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Categories returns the distinct category names, sorted.
func Categories() []string {
	seen := map[string]bool{}
	for _, u := range registry {
		seen[u.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// tick is interpolated into generated fragments where the output needs
// a JS template literal, since Go raw strings cannot contain backticks.
const tick = "`"
