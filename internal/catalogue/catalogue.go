// Package catalogue holds the static reference data describing the
// platform objects, properties, methods and utilities a command may
// interpolate. The data is fixed at compile time and read-only; the
// generator only ever performs membership lookups against it.
package catalogue

import (
	"sort"
	"strings"
)

type Category string

const (
	CategoryDiscord Category = "discord"
	CategoryUser    Category = "user"
	CategoryServer  Category = "server"
	CategoryChannel Category = "channel"
	CategoryMessage Category = "message"
	CategoryGuild   Category = "guild"
)

// Entry describes one interpolatable name.
type Entry struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Type        string   `json:"type"` // property, method, utility
	Description string   `json:"description"`
	Example     string   `json:"example,omitempty"`
}

var (
	categories = map[Category][]Entry{
		CategoryDiscord: discordEntries,
		CategoryUser:    userEntries,
		CategoryServer:  serverEntries,
		CategoryChannel: channelEntries,
		CategoryMessage: messageEntries,
		CategoryGuild:   guildEntries,
	}

	// index is the flattened membership set across all categories.
	index = map[string]Entry{}
)

func init() {
	for _, entries := range categories {
		for _, e := range entries {
			index[e.Name] = e
		}
	}
}

// Contains reports whether name is a recognized catalogue member.
func Contains(name string) bool {
	_, ok := index[name]
	return ok
}

// All returns every entry, sorted by name.
func All() []Entry {
	out := make([]Entry, 0, len(index))
	for _, e := range index {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCategory returns the entries of one category, or nil if the
// category is unknown.
func ByCategory(cat Category) []Entry {
	entries, ok := categories[cat]
	if !ok {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Categories lists the known category names, sorted.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for cat := range categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Search returns entries whose name or description contains term,
// case-insensitively, sorted by name.
func Search(term string) []Entry {
	term = strings.ToLower(term)
	var out []Entry
	for _, e := range index {
		if strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.Description), term) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
