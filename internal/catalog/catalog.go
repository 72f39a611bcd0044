// Package catalog holds the HTML tag and CSS property reference data shown by
// the browser, grouped for display and searchable by substring.
//
// The catalog is safe for concurrent use. Datasets can be replaced at runtime
// (for example when an overlay file changes on disk) and watchers are notified
// of every replacement.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/maruel/natural"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

// Kind distinguishes the two reference tables.
type Kind string

const (
	KindTag      Kind = "html"
	KindProperty Kind = "css"
)

// Kinds returns both kinds in tab order.
func Kinds() []Kind {
	return []Kind{KindTag, KindProperty}
}

// ParseKind accepts the kind names used in URLs and on the command line.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "tag", "tags":
		return KindTag, true
	case "css", "property", "properties", "prop":
		return KindProperty, true
	default:
		return "", false
	}
}

// DefaultExplanation is shown when an entry carries no explanation of its own.
const DefaultExplanation = "Example usage."

// Entry is one row of a reference table.
type Entry struct {
	Name        string `yaml:"-" json:"name"`
	Kind        Kind   `yaml:"-" json:"kind"`
	Group       string `yaml:"-" json:"group"`
	Description string `yaml:"description" json:"description"`
	Example     string `yaml:"example" json:"example"`
	Explanation string `yaml:"explanation,omitempty" json:"explanation,omitempty"`

	text string
}

// Label is the text shown in the first column: <name> for tags, the bare name
// for properties.
func (e *Entry) Label() string {
	if e.Kind == KindTag {
		return "<" + e.Name + ">"
	}
	return e.Name
}

// Title is the heading of the detail view.
func (e *Entry) Title() string {
	if e.Kind == KindTag {
		return "Tag: <" + e.Name + ">"
	}
	return "Property: " + e.Name
}

// Standard names the standard shown in the third column.
func (e *Entry) Standard() string {
	if e.Kind == KindTag {
		return "HTML5"
	}
	return "CSS3"
}

// Group is a named, ordered list of entry names.
type Group struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// GroupView is a group resolved to the entries that have data.
type GroupView struct {
	Name    string
	Entries []*Entry
}

// Dataset is the complete reference data for one kind.
type Dataset struct {
	Groups  []Group          `yaml:"groups"`
	Entries map[string]Entry `yaml:"entries"`
}

// SearchResult is what a table shows for a search term. With an empty term the
// grouped view is returned; otherwise group headers are hidden and Rows holds
// every matching entry in display order.
type SearchResult struct {
	Kind    Kind
	Term    string
	Grouped bool
	Groups  []GroupView
	Rows    []*Entry
}

// Len returns the number of entries in the result.
func (r SearchResult) Len() int {
	if !r.Grouped {
		return len(r.Rows)
	}
	n := 0
	for _, g := range r.Groups {
		n += len(g.Entries)
	}
	return n
}

// EventType describes a catalog change.
type EventType int

const (
	EventTypeReplaced EventType = iota
	EventTypeMerged
)

// Event is sent to watchers when a dataset changes.
type Event struct {
	Type      EventType
	Kind      Kind
	Timestamp time.Time
}

type table struct {
	groups  []Group
	entries map[string]*Entry
	views   []GroupView
}

// Catalog stores both reference tables.
type Catalog struct {
	tables   map[Kind]*table
	mutex    sync.RWMutex
	watchers []chan Event
}

// New builds a catalog from explicit datasets.
func New(tags, properties Dataset) *Catalog {
	return &Catalog{
		tables: map[Kind]*table{
			KindTag:      newTable(KindTag, tags),
			KindProperty: newTable(KindProperty, properties),
		},
		watchers: make([]chan Event, 0),
	}
}

// Default returns a catalog with the built-in data.
func Default() *Catalog {
	return New(BuiltinDataset(KindTag), BuiltinDataset(KindProperty))
}

// BuiltinDataset returns a copy of the built-in data for kind.
func BuiltinDataset(kind Kind) Dataset {
	groups, entries := tagGroups, tagEntries
	if kind == KindProperty {
		groups, entries = propertyGroups, propertyEntries
	}

	ds := Dataset{
		Groups:  make([]Group, len(groups)),
		Entries: make(map[string]Entry, len(entries)),
	}
	for i, g := range groups {
		ds.Groups[i] = Group{Name: g.Name, Members: append([]string(nil), g.Members...)}
	}
	for name, e := range entries {
		ds.Entries[name] = e
	}
	return ds
}

func newTable(kind Kind, ds Dataset) *table {
	t := &table{
		groups:  ds.Groups,
		entries: make(map[string]*Entry, len(ds.Entries)),
	}

	for name, e := range ds.Entries {
		entry := e
		entry.Name = name
		entry.Kind = kind
		t.entries[name] = &entry
	}

	t.views = make([]GroupView, 0, len(t.groups))
	for _, g := range t.groups {
		view := GroupView{Name: g.Name, Entries: make([]*Entry, 0, len(g.Members))}
		for _, member := range g.Members {
			entry, ok := t.entries[member]
			if !ok {
				continue
			}
			if entry.Group == "" {
				entry.Group = g.Name
			}
			view.Entries = append(view.Entries, entry)
		}
		t.views = append(t.views, view)
	}

	for _, entry := range t.entries {
		entry.text = fold(RowText(entry))
	}

	return t
}

// Get looks up an entry by name.
func (c *Catalog) Get(kind Kind, name string) (*Entry, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	t, ok := c.tables[kind]
	if !ok {
		return nil, false
	}
	entry, ok := t.entries[name]
	return entry, ok
}

// Groups returns the grouped table for kind in display order.
func (c *Catalog) Groups(kind Kind) []GroupView {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	t, ok := c.tables[kind]
	if !ok {
		return nil
	}
	return append([]GroupView(nil), t.views...)
}

// Names returns every entry name of kind, naturally sorted.
func (c *Catalog) Names(kind Kind) []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	t, ok := c.tables[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Count returns the number of entries of kind.
func (c *Catalog) Count(kind Kind) int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if t, ok := c.tables[kind]; ok {
		return len(t.entries)
	}
	return 0
}

// Search filters the table for kind. Rows match when their visible text
// contains the case-folded term.
func (c *Catalog) Search(kind Kind, term string) SearchResult {
	result := SearchResult{Kind: kind, Term: term}

	needle := fold(term)
	if needle == "" {
		result.Grouped = true
		result.Groups = c.Groups(kind)
		return result
	}

	for _, g := range c.Groups(kind) {
		for _, entry := range g.Entries {
			if strings.Contains(entry.text, needle) {
				result.Rows = append(result.Rows, entry)
			}
		}
	}
	return result
}

// Explain returns the explanation for the detail view. Properties without an
// explanation repeat their description; tags fall back to DefaultExplanation.
func Explain(e *Entry) string {
	switch {
	case e == nil:
		return DefaultExplanation
	case e.Explanation != "":
		return e.Explanation
	case e.Kind == KindProperty && e.Description != "":
		return e.Description
	default:
		return DefaultExplanation
	}
}

// Replace swaps the dataset for kind and notifies watchers.
func (c *Catalog) Replace(kind Kind, ds Dataset) {
	c.swap(kind, newTable(kind, ds), EventTypeReplaced)
}

// Merge overlays ds onto the current dataset for kind. Entries with the same
// name are replaced; groups with the same name gain the new members.
func (c *Catalog) Merge(kind Kind, ds Dataset) {
	current := c.Dataset(kind)
	c.swap(kind, newTable(kind, mergeDatasets(current, ds)), EventTypeMerged)
}

// Dataset returns a copy of the current dataset for kind.
func (c *Catalog) Dataset(kind Kind) Dataset {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	ds := Dataset{Entries: make(map[string]Entry)}
	t, ok := c.tables[kind]
	if !ok {
		return ds
	}
	for _, g := range t.groups {
		ds.Groups = append(ds.Groups, Group{Name: g.Name, Members: append([]string(nil), g.Members...)})
	}
	for name, e := range t.entries {
		ds.Entries[name] = Entry{Description: e.Description, Example: e.Example, Explanation: e.Explanation}
	}
	return ds
}

func (c *Catalog) swap(kind Kind, t *table, eventType EventType) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.tables[kind] = t

	event := Event{Type: eventType, Kind: kind, Timestamp: time.Now()}
	for _, watcher := range c.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}

// Watch returns a channel that receives catalog events.
func (c *Catalog) Watch() <-chan Event {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ch := make(chan Event, 16)
	c.watchers = append(c.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it.
func (c *Catalog) UnWatch(ch <-chan Event) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, watcher := range c.watchers {
		if watcher == ch {
			close(watcher)
			c.watchers = append(c.watchers[:i], c.watchers[i+1:]...)
			break
		}
	}
}

func mergeDatasets(base, overlay Dataset) Dataset {
	out := Dataset{
		Groups:  make([]Group, 0, len(base.Groups)+len(overlay.Groups)),
		Entries: make(map[string]Entry, len(base.Entries)+len(overlay.Entries)),
	}
	for name, e := range base.Entries {
		out.Entries[name] = e
	}
	for name, e := range overlay.Entries {
		out.Entries[name] = e
	}

	index := make(map[string]int)
	for _, g := range base.Groups {
		index[g.Name] = len(out.Groups)
		out.Groups = append(out.Groups, Group{Name: g.Name, Members: append([]string(nil), g.Members...)})
	}
	for _, g := range overlay.Groups {
		i, ok := index[g.Name]
		if !ok {
			index[g.Name] = len(out.Groups)
			out.Groups = append(out.Groups, Group{Name: g.Name, Members: append([]string(nil), g.Members...)})
			continue
		}
		seen := make(map[string]bool, len(out.Groups[i].Members))
		for _, m := range out.Groups[i].Members {
			seen[m] = true
		}
		for _, m := range g.Members {
			if !seen[m] {
				out.Groups[i].Members = append(out.Groups[i].Members, m)
				seen[m] = true
			}
		}
	}
	return out
}

// RowMarkup renders the table row for an entry: label, description, standard.
func RowMarkup(e *Entry) string {
	attr := "data-prop"
	class := "property"
	if e.Kind == KindTag {
		attr = "data-tag"
		class = "tag"
	}
	return `<tr class="data-row"><td><span class="` + class + `" ` + attr + `="` + html.EscapeString(e.Name) + `">` +
		html.EscapeString(e.Label()) + `</span></td><td>` + html.EscapeString(e.Description) +
		`</td><td>` + e.Standard() + `</td></tr>`
}

// RowText returns the visible text of an entry's row, cells separated by tabs.
func RowText(e *Entry) string {
	z := html.NewTokenizer(strings.NewReader(RowMarkup(e)))
	var cells []string
	var cell strings.Builder
	inCell := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(cells, "\t")
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "td" {
				inCell = true
				cell.Reset()
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "td" && inCell {
				cells = append(cells, cell.String())
				inCell = false
			}
		case html.TextToken:
			if inCell {
				cell.Write(z.Text())
			}
		}
	}
}

// SortEntries orders entries by name using natural ordering (h2 before h10).
func SortEntries(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name, entries[j].Name)
	})
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
