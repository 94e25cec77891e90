package content

// SectionEntry pairs a stored entry with its display label. Entries whose key
// is outside the catalog keep the raw key as the label.
type SectionEntry struct {
	Entry
	Label string `json:"label"`
}

// Section is one category group of the admin content listing. Categories with
// no entries are not rendered, so they are simply omitted from the slice.
type Section struct {
	Category Category       `json:"category"`
	Title    string         `json:"title"`
	Entries  []SectionEntry `json:"entries"`
}

// Partition groups entries into category sections in display order, skipping
// empty categories. Input order inside a category is preserved.
func Partition(entries []Entry) []Section {
	grouped := make(map[Category][]SectionEntry)
	for _, e := range entries {
		c := CategoryOf(e.Key)
		grouped[c] = append(grouped[c], SectionEntry{Entry: e, Label: Label(e.Key)})
	}
	var out []Section
	for _, c := range Categories() {
		if len(grouped[c]) == 0 {
			continue
		}
		out = append(out, Section{Category: c, Title: CategoryTitle(c), Entries: grouped[c]})
	}
	return out
}
