package toxic

// DefaultWeight applies to any category without an explicit weight.
const DefaultWeight = 1

// Entry pairs a category with its phrase list.
type Entry struct {
	Category Category `json:"category" yaml:"category"`
	Phrases  []string `json:"phrases" yaml:"phrases"`
}

// Dictionary maps categories to phrase lists. It keeps categories in
// insertion order and is never modified after construction, so one value can
// be shared by any number of analyzers and goroutines.
type Dictionary struct {
	entries []Entry
	index   map[Category]int
}

// NewDictionary builds a dictionary from entries. A category that appears more
// than once is merged into its first position. Duplicate phrases within a
// category are dropped.
func NewDictionary(entries ...Entry) *Dictionary {
	d := &Dictionary{index: make(map[Category]int, len(entries))}
	for _, e := range entries {
		d.add(e.Category, e.Phrases)
	}
	return d
}

// DefaultDictionary returns the built-in sample dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(
		Entry{Insults, []string{"バカ", "クズ", "アホ", "ゴミ", "しね", "低能"}},
		Entry{Defamation, []string{"犯罪者", "不倫している"}},
		Entry{Harassment, []string{"お前を追い出してやる", "消え失せろ"}},
		Entry{Threats, []string{"お前を殺す", "お前を殴りつけるぞ"}},
		Entry{Ambiguous, []string{"頭が高いね", "よくそれでやっていけてるね"}},
	)
}

func (d *Dictionary) add(c Category, phrases []string) {
	pos, ok := d.index[c]
	if !ok {
		pos = len(d.entries)
		d.index[c] = pos
		d.entries = append(d.entries, Entry{Category: c, Phrases: make([]string, 0, len(phrases))})
	}

	seen := make(map[string]bool, len(d.entries[pos].Phrases)+len(phrases))
	for _, p := range d.entries[pos].Phrases {
		seen[p] = true
	}
	for _, p := range phrases {
		if seen[p] {
			continue
		}
		seen[p] = true
		d.entries[pos].Phrases = append(d.entries[pos].Phrases, p)
	}
}

// With returns a new dictionary with phrases appended to category c. The
// receiver is left untouched. A new category is placed after the existing ones.
func (d *Dictionary) With(c Category, phrases ...string) *Dictionary {
	out := NewDictionary(d.Entries()...)
	out.add(c, phrases)
	return out
}

// Entries returns a copy of the dictionary contents in category order.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = Entry{Category: e.Category, Phrases: append([]string(nil), e.Phrases...)}
	}
	return out
}

// Categories returns the category names in insertion order.
func (d *Dictionary) Categories() []Category {
	if d == nil {
		return nil
	}
	out := make([]Category, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Category
	}
	return out
}

// Phrases returns a copy of the phrases for c, or nil if c is absent.
func (d *Dictionary) Phrases(c Category) []string {
	if d == nil {
		return nil
	}
	pos, ok := d.index[c]
	if !ok {
		return nil
	}
	return append([]string(nil), d.entries[pos].Phrases...)
}

// Len returns the number of categories.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Weights maps categories to the points a match in that category is worth.
type Weights map[Category]int

// DefaultWeights returns the built-in weight table.
func DefaultWeights() Weights {
	return Weights{
		Insults:    2,
		Defamation: 3,
		Harassment: 4,
		Threats:    5,
		Ambiguous:  1,
	}
}

// Of returns the weight for c. Absent and zero weights fall back to
// DefaultWeight.
func (w Weights) Of(c Category) int {
	if weight := w[c]; weight != 0 {
		return weight
	}
	return DefaultWeight
}
