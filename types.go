package toxic

// Category names a class of problematic language such as threats or insults.
type Category string

const (
	Insults    Category = "insults"
	Defamation Category = "defamation"
	Harassment Category = "harassment"
	Threats    Category = "threats"
	Ambiguous  Category = "ambiguous"
	Names      Category = "names" // Personal names merged from external lists
)

// Language selects the stop-word list used when linting a dictionary.
type Language string

const (
	English  Language = "en"
	Spanish  Language = "es"
	French   Language = "fr"
	German   Language = "de"
	Japanese Language = "ja"
)

// A Hit records one (token, category) match and what it added to the score.
type Hit struct {
	Token    string   // The matching token as it appeared in the text.
	Position int      // Index of the token in the token sequence.
	Category Category // The category whose phrase list matched.
	Weight   int      // Category weight added to the score.
	Bonus    int      // Danger bonus added on top of Weight (0 or DangerBonus).
	Context  string   // The context window text tested for danger words.
	Danger   []string // Danger words found in Context, in DangerWords order.
}

// Points returns the total contribution of the hit.
func (h Hit) Points() int {
	return h.Weight + h.Bonus
}

// Report is the full result of analyzing one text.
type Report struct {
	Text   string
	Tokens []string
	Score  int
	Tier   Tier
	Hits   []Hit
}

// Flagged reports whether the text landed in any tier above NoIssue.
func (r Report) Flagged() bool {
	return r.Tier > NoIssue
}

// SentenceReport is the standalone analysis of one segmented sentence.
type SentenceReport struct {
	Report
	Start int // Start position in original text
	End   int // End position in original text
}
