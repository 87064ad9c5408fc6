package toxic

// Tier is a classification label derived from a score. Tiers are ordered by
// severity, so they can be compared with < and >.
type Tier int

const (
	NoIssue Tier = iota
	ContextualAnalysis
	PartialMatch
	Match
)

// Score thresholds, inclusive lower bounds.
const (
	MatchThreshold   = 20
	PartialThreshold = 10
)

var tierLabels = map[Tier]string{
	NoIssue:            "no issue",
	ContextualAnalysis: "contextual analysis",
	PartialMatch:       "partial match",
	Match:              "match",
}

var tierMessages = map[Tier]string{
	NoIssue:            "問題なし",
	ContextualAnalysis: "【文脈解析】 攻撃的表現を含むかもしれません。注意が必要です。",
	PartialMatch:       "【部分一致】 一部の表現が問題となる可能性があります。",
	Match:              "【一致】 この文章は名誉毀損や誹謗中傷に該当する可能性が非常に高いです。",
}

// String returns the tier label.
func (t Tier) String() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return "unknown"
}

// Message returns the user-facing verdict for the tier.
func (t Tier) Message() string {
	return tierMessages[t]
}

// ClassifyScore maps a score to its tier. Anything not above zero, including
// negative scores and NaN, is NoIssue.
func ClassifyScore(score float64) Tier {
	switch {
	case score >= MatchThreshold:
		return Match
	case score >= PartialThreshold:
		return PartialMatch
	case score > 0:
		return ContextualAnalysis
	default:
		return NoIssue
	}
}
