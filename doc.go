/*
Package toxic flags potentially abusive, defamatory or threatening language
in short texts.

Text is split into tokens, each token is matched against categorized phrase
lists, and every match adds its category weight to a score. A match whose
surrounding tokens contain a danger word such as 殺す earns an extra bonus.
The final score maps to one of four tiers:

	analyzer := toxic.NewAnalyzer()
	report := analyzer.Explain("お前を殺す")
	fmt.Println(report.Score, report.Tier) // 7 contextual analysis

This is a keyword heuristic. There is no stemming, normalization or semantic
analysis; short phrases in particular match generously (see Lint).
*/
package toxic
