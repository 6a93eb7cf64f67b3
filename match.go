package textpipe

import "strings"

// A TokenPattern constrains a single token in a Matcher rule. All set fields
// must hold for the token; the zero pattern matches any token.
type TokenPattern struct {
	Text      string // Exact surface form.
	Lower     string // Case-insensitive surface form.
	TagPrefix string // Part-of-speech tag prefix, e.g. "NN".
}

func (tp TokenPattern) matches(tok Token) bool {
	if tp.Text != "" && tok.Text != tp.Text {
		return false
	}
	if tp.Lower != "" && strings.ToLower(tok.Text) != tp.Lower {
		return false
	}
	if tp.TagPrefix != "" && !strings.HasPrefix(tok.Tag, tp.TagPrefix) {
		return false
	}
	return true
}

type matchRule struct {
	label   string
	pattern []TokenPattern
}

// A Matcher finds labeled token sequences in a document.
type Matcher struct {
	rules []matchRule
}

// NewMatcher creates an empty matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Add registers a token-sequence pattern under a label. Empty patterns are
// ignored.
func (m *Matcher) Add(label string, pattern []TokenPattern) {
	if len(pattern) == 0 {
		return
	}
	m.rules = append(m.rules, matchRule{label: label, pattern: pattern})
}

// Match runs the matcher over the document's tokens and returns every
// matching span with its label and offset in the cleaned text.
func (d *Doc) Match(m *Matcher) []Match {
	if m == nil || len(m.rules) == 0 {
		return nil
	}

	tokens := d.Tokens()
	clean := d.Clean()

	var matches []Match
	for _, rule := range m.rules {
		for start := 0; start+len(rule.pattern) <= len(tokens); start++ {
			if !ruleMatchesAt(rule, tokens, start) {
				continue
			}
			first := tokens[start]
			last := tokens[start+len(rule.pattern)-1]
			end := last.Offset + len(last.Text)
			if end > len(clean) {
				end = len(clean)
			}
			matches = append(matches, Match{
				Text:   clean[first.Offset:end],
				Label:  rule.label,
				Offset: first.Offset,
			})
		}
	}
	return matches
}

func ruleMatchesAt(rule matchRule, tokens []Token, start int) bool {
	for i, tp := range rule.pattern {
		if !tp.matches(tokens[start+i]) {
			return false
		}
	}
	return true
}
