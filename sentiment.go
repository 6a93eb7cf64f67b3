package textpipe

import (
	"strings"
)

// negationWindow is how many preceding tokens are checked for a negation.
const negationWindow = 3

// Sentiment returns a polarity score (-1 to 1) and a subjectivity score
// (0 to 1) for the document, based on the sentiment lexicon of its language.
// Languages without a lexicon yield ErrMissingModel.
func (d *Doc) Sentiment() (Sentiment, error) {
	if d.sentiment != nil {
		return *d.sentiment, nil
	}

	lex, ok := lexiconFor(d.Language())
	if !ok {
		return Sentiment{}, missingModelError("sentiment lexicon", d.Language(), "")
	}

	score := scoreSentiment(d.Tokens(), lex)
	d.sentiment = &score
	return score, nil
}

// scoreSentiment averages the lexicon scores of the matched tokens. A
// negation in the preceding window flips and dampens a word's polarity;
// intensifiers and diminishers scale it.
func scoreSentiment(tokens []Token, lex *sentimentLexicon) Sentiment {
	var (
		polarity     float64
		subjectivity float64
		matched      int
	)

	for i, tok := range tokens {
		entry, ok := lex.lookup(tok.Text)
		if !ok {
			continue
		}

		adjusted := applyModifiers(entry.polarity, tokens, i, lex)
		if negatedAt(tokens, i, lex) {
			// Negation reverses but weakens.
			adjusted = -adjusted * 0.5
		}

		polarity += adjusted
		subjectivity += entry.subjectivity
		matched++
	}

	if matched == 0 {
		return Sentiment{}
	}
	return Sentiment{
		Polarity:     clamp(polarity/float64(matched), -1, 1),
		Subjectivity: clamp(subjectivity/float64(matched), 0, 1),
	}
}

// negatedAt reports whether a negation precedes position i within the
// negation window, with no clause boundary in between.
func negatedAt(tokens []Token, i int, lex *sentimentLexicon) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		lower := strings.ToLower(tokens[j].Text)
		if !lex.negations[lower] && !strings.HasSuffix(lower, "n't") {
			continue
		}
		if clauseBoundaryBetween(tokens, j+1, i) {
			continue
		}
		return true
	}
	return false
}

func clauseBoundaryBetween(tokens []Token, from, to int) bool {
	for k := from; k < to; k++ {
		switch tokens[k].Text {
		case ",", ";", ":", ".", "!", "?":
			return true
		}
	}
	return false
}

// applyModifiers scales a sentiment by the intensifier or diminisher found
// in the two preceding tokens, if any.
func applyModifiers(base float64, tokens []Token, i int, lex *sentimentLexicon) float64 {
	if base == 0 {
		return base
	}
	start := i - 2
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if strength, ok := lex.modifiers[strings.ToLower(tokens[j].Text)]; ok {
			return base * (1 + strength)
		}
	}
	return base
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
