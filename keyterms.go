package textpipe

import (
	"fmt"
	"sort"
	"strings"

	textrank "github.com/DavidBelicza/TextRank/v2"
	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball"
)

// Available keyterm rankers.
const (
	RankerTextRank   = "textrank"   // Single words, default TextRank algorithm.
	RankerChainRank  = "chainrank"  // Single words, chain algorithm.
	RankerPhraseRank = "phraserank" // Co-occurring word pairs.
)

// DefaultKeytermCount is the number of terms Keyterms returns.
const DefaultKeytermCount = 10

type keytermKey struct {
	ranker string
	n      int
}

// Keyterms returns the top TextRank keyterms for the document.
func (d *Doc) Keyterms() ([]Keyterm, error) {
	return d.ExtractKeyterms(RankerTextRank, DefaultKeytermCount)
}

// ExtractKeyterms extracts and ranks key terms in the document by proxying
// to the TextRank library. Depending on the ranker, terms can consist of
// multiple words. An empty document yields no terms; a negative n yields
// every term.
func (d *Doc) ExtractKeyterms(ranker string, n int) ([]Keyterm, error) {
	switch ranker {
	case RankerTextRank, RankerChainRank, RankerPhraseRank:
	default:
		return nil, fmt.Errorf("%w %q; use one of %q, %q, %q", ErrUnknownRanker,
			ranker, RankerTextRank, RankerChainRank, RankerPhraseRank)
	}

	key := keytermKey{ranker: ranker, n: n}
	if cached, ok := d.keyterms[key]; ok {
		return cached, nil
	}

	var terms []Keyterm
	if d.TokenCount() > 0 {
		terms = rankKeyterms(d.Clean(), ranker, n)
	}
	d.keyterms[key] = terms
	return terms, nil
}

func rankKeyterms(text, ranker string, n int) []Keyterm {
	tr := textrank.NewTextRank()
	tr.Populate(text, textrank.NewDefaultLanguage(), textrank.NewDefaultRule())

	switch ranker {
	case RankerChainRank:
		tr.Ranking(textrank.NewChainAlgorithm())
	default:
		tr.Ranking(textrank.NewDefaultAlgorithm())
	}

	var terms []Keyterm
	if ranker == RankerPhraseRank {
		for _, phrase := range textrank.FindPhrases(tr) {
			terms = append(terms, Keyterm{
				Text:  phrase.Left + " " + phrase.Right,
				Score: float64(phrase.Weight),
			})
		}
	} else {
		for _, word := range textrank.FindSingleWords(tr) {
			terms = append(terms, Keyterm{Text: word.Word, Score: float64(word.Weight)})
		}
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Score > terms[j].Score
	})
	// A negative n means no limit.
	if n >= 0 && len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// ExtractKeywords returns the top content words of the document by
// frequency. Stop words for the document language are removed and surface
// forms are grouped under their snowball stem where the language has a
// stemmer. A negative n yields every keyword.
func (d *Doc) ExtractKeywords(n int) []Keyword {
	if cached, ok := d.keywords[n]; ok {
		return cached
	}

	lang := d.analysisLanguage()
	stemmerLang := snowballLanguage(lang)

	counts := make(map[string]int)
	surface := make(map[string]string)
	for _, tok := range d.Tokens() {
		if !hasLetter(tok.Text) {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if strings.TrimSpace(stopwords.CleanString(lower, lang, false)) == "" {
			continue
		}

		stem := lower
		if stemmerLang != "" {
			if stemmed, err := snowball.Stem(lower, stemmerLang, true); err == nil && stemmed != "" {
				stem = stemmed
			}
		}
		counts[stem]++
		if _, ok := surface[stem]; !ok {
			surface[stem] = lower
		}
	}

	keywords := make([]Keyword, 0, len(counts))
	for stem, count := range counts {
		keywords = append(keywords, Keyword{Text: surface[stem], Stem: stem, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Text < keywords[j].Text
	})
	if n >= 0 && len(keywords) > n {
		keywords = keywords[:n]
	}

	d.keywords[n] = keywords
	return keywords
}

// snowballLanguage maps an ISO 639-1 code to a snowball stemmer name, or ""
// when the language has no stemmer.
func snowballLanguage(code string) string {
	switch code {
	case "en":
		return "english"
	case "fr":
		return "french"
	case "es":
		return "spanish"
	case "sv":
		return "swedish"
	case "ru":
		return "russian"
	case "no":
		return "norwegian"
	case "hu":
		return "hungarian"
	}
	return ""
}
