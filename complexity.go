package textpipe

import (
	"strings"
	"unicode"
)

// textStats holds the counts behind the readability score.
type textStats struct {
	words     int
	sentences int
	syllables int
}

// Complexity determines the complexity of the text using the Flesch reading
// ease test, ranging from 0.0 to 100.0 with 0.0 being the most difficult to
// read. Text without syllables scores 100.
func (d *Doc) Complexity() float64 {
	stats := d.textStats()
	if stats.syllables == 0 {
		return 100
	}

	words := float64(stats.words)
	sentences := float64(stats.sentences)
	if sentences == 0 {
		sentences = 1
	}

	score := 206.835 - 1.015*(words/sentences) - 84.6*(float64(stats.syllables)/words)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (d *Doc) textStats() *textStats {
	if d.stats != nil {
		return d.stats
	}

	stats := &textStats{sentences: d.SentenceCount()}
	for _, tok := range d.Tokens() {
		if !hasLetter(tok.Text) {
			continue
		}
		stats.words++
		stats.syllables += countSyllables(tok.Text)
	}
	d.stats = stats
	return stats
}

// countSyllables estimates syllables by counting vowel groups, discounting a
// trailing silent "e". Every word counts at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'á', 'é', 'í', 'ó', 'ú', 'à', 'è', 'ù', 'â', 'ê', 'î', 'ô', 'û', 'ä', 'ë', 'ï', 'ö', 'ü':
		return true
	}
	return false
}
