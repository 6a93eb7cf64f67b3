package textpipe

// A Token represents an individual token of text such as a word or
// punctuation symbol.
type Token struct {
	Text   string // The token's actual content.
	Tag    string // The token's part-of-speech tag, if the analyzer produces one.
	Offset int    // Byte offset of the token in the cleaned text.
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text   string // The sentence's text.
	Offset int    // Byte offset of the sentence in the cleaned text.
}

// String returns the text content of the sentence.
func (s Sentence) String() string {
	return s.Text
}

// An Entity represents an individual named entity.
type Entity struct {
	Text  string // The entity's actual content.
	Label string // The entity's label, e.g. "PERSON" or "GPE".
}

// An Annotation holds the analyzer output for a piece of text. Offsets refer
// to the analyzed (cleaned) text.
type Annotation struct {
	Tokens    []Token
	Sentences []Sentence
	Entities  []Entity
}

// A Keyterm is a ranked key term. Depending on the ranker, the term may span
// multiple words.
type Keyterm struct {
	Text  string
	Score float64
}

// A Keyword is a frequency-ranked content word.
type Keyword struct {
	Text  string // Representative surface form.
	Stem  string // Stem the surface forms were grouped under.
	Count int
}

// Sentiment holds a polarity score (-1 negative to 1 positive) and a
// subjectivity score (0 objective to 1 subjective).
type Sentiment struct {
	Polarity     float64
	Subjectivity float64
}

// A WordVector describes the embedding of a single word.
type WordVector struct {
	HasVector  bool      // Whether the embedder knows the word.
	VectorNorm float64   // L2 norm of the vector.
	IsOOV      bool      // Out of vocabulary: no embedding found.
	Vector     []float64 // The embedding; zero vector for OOV words.
}

// An Emoji is an emoji occurrence with its CLDR name and a sentiment score
// from the Emoji Sentiment Ranking table (0 when unlisted).
type Emoji struct {
	Character string
	Name      string
	Sentiment float64
}

// A Lemma pairs a token with its dictionary form.
type Lemma struct {
	Text  string // Token surface form.
	Lemma string // Dictionary form.
}

// A Match is a span matched by a Matcher rule.
type Match struct {
	Text   string
	Label  string
	Offset int
}
