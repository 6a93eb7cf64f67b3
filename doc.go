// Package textpipe cleans text, makes it readable and derives metadata from
// it. A Doc wraps a raw string and computes each feature lazily, caching the
// result on the instance; the linguistic heavy lifting is delegated to
// external libraries.
package textpipe

import (
	"sort"

	"go.uber.org/zap"
)

// A DocOption represents a setting that changes how a Doc is processed.
//
// For example, it might pin the document language:
//
//	doc := textpipe.NewDoc("...", textpipe.WithLanguage("nl"))
type DocOption func(*Doc)

// WithLanguage sets the document language, skipping detection. The language
// is treated as reliable.
func WithLanguage(code string) DocOption {
	return func(d *Doc) {
		d.language = code
		d.languageKnown = true
		d.languageReliable = true
	}
}

// WithHintLanguage sets the language to fall back to when detection is
// unreliable. The default hint is "en".
func WithHintLanguage(code string) DocOption {
	return func(d *Doc) {
		d.hintLanguage = code
	}
}

// WithPipeline sets the analyzer registry used by the document. Docs created
// without this option share a process-wide pipeline, so a default analyzer is
// loaded once per language rather than once per document.
func WithPipeline(p *Pipeline) DocOption {
	return func(d *Doc) {
		d.pipeline = p
	}
}

// WithEmbedder sets the word-embedding source used by WordVectors, DocVector
// and AggregateVectors.
func WithEmbedder(e Embedder) DocOption {
	return func(d *Doc) {
		d.embedder = e
	}
}

// WithLogger sets the logger for processing events. The default discards
// everything.
func WithLogger(logger *zap.Logger) DocOption {
	return func(d *Doc) {
		d.logger = logger
	}
}

type annotationKey struct {
	lang  string
	model string
}

// A Doc wraps raw text and lazily derives cleaned text, the document
// language and linguistic features from it. Each feature is computed at most
// once per argument set and cached on the instance; repeated access returns
// the identical result.
//
// A Doc is not safe for concurrent use.
type Doc struct {
	raw          string
	hintLanguage string
	pipeline     *Pipeline
	embedder     Embedder
	logger       *zap.Logger

	language         string
	languageKnown    bool
	languageReliable bool

	cleaned     map[CleanOptions]string
	annotations map[annotationKey]*Annotation
	keyterms    map[keytermKey][]Keyterm
	keywords    map[int][]Keyword
	minhashes   map[int][]uint64
	wordVecs    map[string]WordVector
	docVecs     map[VectorAggregation][]float64
	sentiment   *Sentiment
	lemmas      []Lemma
	emojis      []Emoji
	stats       *textStats
}

// NewDoc wraps raw text for lazy processing.
func NewDoc(raw string, opts ...DocOption) *Doc {
	d := &Doc{
		raw:          raw,
		hintLanguage: "en",
		cleaned:      make(map[CleanOptions]string),
		annotations:  make(map[annotationKey]*Annotation),
		keyterms:     make(map[keytermKey][]Keyterm),
		keywords:     make(map[int][]Keyword),
		minhashes:    make(map[int][]uint64),
		docVecs:      make(map[VectorAggregation][]float64),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.pipeline == nil {
		d.pipeline = defaultSharedPipeline()
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	return d
}

// Raw returns the incoming, unedited text.
func (d *Doc) Raw() string {
	return d.raw
}

// Clean returns the cleaned text with sensible defaults: HTML stripped,
// punctuation normalized, whitespace collapsed.
func (d *Doc) Clean() string {
	return d.CleanWith(DefaultCleanOptions())
}

// CleanWith returns the text cleaned with the given options. Results are
// cached per option set.
func (d *Doc) CleanWith(opts CleanOptions) string {
	if cached, ok := d.cleaned[opts]; ok {
		return cached
	}
	cleaned := cleanText(d.raw, opts)
	d.cleaned[opts] = cleaned
	return cleaned
}

// Language returns the provided or detected ISO 639-1 language code of the
// text.
func (d *Doc) Language() string {
	d.ensureLanguage()
	return d.language
}

// IsReliableLanguage reports whether the language was specified up front or
// detected with high confidence.
func (d *Doc) IsReliableLanguage() bool {
	d.ensureLanguage()
	return d.languageReliable
}

// DetectLanguage detects the language of the cleaned text with the given
// hint, without touching the document's own language state.
func (d *Doc) DetectLanguage(hint string) (string, bool) {
	return detectLanguage(d.Clean(), hint, d.logger)
}

func (d *Doc) ensureLanguage() {
	if d.languageKnown {
		return
	}
	d.language, d.languageReliable = detectLanguage(d.Clean(), d.hintLanguage, d.logger)
	d.languageKnown = true
}

// analysisLanguage is the language analyzers run under: the document language
// when it is reliable, otherwise the hint language.
func (d *Doc) analysisLanguage() string {
	d.ensureLanguage()
	if d.languageReliable || d.hintLanguage == "" {
		return d.language
	}
	return d.hintLanguage
}

// annotation resolves and caches the analyzer output for the given model
// name ("" means the language default).
func (d *Doc) annotation(model string) (*Annotation, error) {
	lang := d.analysisLanguage()
	key := annotationKey{lang: lang, model: model}
	if cached, ok := d.annotations[key]; ok {
		return cached, nil
	}

	analyzer, err := d.pipeline.analyzer(lang, model)
	if err != nil {
		return nil, err
	}
	ann, err := analyzer.Analyze(d.Clean())
	if err != nil {
		return nil, err
	}
	d.annotations[key] = ann
	return ann, nil
}

// defaultAnnotation is annotation("") with failures reduced to an empty
// annotation. The default analyzers exist for every language, so a failure
// here means the external pipeline rejected the text; it is logged and the
// document reads as empty.
func (d *Doc) defaultAnnotation() *Annotation {
	ann, err := d.annotation("")
	if err != nil {
		d.logger.Warn("analyzing document failed", zap.Error(err))
		return &Annotation{}
	}
	return ann
}

// Tokens returns the tokens of the cleaned text with byte offsets.
func (d *Doc) Tokens() []Token {
	return d.defaultAnnotation().Tokens
}

// TokenCount returns the number of tokens in the cleaned text.
func (d *Doc) TokenCount() int {
	return len(d.Tokens())
}

// WordCounts returns the number of occurrences of each token surface form.
func (d *Doc) WordCounts() map[string]int {
	counts := make(map[string]int)
	for _, tok := range d.Tokens() {
		counts[tok.Text]++
	}
	return counts
}

// Sentences returns the sentences of the cleaned text with byte offsets.
func (d *Doc) Sentences() []Sentence {
	return d.defaultAnnotation().Sentences
}

// SentenceCount returns the number of sentences in the cleaned text.
func (d *Doc) SentenceCount() int {
	return len(d.Sentences())
}

// Entities returns the named entities found by the default analyzer,
// deduplicated and in deterministic order.
func (d *Doc) Entities() []Entity {
	ents, err := d.FindEntities("")
	if err != nil {
		d.logger.Warn("extracting entities failed", zap.Error(err))
		return nil
	}
	return ents
}

// FindEntities returns the named entities found by the named custom model,
// deduplicated and in deterministic order. The empty name selects the
// language default.
func (d *Doc) FindEntities(model string) ([]Entity, error) {
	ann, err := d.annotation(model)
	if err != nil {
		return nil, err
	}
	return dedupeEntities(ann.Entities), nil
}

// dedupeEntities removes duplicate (text, label) pairs and sorts the result.
func dedupeEntities(ents []Entity) []Entity {
	seen := make(map[Entity]struct{}, len(ents))
	var out []Entity
	for _, ent := range ents {
		if _, ok := seen[ent]; ok {
			continue
		}
		seen[ent] = struct{}{}
		out = append(out, ent)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Text != out[j].Text {
			return out[i].Text < out[j].Text
		}
		return out[i].Label < out[j].Label
	})
	return out
}
