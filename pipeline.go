package textpipe

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// An Analyzer produces tokens, sentences and entities for a piece of cleaned
// text. Implementations wrap an external NLP pipeline; the library never
// parses text itself.
type Analyzer interface {
	Analyze(text string) (*Annotation, error)
}

// A Pipeline is a registry of analyzers keyed by language and model name.
// The empty model name selects the default analyzer for a language, which is
// created on first use. Custom models must be registered explicitly;
// requesting an unregistered one yields ErrMissingModel.
//
// Unlike Doc, a Pipeline may be shared between goroutines.
type Pipeline struct {
	mu        sync.RWMutex
	analyzers map[string]map[string]Analyzer
	logger    *zap.Logger
}

// A PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets the logger used for analyzer selection events.
func WithPipelineLogger(logger *zap.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates an empty analyzer registry.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		analyzers: make(map[string]map[string]Analyzer),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register adds a custom analyzer for a language under the given model name.
// Registering under the empty name replaces the default analyzer for that
// language.
func (p *Pipeline) Register(lang, name string, analyzer Analyzer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.analyzers[lang] == nil {
		p.analyzers[lang] = make(map[string]Analyzer)
	}
	p.analyzers[lang][name] = analyzer
}

// analyzer resolves the analyzer for a language and model name, creating the
// language default on first use.
func (p *Pipeline) analyzer(lang, name string) (Analyzer, error) {
	p.mu.RLock()
	a := p.analyzers[lang][name]
	p.mu.RUnlock()
	if a != nil {
		return a, nil
	}

	if name != "" {
		return nil, missingModelError("model", lang, name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if a = p.analyzers[lang][name]; a != nil {
		return a, nil
	}

	a, err := defaultAnalyzer(lang)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("default analyzer loaded", zap.String("language", lang))
	if p.analyzers[lang] == nil {
		p.analyzers[lang] = make(map[string]Analyzer)
	}
	p.analyzers[lang][name] = a
	return a, nil
}

// defaultAnalyzer builds the stock analyzer for a language: the full prose
// pipeline for English, punkt segmentation with a unicode word tokenizer for
// everything else.
func defaultAnalyzer(lang string) (Analyzer, error) {
	if lang == "en" {
		return proseAnalyzer{}, nil
	}
	return newBasicAnalyzer()
}

var (
	pipelineOnce   sync.Once
	sharedPipeline *Pipeline
)

// defaultSharedPipeline returns the process-wide pipeline used by Docs
// created without WithPipeline. Analyzers loaded into it are reused across
// documents.
func defaultSharedPipeline() *Pipeline {
	pipelineOnce.Do(func() {
		sharedPipeline = NewPipeline()
	})
	return sharedPipeline
}

// proseAnalyzer delegates to the jdkato/prose pipeline: tokenization, Penn
// Treebank tagging, sentence segmentation and named-entity extraction.
type proseAnalyzer struct{}

func (proseAnalyzer) Analyze(text string) (*Annotation, error) {
	if strings.TrimSpace(text) == "" {
		return &Annotation{}, nil
	}

	pdoc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("analyzing text: %w", err)
	}

	ann := &Annotation{}
	cursor := 0
	for _, tok := range pdoc.Tokens() {
		offset, next := alignSpan(text, tok.Text, cursor)
		ann.Tokens = append(ann.Tokens, Token{Text: tok.Text, Tag: tok.Tag, Offset: offset})
		cursor = next
	}

	cursor = 0
	for _, sent := range pdoc.Sentences() {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		offset, next := alignSpan(text, trimmed, cursor)
		ann.Sentences = append(ann.Sentences, Sentence{Text: trimmed, Offset: offset})
		cursor = next
	}

	for _, ent := range pdoc.Entities() {
		ann.Entities = append(ann.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return ann, nil
}

// basicAnalyzer is the fallback for languages without a full pipeline: punkt
// sentence segmentation plus a unicode word tokenizer. It produces no POS
// tags and no entities.
type basicAnalyzer struct {
	segmenter *sentences.DefaultSentenceTokenizer
}

func newBasicAnalyzer() (*basicAnalyzer, error) {
	segmenter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}
	return &basicAnalyzer{segmenter: segmenter}, nil
}

func (a *basicAnalyzer) Analyze(text string) (*Annotation, error) {
	if strings.TrimSpace(text) == "" {
		return &Annotation{}, nil
	}

	ann := &Annotation{Tokens: tokenizeWords(text)}

	cursor := 0
	for _, sent := range a.segmenter.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		offset, next := alignSpan(text, trimmed, cursor)
		ann.Sentences = append(ann.Sentences, Sentence{Text: trimmed, Offset: offset})
		cursor = next
	}
	return ann, nil
}

// tokenizeWords splits text into word and punctuation tokens with offsets.
// Apostrophes and hyphens inside a word do not split it.
func tokenizeWords(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	byteOff := 0
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			byteOff += len(string(r))
			i++
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			start := i
			startByte := byteOff
			for i < len(runes) && isWordRune(runes, i) {
				byteOff += len(string(runes[i]))
				i++
			}
			tokens = append(tokens, Token{Text: string(runes[start:i]), Offset: startByte})
		default:
			tokens = append(tokens, Token{Text: string(r), Offset: byteOff})
			byteOff += len(string(r))
			i++
		}
	}
	return tokens
}

// isWordRune reports whether the rune at i continues a word token.
func isWordRune(runes []rune, i int) bool {
	r := runes[i]
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	// Word-internal apostrophe or hyphen: "don't", "well-known".
	if r == '\'' || r == '-' {
		return i > 0 && i+1 < len(runes) &&
			unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1])
	}
	return false
}

// alignSpan finds the byte offset of span in text at or after cursor. The
// analyzer may have normalized the span away from the source text; in that
// case the cursor position is reported and the cursor does not advance past
// unseen content.
func alignSpan(text, span string, cursor int) (offset, next int) {
	if cursor > len(text) {
		cursor = len(text)
	}
	if idx := strings.Index(text[cursor:], span); idx >= 0 {
		offset = cursor + idx
		return offset, offset + len(span)
	}
	return cursor, cursor
}
