package textpipe

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokensWithOffsets(t *testing.T) {
	doc := NewDoc("Test sentence for testing text.", WithLanguage("en"))

	want := []Token{
		{Text: "Test", Offset: 0},
		{Text: "sentence", Offset: 5},
		{Text: "for", Offset: 14},
		{Text: "testing", Offset: 18},
		{Text: "text", Offset: 26},
		{Text: ".", Offset: 30},
	}

	got := doc.Tokens()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, tok := range got {
		if tok.Text != want[i].Text || tok.Offset != want[i].Offset {
			t.Errorf("token %d = %q@%d, want %q@%d",
				i, tok.Text, tok.Offset, want[i].Text, want[i].Offset)
		}
	}
}

func TestSentences(t *testing.T) {
	doc := NewDoc("Test sentence for testing text. And another sentence for testing!",
		WithLanguage("en"))

	sents := doc.Sentences()
	if len(sents) != 2 {
		t.Fatalf("got %d sentences, want 2: %v", len(sents), sents)
	}
	if sents[0].Text != "Test sentence for testing text." || sents[0].Offset != 0 {
		t.Errorf("first sentence = %q@%d", sents[0].Text, sents[0].Offset)
	}
	if sents[1].Offset != 32 {
		t.Errorf("second sentence offset = %d, want 32", sents[1].Offset)
	}
	if doc.SentenceCount() != 2 {
		t.Errorf("SentenceCount() = %d, want 2", doc.SentenceCount())
	}
}

func TestWordCounts(t *testing.T) {
	doc := NewDoc("Test sentence for testing vectorisation of a sentence.",
		WithLanguage("en"))

	want := map[string]int{
		"Test": 1, "sentence": 2, "for": 1, "testing": 1,
		"vectorisation": 1, "of": 1, "a": 1, ".": 1,
	}
	if got := doc.WordCounts(); !reflect.DeepEqual(got, want) {
		t.Errorf("WordCounts() = %v, want %v", got, want)
	}
}

func TestEmptyDocument(t *testing.T) {
	doc := NewDoc("")
	if n := doc.TokenCount(); n != 0 {
		t.Errorf("TokenCount() = %d, want 0", n)
	}
	if n := doc.SentenceCount(); n != 0 {
		t.Errorf("SentenceCount() = %d, want 0", n)
	}
	if lang := doc.Language(); lang != LanguageUnknown {
		t.Errorf("Language() = %q, want %q", lang, LanguageUnknown)
	}
}

func TestProvidedLanguageIsTrusted(t *testing.T) {
	doc := NewDoc("Short", WithLanguage("nl"))
	if got := doc.Language(); got != "nl" {
		t.Errorf("Language() = %q, want nl", got)
	}
	if !doc.IsReliableLanguage() {
		t.Error("IsReliableLanguage() = false for a provided language")
	}
}

func TestLanguageDetection(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog while the sun " +
		"shines brightly over the quiet English countryside."
	doc := NewDoc(text)
	if got := doc.Language(); got != "en" {
		t.Errorf("Language() = %q, want en", got)
	}
}

func TestUnknownLanguageForSymbols(t *testing.T) {
	doc := NewDoc("...")
	lang, reliable := doc.DetectLanguage("nl")
	if lang != LanguageUnknown || reliable {
		t.Errorf("DetectLanguage() = %q, %v, want %q, false",
			lang, reliable, LanguageUnknown)
	}
}

type stubAnalyzer struct {
	ann *Annotation
}

func (s stubAnalyzer) Analyze(string) (*Annotation, error) {
	return s.ann, nil
}

func TestFindEntitiesWithCustomModel(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register("en", "orgs", stubAnalyzer{ann: &Annotation{
		Entities: []Entity{
			{Text: "Google", Label: "ORG"},
			{Text: "Amsterdam", Label: "GPE"},
			{Text: "Google", Label: "ORG"},
		},
	}})

	doc := NewDoc("Sentence for testing Google text",
		WithLanguage("en"), WithPipeline(pipeline))

	got, err := doc.FindEntities("orgs")
	if err != nil {
		t.Fatalf("FindEntities() error: %v", err)
	}
	want := []Entity{
		{Text: "Amsterdam", Label: "GPE"},
		{Text: "Google", Label: "ORG"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindEntities() = %v, want %v", got, want)
	}
}

func TestFindEntitiesMissingModel(t *testing.T) {
	doc := NewDoc("Some text", WithLanguage("en"), WithPipeline(NewPipeline()))
	if _, err := doc.FindEntities("nope"); !errors.Is(err, ErrMissingModel) {
		t.Errorf("FindEntities(nope) error = %v, want ErrMissingModel", err)
	}
}

func TestAnnotationIsCached(t *testing.T) {
	doc := NewDoc("Test sentence for testing text.", WithLanguage("en"))
	first := doc.Tokens()
	second := doc.Tokens()
	if len(first) == 0 {
		t.Fatal("expected tokens")
	}
	if &first[0] != &second[0] {
		t.Error("repeated Tokens() rebuilt the annotation instead of using the cache")
	}
}

func TestBasicAnalyzerForOtherLanguages(t *testing.T) {
	doc := NewDoc("Dit is een leuke zin. En dit is nog een zin.", WithLanguage("nl"))

	tokens := doc.Tokens()
	if len(tokens) != 13 {
		t.Fatalf("got %d tokens, want 13: %v", len(tokens), tokens)
	}
	if tokens[0].Text != "Dit" || tokens[0].Offset != 0 {
		t.Errorf("first token = %q@%d, want Dit@0", tokens[0].Text, tokens[0].Offset)
	}
	if tokens[5].Text != "." {
		t.Errorf("token 5 = %q, want period", tokens[5].Text)
	}
	if doc.SentenceCount() != 2 {
		t.Errorf("SentenceCount() = %d, want 2", doc.SentenceCount())
	}
}
