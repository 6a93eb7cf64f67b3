package textpipe

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/de"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/aaaton/golem/v4/dicts/es"
	"github.com/aaaton/golem/v4/dicts/fr"
	"github.com/aaaton/golem/v4/dicts/it"
)

var (
	lemmatizerMu sync.Mutex
	lemmatizers  = make(map[string]*golem.Lemmatizer)
)

// lemmatizerFor loads the lemma dictionary for an ISO 639-1 language code.
// Dictionaries are cached process-wide; loading one is expensive.
func lemmatizerFor(lang string) (*golem.Lemmatizer, error) {
	lemmatizerMu.Lock()
	defer lemmatizerMu.Unlock()
	if lemmatizer, ok := lemmatizers[lang]; ok {
		return lemmatizer, nil
	}

	var pack golem.LanguagePack
	switch lang {
	case "en":
		pack = en.New()
	case "de":
		pack = de.New()
	case "es":
		pack = es.New()
	case "fr":
		pack = fr.New()
	case "it":
		pack = it.New()
	default:
		return nil, missingModelError("lemma dictionary", lang, "")
	}

	lemmatizer, err := golem.New(pack)
	if err != nil {
		return nil, fmt.Errorf("loading lemma dictionary for %q: %w", lang, err)
	}
	lemmatizers[lang] = lemmatizer
	return lemmatizer, nil
}

// Lemmas returns the dictionary form of every word token in the document.
// Languages without a bundled dictionary yield ErrMissingModel.
func (d *Doc) Lemmas() ([]Lemma, error) {
	if d.lemmas != nil {
		return d.lemmas, nil
	}

	lemmatizer, err := lemmatizerFor(d.analysisLanguage())
	if err != nil {
		return nil, err
	}

	var lemmas []Lemma
	for _, tok := range d.Tokens() {
		if !hasLetter(tok.Text) {
			continue
		}
		lemmas = append(lemmas, Lemma{Text: tok.Text, Lemma: lemmatizer.Lemma(tok.Text)})
	}
	d.lemmas = lemmas
	return lemmas, nil
}
