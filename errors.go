package textpipe

import (
	"errors"
	"fmt"
)

// ErrMissingModel is returned when a feature needs a per-language resource
// (analyzer, sentiment lexicon, lemma dictionary, embedder) that has not been
// registered or is not available for the document's language.
var ErrMissingModel = errors.New("textpipe: model not available")

// ErrUnknownRanker is returned by ExtractKeyterms for an unrecognized ranker.
var ErrUnknownRanker = errors.New("textpipe: unknown keyterm ranker")

// ErrUnknownAggregation is returned by AggregateVectors for an unrecognized
// aggregation method.
var ErrUnknownAggregation = errors.New("textpipe: unknown vector aggregation")

// ErrUnknownSimilarity is returned by SimilarityBy for a metric/hash-method
// combination that is not implemented.
var ErrUnknownSimilarity = errors.New("textpipe: unknown similarity method")

// ErrNoEmbedding is returned by an Embedder for out-of-vocabulary words.
var ErrNoEmbedding = errors.New("textpipe: no embedding for word")

// missingModelError builds an ErrMissingModel with context. Callers test it
// with errors.Is(err, ErrMissingModel).
func missingModelError(kind, lang, name string) error {
	if name == "" {
		return fmt.Errorf("%w: no %s for language %q", ErrMissingModel, kind, lang)
	}
	return fmt.Errorf("%w: %s %q not registered for language %q", ErrMissingModel, kind, name, lang)
}
