package textpipe

import (
	"errors"
	"fmt"

	fasttext "github.com/ekzhu/go-fasttext"
	"gonum.org/v1/gonum/floats"
)

// An Embedder maps words to embedding vectors. Embedding returns
// ErrNoEmbedding for out-of-vocabulary words; every returned vector has
// length Dim.
type Embedder interface {
	Embedding(word string) ([]float64, error)
	Dim() int
}

// Vector aggregation methods.
const (
	AggregationMean     = "mean"
	AggregationSum      = "sum"
	AggregationVariance = "var"
)

// VectorAggregation controls how token vectors are combined into a document
// vector.
type VectorAggregation struct {
	Aggregation string // One of AggregationMean, AggregationSum, AggregationVariance.
	Normalize   bool   // Divide each vector by its L2 norm before aggregating.
	ExcludeOOV  bool   // Drop out-of-vocabulary tokens instead of using zero vectors.
}

// WordVectors returns the embedding of every distinct token in the document.
// Out-of-vocabulary tokens map to a zero vector with IsOOV set. It fails
// with ErrMissingModel when the Doc has no embedder.
func (d *Doc) WordVectors() (map[string]WordVector, error) {
	if d.wordVecs != nil {
		return d.wordVecs, nil
	}
	if d.embedder == nil {
		return nil, missingModelError("embedder", d.Language(), "")
	}

	vectors := make(map[string]WordVector)
	for _, tok := range d.Tokens() {
		if _, ok := vectors[tok.Text]; ok {
			continue
		}
		vec, oov, err := d.embed(tok.Text)
		if err != nil {
			return nil, err
		}
		vectors[tok.Text] = WordVector{
			HasVector:  !oov,
			VectorNorm: floats.Norm(vec, 2),
			IsOOV:      oov,
			Vector:     vec,
		}
	}
	d.wordVecs = vectors
	return vectors, nil
}

// DocVector returns a document embedding: the mean of the token vectors.
func (d *Doc) DocVector() ([]float64, error) {
	return d.AggregateVectors(VectorAggregation{Aggregation: AggregationMean})
}

// AggregateVectors combines the token vectors of the document according to
// the given aggregation. When every token is excluded the zero vector is
// returned.
func (d *Doc) AggregateVectors(agg VectorAggregation) ([]float64, error) {
	switch agg.Aggregation {
	case AggregationMean, AggregationSum, AggregationVariance:
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAggregation, agg.Aggregation)
	}

	if cached, ok := d.docVecs[agg]; ok {
		return cached, nil
	}
	if d.embedder == nil {
		return nil, missingModelError("embedder", d.Language(), "")
	}

	dim := d.embedder.Dim()
	var vectors [][]float64
	for _, tok := range d.Tokens() {
		vec, oov, err := d.embed(tok.Text)
		if err != nil {
			return nil, err
		}
		if oov && agg.ExcludeOOV {
			continue
		}
		if agg.Normalize {
			if norm := floats.Norm(vec, 2); norm > 0 {
				scaled := make([]float64, dim)
				floats.AddScaled(scaled, 1/norm, vec)
				vec = scaled
			}
		}
		vectors = append(vectors, vec)
	}

	result := aggregate(vectors, dim, agg.Aggregation)
	d.docVecs[agg] = result
	return result, nil
}

// embed looks a word up in the embedder, mapping ErrNoEmbedding to a zero
// vector.
func (d *Doc) embed(word string) (vec []float64, oov bool, err error) {
	vec, err = d.embedder.Embedding(word)
	if errors.Is(err, ErrNoEmbedding) {
		return make([]float64, d.embedder.Dim()), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("embedding %q: %w", word, err)
	}
	return vec, false, nil
}

func aggregate(vectors [][]float64, dim int, method string) []float64 {
	result := make([]float64, dim)
	if len(vectors) == 0 {
		return result
	}

	switch method {
	case AggregationSum:
		for _, vec := range vectors {
			floats.Add(result, vec)
		}
	case AggregationMean:
		for _, vec := range vectors {
			floats.Add(result, vec)
		}
		floats.Scale(1/float64(len(vectors)), result)
	case AggregationVariance:
		// Population variance: E[x^2] - E[x]^2, componentwise.
		mean := make([]float64, dim)
		meanSq := make([]float64, dim)
		for _, vec := range vectors {
			floats.Add(mean, vec)
			sq := make([]float64, dim)
			floats.MulTo(sq, vec, vec)
			floats.Add(meanSq, sq)
		}
		floats.Scale(1/float64(len(vectors)), mean)
		floats.Scale(1/float64(len(vectors)), meanSq)
		floats.MulTo(result, mean, mean)
		floats.SubTo(result, meanSq, result)
	}
	return result
}

// FastTextEmbedder reads pre-trained fastText embeddings from the sqlite
// store built by the go-fasttext package.
type FastTextEmbedder struct {
	ft *fasttext.FastText
}

// NewFastTextEmbedder opens a fastText embedding database.
func NewFastTextEmbedder(dbPath string) *FastTextEmbedder {
	return &FastTextEmbedder{ft: fasttext.NewFastText(dbPath)}
}

// Embedding returns the fastText vector for word, or ErrNoEmbedding when the
// word is not in the database.
func (e *FastTextEmbedder) Embedding(word string) ([]float64, error) {
	emb, err := e.ft.GetEmb(word)
	if err != nil {
		if errors.Is(err, fasttext.ErrNoEmbFound) {
			return nil, fmt.Errorf("%w: %q", ErrNoEmbedding, word)
		}
		return nil, fmt.Errorf("reading embedding: %w", err)
	}
	vec := make([]float64, len(emb))
	for i, v := range emb {
		vec[i] = float64(v)
	}
	return vec, nil
}

// Dim returns the fastText embedding dimension.
func (e *FastTextEmbedder) Dim() int {
	return fasttext.Dim
}

// Close releases the underlying database handle.
func (e *FastTextEmbedder) Close() error {
	return e.ft.Close()
}
