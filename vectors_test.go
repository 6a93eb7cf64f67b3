package textpipe

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
)

// fixedEmbedder serves a small in-memory vocabulary for tests.
type fixedEmbedder struct {
	vectors map[string][]float64
	dim     int
}

func (f fixedEmbedder) Embedding(word string) ([]float64, error) {
	vec, ok := f.vectors[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoEmbedding, word)
	}
	return vec, nil
}

func (f fixedEmbedder) Dim() int {
	return f.dim
}

func testEmbedder() fixedEmbedder {
	return fixedEmbedder{
		dim: 3,
		vectors: map[string][]float64{
			"a": {1, 0, 0},
			"b": {0, 1, 0},
			"c": {0, 0, 2},
		},
	}
}

func TestWordVectors(t *testing.T) {
	doc := NewDoc("a b zzz", WithLanguage("en"), WithEmbedder(testEmbedder()))

	vectors, err := doc.WordVectors()
	if err != nil {
		t.Fatalf("WordVectors() error: %v", err)
	}

	av, ok := vectors["a"]
	if !ok {
		t.Fatal(`missing vector for "a"`)
	}
	if av.IsOOV || !av.HasVector {
		t.Errorf(`vector for "a" flagged OOV: %+v`, av)
	}
	if av.VectorNorm != 1 {
		t.Errorf("norm of a = %f, want 1", av.VectorNorm)
	}

	oov, ok := vectors["zzz"]
	if !ok {
		t.Fatal(`missing entry for OOV word "zzz"`)
	}
	if !oov.IsOOV || oov.HasVector || oov.VectorNorm != 0 {
		t.Errorf("OOV entry = %+v, want zero vector with IsOOV", oov)
	}
	if len(oov.Vector) != 3 {
		t.Errorf("OOV vector length = %d, want 3", len(oov.Vector))
	}
}

func TestWordVectorsWithoutEmbedder(t *testing.T) {
	doc := NewDoc("a b", WithLanguage("en"))
	if _, err := doc.WordVectors(); !errors.Is(err, ErrMissingModel) {
		t.Errorf("WordVectors() error = %v, want ErrMissingModel", err)
	}
}

func TestDocVector(t *testing.T) {
	doc := NewDoc("a b", WithLanguage("en"), WithEmbedder(testEmbedder()))

	vec, err := doc.DocVector()
	if err != nil {
		t.Fatalf("DocVector() error: %v", err)
	}
	if want := []float64{0.5, 0.5, 0}; !reflect.DeepEqual(vec, want) {
		t.Errorf("DocVector() = %v, want %v", vec, want)
	}
}

func TestAggregateVectors(t *testing.T) {
	embedder := testEmbedder()

	tests := []struct {
		name string
		text string
		agg  VectorAggregation
		want []float64
	}{
		{
			name: "sum",
			text: "a b",
			agg:  VectorAggregation{Aggregation: AggregationSum},
			want: []float64{1, 1, 0},
		},
		{
			name: "variance",
			text: "a b",
			agg:  VectorAggregation{Aggregation: AggregationVariance},
			want: []float64{0.25, 0.25, 0},
		},
		{
			name: "normalize scales long vectors",
			text: "c",
			agg:  VectorAggregation{Aggregation: AggregationMean, Normalize: true},
			want: []float64{0, 0, 1},
		},
		{
			name: "oov included as zero vector",
			text: "a b zzz",
			agg:  VectorAggregation{Aggregation: AggregationSum},
			want: []float64{1, 1, 0},
		},
		{
			name: "oov excluded from mean",
			text: "a b zzz",
			agg:  VectorAggregation{Aggregation: AggregationMean, ExcludeOOV: true},
			want: []float64{0.5, 0.5, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDoc(tt.text, WithLanguage("en"), WithEmbedder(embedder))
			got, err := doc.AggregateVectors(tt.agg)
			if err != nil {
				t.Fatalf("AggregateVectors() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("vector length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Fatalf("AggregateVectors() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAggregateVectorsAllExcluded(t *testing.T) {
	doc := NewDoc("zzz yyy", WithLanguage("en"), WithEmbedder(testEmbedder()))
	vec, err := doc.AggregateVectors(VectorAggregation{
		Aggregation: AggregationMean,
		ExcludeOOV:  true,
	})
	if err != nil {
		t.Fatalf("AggregateVectors() error: %v", err)
	}
	if want := []float64{0, 0, 0}; !reflect.DeepEqual(vec, want) {
		t.Errorf("AggregateVectors() = %v, want zero vector", vec)
	}
}

func TestAggregateVectorsUnknownMethod(t *testing.T) {
	doc := NewDoc("a b", WithLanguage("en"), WithEmbedder(testEmbedder()))
	if _, err := doc.AggregateVectors(VectorAggregation{Aggregation: "median"}); !errors.Is(err, ErrUnknownAggregation) {
		t.Errorf("AggregateVectors(median) error = %v, want ErrUnknownAggregation", err)
	}
}

func TestDocVectorDistinguishesDocuments(t *testing.T) {
	embedder := testEmbedder()
	doc1 := NewDoc("a b", WithLanguage("en"), WithEmbedder(embedder))
	doc2 := NewDoc("a a b", WithLanguage("en"), WithEmbedder(embedder))

	vec1, err := doc1.DocVector()
	if err != nil {
		t.Fatalf("DocVector() error: %v", err)
	}
	vec2, err := doc2.DocVector()
	if err != nil {
		t.Fatalf("DocVector() error: %v", err)
	}
	if reflect.DeepEqual(vec1, vec2) {
		t.Error("different documents produced identical doc vectors")
	}
}
