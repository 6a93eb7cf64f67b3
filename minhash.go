package textpipe

import (
	"fmt"
	"hash/fnv"

	minhash "github.com/dgryski/go-minhash"
	"github.com/spaolacci/murmur3"
)

// DefaultMinhashPermutations is the signature width used by Minhash and
// Similarity.
const DefaultMinhashPermutations = 128

// Minhash returns a MinHash signature of the document's tokens: a cheap way
// to compare documents for similarity. Equal documents produce equal
// signatures.
func (d *Doc) Minhash() []uint64 {
	return d.MinhashWith(DefaultMinhashPermutations)
}

// MinhashWith returns a MinHash signature with the given number of
// permutations.
func (d *Doc) MinhashWith(permutations int) []uint64 {
	if cached, ok := d.minhashes[permutations]; ok {
		return cached
	}

	mw := minhash.NewMinWise(murmur3.Sum64, fnvSum64, permutations)
	for _, tok := range d.Tokens() {
		mw.Push([]byte(tok.Text))
	}
	signature := mw.Signature()
	d.minhashes[permutations] = signature
	return signature
}

// Similarity computes the MinHash Jaccard similarity of two documents.
func (d *Doc) Similarity(other *Doc) (float64, error) {
	return d.SimilarityBy(other, "jaccard", "minhash")
}

// SimilarityBy computes similarity for two documents using the given metric
// and hash method. Only MinHash Jaccard similarity is implemented.
func (d *Doc) SimilarityBy(other *Doc, metric, hashMethod string) (float64, error) {
	if metric != "jaccard" || hashMethod != "minhash" {
		return 0, fmt.Errorf("%w: %s/%s", ErrUnknownSimilarity, metric, hashMethod)
	}
	a := minhash.NewMinWiseFromSignatures(murmur3.Sum64, fnvSum64, d.Minhash())
	b := minhash.NewMinWiseFromSignatures(murmur3.Sum64, fnvSum64, other.Minhash())
	return a.Similarity(b), nil
}

func fnvSum64(b []byte) uint64 {
	h := fnv.New64()
	h.Write(b)
	return h.Sum64()
}
