package match

import (
	"math"
	"testing"
)

func TestFitTransformVectorsAreL2Normalized(t *testing.T) {
	docs := []string{
		"python developer building backend services",
		"react frontend developer",
	}
	vectors := Vectorizer{}.FitTransform(docs)
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	for i, vec := range vectors {
		var sum float64
		for _, v := range vec {
			sum += v * v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("vector %d norm^2 = %f, want 1", i, sum)
		}
	}
}

func TestFitTransformIdenticalDocsAreIdenticalVectors(t *testing.T) {
	docs := []string{
		"golang microservices kubernetes",
		"golang microservices kubernetes",
	}
	vectors := Vectorizer{}.FitTransform(docs)
	if got := CosineSimilarity(vectors[0], vectors[1]); math.Abs(got-1) > 1e-9 {
		t.Fatalf("similarity of identical docs = %f, want 1", got)
	}
}

func TestFitTransformDisjointDocsAreOrthogonal(t *testing.T) {
	docs := []string{
		"python django flask",
		"carpentry woodworking joinery",
	}
	vectors := Vectorizer{}.FitTransform(docs)
	if got := CosineSimilarity(vectors[0], vectors[1]); got != 0 {
		t.Fatalf("similarity of disjoint docs = %f, want 0", got)
	}
}

func TestFitTransformIgnoresStopWordsAndShortTerms(t *testing.T) {
	docs := []string{"the a an of and or I x y"}
	vectors := Vectorizer{}.FitTransform(docs)
	for _, v := range vectors[0] {
		if v != 0 {
			t.Fatalf("expected empty vector for stop-word-only doc")
		}
	}
}

func TestFitTransformCapsVocabulary(t *testing.T) {
	docs := []string{
		"alpha alpha alpha beta beta gamma delta",
	}
	vectors := Vectorizer{MaxFeatures: 2}.FitTransform(docs)
	nonZero := 0
	for _, v := range vectors[0] {
		if v != 0 {
			nonZero++
		}
	}
	if len(vectors[0]) != 2 {
		t.Fatalf("vocabulary size = %d, want 2", len(vectors[0]))
	}
	if nonZero != 2 {
		t.Fatalf("expected the 2 most frequent terms kept, got %d non-zero", nonZero)
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	if got := CosineSimilarity([]float64{0, 0}, []float64{1, 0}); got != 0 {
		t.Fatalf("expected 0 for zero vector, got %f", got)
	}
}
