package match

import (
	"math"
	"regexp"
	"sort"
)

const defaultMaxFeatures = 1000

var termPattern = regexp.MustCompile(`\w\w+`)

// Vectorizer builds a TF-IDF vector space over a document corpus: terms of
// two or more word characters, English stop words removed, vocabulary capped
// at the most frequent MaxFeatures terms, smoothed IDF, L2-normalized rows.
type Vectorizer struct {
	MaxFeatures int
}

// FitTransform fits the vocabulary on docs and returns one normalized
// vector per document.
func (v Vectorizer) FitTransform(docs []string) [][]float64 {
	maxFeatures := v.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}

	tokenized := make([][]string, len(docs))
	totalCount := make(map[string]int)
	for i, doc := range docs {
		for _, term := range termPattern.FindAllString(doc, -1) {
			if _, stop := englishStopWords[term]; stop {
				continue
			}
			tokenized[i] = append(tokenized[i], term)
			totalCount[term]++
		}
	}

	vocab := selectVocabulary(totalCount, maxFeatures)

	docFreq := make([]int, len(vocab))
	counts := make([]map[int]int, len(docs))
	for i, terms := range tokenized {
		counts[i] = make(map[int]int)
		for _, term := range terms {
			if idx, ok := vocab[term]; ok {
				counts[i][idx]++
			}
		}
		for idx := range counts[i] {
			docFreq[idx]++
		}
	}

	// Smoothed inverse document frequency: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for idx, df := range docFreq {
		idf[idx] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i := range docs {
		vec := make([]float64, len(vocab))
		for idx, count := range counts[i] {
			vec[idx] = float64(count) * idf[idx]
		}
		normalize(vec)
		vectors[i] = vec
	}
	return vectors
}

// selectVocabulary keeps the maxFeatures terms with the highest corpus
// frequency, breaking ties alphabetically so fitting is deterministic.
func selectVocabulary(totalCount map[string]int, maxFeatures int) map[string]int {
	terms := make([]string, 0, len(totalCount))
	for term := range totalCount {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalCount[terms[i]] != totalCount[terms[j]] {
			return totalCount[terms[i]] > totalCount[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for idx, term := range terms {
		vocab[term] = idx
	}
	return vocab
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// 0 when either has zero magnitude.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
