// Package nlp provides the narrow natural-language parsing surface the
// extraction passes depend on: noun-phrase chunking and named-entity
// tagging. The core never depends on a concrete engine.
package nlp

import (
	"strings"
	"unicode"
)

// Entity is a named entity with a category label such as ORG, PRODUCT or
// WORK_OF_ART.
type Entity struct {
	Text  string
	Label string
}

// Parser tokenizes free text into noun phrases and labeled entities.
type Parser interface {
	NounPhrases(text string) []string
	Entities(text string) []Entity
}

// HeuristicParser is a dependency-free Parser built on token heuristics.
// It is deliberately best-effort: noun phrases are maximal runs of
// non-function words, entities are capitalized token runs classified by
// surface shape.
type HeuristicParser struct{}

// NewHeuristicParser returns the default parser implementation.
func NewHeuristicParser() *HeuristicParser {
	return &HeuristicParser{}
}

var functionWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"with": {}, "for": {}, "in": {}, "on": {}, "at": {}, "of": {},
	"to": {}, "from": {}, "by": {}, "as": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "have": {}, "has": {},
	"had": {}, "i": {}, "my": {}, "we": {}, "our": {}, "this": {},
	"that": {}, "these": {}, "those": {},
}

var orgSuffixes = map[string]struct{}{
	"inc": {}, "llc": {}, "ltd": {}, "corp": {}, "corporation": {},
	"labs": {}, "technologies": {}, "systems": {}, "solutions": {},
	"software": {}, "university": {}, "institute": {}, "college": {},
	"group": {}, "bank": {},
}

// NounPhrases returns maximal runs of consecutive non-function words.
// Phrase boundaries are sentence punctuation, newlines and function words.
func (p *HeuristicParser) NounPhrases(text string) []string {
	var phrases []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for _, tok := range tokenize(text) {
		if tok.boundary {
			flush()
			continue
		}
		lower := strings.ToLower(tok.text)
		if _, ok := functionWords[lower]; ok {
			flush()
			continue
		}
		current = append(current, lower)
	}
	flush()
	return phrases
}

// Entities returns capitalized token runs labeled by surface shape:
// runs ending in a corporate suffix become ORG, quoted runs become
// WORK_OF_ART, and the rest PRODUCT.
func (p *HeuristicParser) Entities(text string) []Entity {
	var entities []Entity
	var current []token

	flush := func() {
		if len(current) == 0 {
			return
		}
		words := make([]string, len(current))
		for i, t := range current {
			words[i] = t.text
		}
		entities = append(entities, Entity{
			Text:  strings.Join(words, " "),
			Label: classify(current),
		})
		current = current[:0]
	}

	for _, tok := range tokenize(text) {
		if tok.boundary || !tok.capitalized {
			flush()
			continue
		}
		current = append(current, tok)
	}
	flush()
	return entities
}

func classify(run []token) string {
	last := strings.ToLower(run[len(run)-1].text)
	if _, ok := orgSuffixes[last]; ok {
		return "ORG"
	}
	if run[0].quoted {
		return "WORK_OF_ART"
	}
	return "PRODUCT"
}

type token struct {
	text        string
	capitalized bool
	quoted      bool
	boundary    bool
}

func tokenize(text string) []token {
	var toks []token
	var b strings.Builder
	quoted := false
	pendingQuote := false

	emit := func() {
		if b.Len() == 0 {
			return
		}
		word := b.String()
		b.Reset()
		first := []rune(word)[0]
		toks = append(toks, token{
			text:        word,
			capitalized: unicode.IsUpper(first),
			quoted:      quoted,
		})
		quoted = false
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#':
			if pendingQuote {
				quoted = true
				pendingQuote = false
			}
			b.WriteRune(r)
		case r == '\'' && b.Len() > 0:
			// keep apostrophes inside words ("bachelor's")
			b.WriteRune(r)
		case r == '"' || r == '\'':
			emit()
			pendingQuote = true
		case r == '.' || r == ',' || r == ';' || r == ':' || r == '!' || r == '?' || r == '\n':
			emit()
			toks = append(toks, token{boundary: true})
			pendingQuote = false
		default:
			emit()
			pendingQuote = false
		}
	}
	emit()
	return toks
}
