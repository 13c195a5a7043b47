package stat

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/revelaction/segvso/record"
	"github.com/revelaction/segvso/seq"
)

const endOfStoryline = "<EOL>"

// Analysis compares decoded clauses with reference storylines, the key words
// written for each sentence of a story.
//
// An extracted word hits when some storyline word contains it, after Unicode
// normalization and case folding. <none> slots carry no data and are not
// counted.
type Analysis struct {
	// AllVSO counts the extracted verb, subject and object words
	AllVSO [3]int
	HitVSO [3]int

	// AllNonCore counts the words of subordinate subject and object clauses
	AllNonCore [2]int
	HitNonCore [2]int

	// Storyline counts the reference words, Other those not hit by any
	// extracted word
	Storyline int
	Other     int

	Clauses int
}

// Add compares one decoded clause with its storyline.
func (a *Analysis) Add(storyline string, d seq.Decoded) {
	a.Clauses++

	refs := strings.Fields(storyline)
	for i := range refs {
		refs[i] = fold(refs[i])
	}
	a.Storyline += len(refs)

	hit := make([]bool, len(refs))
	match := func(word string) bool {
		word = fold(word)
		found := false
		for i, ref := range refs {
			if strings.Contains(ref, word) {
				hit[i] = true
				found = true
			}
		}
		return found
	}

	for i, word := range d.Triple() {
		if word == seq.None {
			continue
		}
		a.AllVSO[i]++
		if match(word) {
			a.HitVSO[i]++
		}
	}

	for i, words := range [2][]string{d.SubjectTokens, d.ObjectTokens} {
		for _, word := range words {
			a.AllNonCore[i]++
			if match(word) {
				a.HitNonCore[i]++
			}
		}
	}

	for _, h := range hit {
		if !h {
			a.Other++
		}
	}
}

// AddGroup compares the clauses of a tagged group with the storylines of the
// same story, pairwise. Surplus clauses or storylines are ignored.
func (a *Analysis) AddGroup(storylines []string, group string) {
	decoded := seq.DecodeGroup(group)
	for i := 0; i < len(storylines) && i < len(decoded); i++ {
		a.Add(storylines[i], decoded[i])
	}
}

// Rate returns hit/all, 0 when all is 0.
func Rate(hit, all int) float64 {
	if all == 0 {
		return 0
	}
	return float64(hit) / float64(all)
}

var folder = cases.Fold()

func fold(s string) string {
	return folder.String(norm.NFC.String(s))
}

// Storylines returns the storyline of each sentence of a reference line:
//
//	title <EOT> sl1 # sl2 # sl3 <EOL> story text
//
// The title and the story text are dropped.
func Storylines(line string) []string {
	if _, after, ok := strings.Cut(line, record.TitleSeparator); ok {
		line = after
	}
	line, _, _ = strings.Cut(line, endOfStoryline)
	line = strings.ReplaceAll(line, "\t", " ")

	var lines []string
	for _, sl := range strings.Split(line, " "+seq.Separator+" ") {
		lines = append(lines, strings.TrimSpace(sl))
	}
	return lines
}
