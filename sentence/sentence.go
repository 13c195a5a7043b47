package sentence

import (
	"strings"
)

type Doc struct {
	Id int

	Title string

	Labels    []string
	Sentences []Sentence `json:"sentences"`
}

// Sentence is a parsed sentence of a Doc.
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc_id"`
	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and dependency metadata.
type Token struct {
	Id int `json:"id"`

	// Head is the Index of the head token. The root token points to itself
	// (spacy) or carries the dep "root" (stanza).
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data (xpos, f.ex. VBD)
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// IsRoot reports whether the token attaches to the virtual root of the
// sentence.
func (t Token) IsRoot() bool {
	return strings.EqualFold(t.Dep, "root") || t.Head == t.Index
}

// Text joins the words of the sentence with a single space.
func (s Sentence) Text() string {
	words := make([]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		words = append(words, t.Text)
	}

	return strings.Join(words, " ")
}
