package stat

import (
	"strings"

	"github.com/revelaction/segvso/record"
	"github.com/revelaction/segvso/seq"
)

// Counter counts the tokens of record lines, with and without tags.
type Counter struct {
	Lines   int
	Clauses int

	// Tagged counts every token of the groups, Untagged only the words
	Tagged   int
	Untagged int

	vocab map[string]struct{}
}

func NewCounter() *Counter {
	return &Counter{vocab: map[string]struct{}{}}
}

// Add counts the group of r. The title is not counted.
func (c *Counter) Add(r record.Record) {
	c.Lines++

	for _, tok := range seq.Tokens(r.Group) {
		c.Tagged++
		if tok == seq.Separator {
			c.Clauses++
			continue
		}

		if seq.IsTag(tok) || tok == seq.None {
			continue
		}

		c.Untagged++
		if c.vocab == nil {
			c.vocab = map[string]struct{}{}
		}
		c.vocab[strings.ToLower(tok)] = struct{}{}
	}

	c.Clauses++
}

// Vocabulary returns the number of distinct lower cased words.
func (c *Counter) Vocabulary() int {
	return len(c.vocab)
}

func (c *Counter) AvgTagged() float64 {
	return Rate(c.Tagged, c.Lines)
}

func (c *Counter) AvgUntagged() float64 {
	return Rate(c.Untagged, c.Lines)
}
