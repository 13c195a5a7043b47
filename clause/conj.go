package clause

import (
	"strings"

	"github.com/revelaction/segvso/dep"
)

const (
	relConj = "conj"
	relCC   = "cc"
)

// Conjunction finds the element coordinated with the word anchorID. It
// returns the conjunct text, prefixed by its coordinating word ("and pie")
// when the conjunct has a cc dependent. The bool is false when the anchor
// has no conj dependent; callers must not append anything in that case.
//
// Only the first conjunct is resolved: "A, B and C" yields "B".
func Conjunction(g dep.Graph, anchorID int) (string, bool) {
	for _, e := range g.Edges {
		if e.Head.ID != anchorID || !strings.Contains(e.Rel, relConj) {
			continue
		}

		conjunct := e.Dep
		for _, cc := range g.Edges {
			if cc.Head.ID == conjunct.ID && cc.Rel == relCC {
				return cc.Dep.Text + " " + conjunct.Text, true
			}
		}

		return conjunct.Text, true
	}

	return "", false
}

// coordinated returns the text of w followed by its coordination suffix, if any.
func coordinated(g dep.Graph, w dep.Word) string {
	if suffix, ok := Conjunction(g, w.ID); ok {
		return w.Text + " " + suffix
	}

	return w.Text
}
