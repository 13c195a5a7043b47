// Package dep holds the dependency graph of a parsed sentence: an ordered
// list of labeled head → dependent edges.
package dep

import (
	sent "github.com/revelaction/segvso/sentence"
)

// RelRoot is the relation of the edge from the virtual root to the
// sentence head.
const RelRoot = "root"

// PosField selects the token field used as Word.Pos.
type PosField string

const (
	// PosTag uses the detailed tag (xpos: VB, VBD, NN...)
	PosTag PosField = "tag"
	// PosUniversal uses the universal POS (upos: VERB, NOUN...)
	PosUniversal PosField = "pos"
)

// Word is a node of the graph. ID is 1-based, 0 is the virtual root.
type Word struct {
	ID   int
	Text string
	Pos  string
}

// Root is the virtual root word.
var Root = Word{ID: 0}

// Edge is a labeled dependency.
type Edge struct {
	Head Word
	Rel  string
	Dep  Word
}

// Graph is the dependency graph of one sentence. The order of Edges is the
// parser emission order and is the tie-break order of every search: the
// first matching edge wins.
type Graph struct {
	Edges []Edge
}

// Len returns the number of edges.
func (g Graph) Len() int {
	return len(g.Edges)
}

// Words returns the number of distinct dependents in the graph.
func (g Graph) Words() int {
	seen := map[int]struct{}{}
	for _, e := range g.Edges {
		seen[e.Dep.ID] = struct{}{}
	}

	return len(seen)
}

// FromTokens builds the graph of a sentence. One edge is emitted per token,
// in token order. Token Index is 0-based and becomes ID Index+1.
func FromTokens(tokens []sent.Token, field PosField) Graph {
	byIndex := make(map[int]sent.Token, len(tokens))
	for _, t := range tokens {
		byIndex[t.Index] = t
	}

	g := Graph{Edges: make([]Edge, 0, len(tokens))}
	for _, t := range tokens {
		d := word(t, field)

		if t.IsRoot() {
			g.Edges = append(g.Edges, Edge{Head: Root, Rel: RelRoot, Dep: d})
			continue
		}

		head, ok := byIndex[t.Head]
		if !ok {
			// dangling head: keep the relation, the id still matches searches
			g.Edges = append(g.Edges, Edge{Head: Word{ID: t.Head + 1}, Rel: t.Dep, Dep: d})
			continue
		}

		g.Edges = append(g.Edges, Edge{Head: word(head, field), Rel: t.Dep, Dep: d})
	}

	return g
}

func word(t sent.Token, field PosField) Word {
	pos := t.Tag
	if field == PosUniversal || pos == "" {
		pos = t.Pos
	}

	return Word{ID: t.Index + 1, Text: t.Text, Pos: pos}
}
