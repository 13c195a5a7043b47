package clause

import (
	"strings"

	"github.com/revelaction/segvso/dep"
)

const (
	relSubj   = "subj"
	relCSubj  = "csubj"
	relNSubj  = "nsubj"
	relObj    = "obj"
	relCComp  = "ccomp"
	relXComp  = "xcomp"
	relCopula = "cop"
)

// DefaultVerbTags match the Penn Treebank verb tags (VB, VBD, VBZ...) and
// the universal VERB and AUX tags used when a token has no XPOS.
var DefaultVerbTags = []string{"VB", "VERB", "AUX"}

// Extractor resolves the clauses of a dependency graph.
type Extractor struct {
	// IsVerb reports whether a word is a verb form.
	IsVerb func(dep.Word) bool

	// MaxDepth bounds the nesting of subordinate clauses. Zero means the
	// number of words of the graph being extracted.
	MaxDepth int
}

// NewExtractor returns an Extractor that treats as verbs the words whose
// Pos contains one of tags.
func NewExtractor(tags []string) *Extractor {
	if len(tags) == 0 {
		tags = DefaultVerbTags
	}

	return &Extractor{IsVerb: VerbTagFunc(tags)}
}

// VerbTagFunc returns a verb predicate matching any of tags as a substring
// of the word Pos.
func VerbTagFunc(tags []string) func(dep.Word) bool {
	return func(w dep.Word) bool {
		for _, t := range tags {
			if t != "" && strings.Contains(w.Pos, t) {
				return true
			}
		}
		return false
	}
}

// Extract returns the main clause of the sentence, with the subordinate
// clauses of its subject and object slots expanded.
func (e *Extractor) Extract(g dep.Graph) Clause {
	id, verb := e.Verb(g, dep.Root.ID)

	depth := e.MaxDepth
	if depth <= 0 {
		depth = g.Words()
	}

	return e.assemble(g, id, verb, depth)
}

// ExtractAll extracts one clause per graph, f.ex. per sentence split of a
// story line.
func (e *Extractor) ExtractAll(graphs []dep.Graph) []Clause {
	clauses := make([]Clause, 0, len(graphs))
	for _, g := range graphs {
		clauses = append(clauses, e.Extract(g))
	}

	return clauses
}

// Verb finds the head verb of the clause rooted at rootID.
//
// An edge is a candidate if it is the root edge or hangs from the current
// root. At the virtual root, a non verbal candidate (f.ex. an adjective with
// a copula) becomes the current root and the scan goes on. The number of
// passes is bounded by the number of edges.
func (e *Extractor) Verb(g dep.Graph, rootID int) (int, Slot) {
	current := rootID
	for pass := 0; pass < g.Len(); pass++ {
		for _, edge := range g.Edges {
			if edge.Rel != dep.RelRoot && edge.Head.ID != current {
				continue
			}

			if e.isVerb(edge.Dep) {
				return edge.Dep.ID, Slot{Kind: Verb, ID: edge.Dep.ID, Text: edge.Dep.Text}
			}

			if current == dep.Root.ID {
				current = edge.Dep.ID
			}
		}
	}

	return -1, none()
}

// Subject finds the subject of verbID. A clausal subject is returned as a
// SubjectClause slot, not yet expanded.
func (e *Extractor) Subject(g dep.Graph, verbID int) (int, Slot) {
	return e.subject(g, verbID, 0)
}

func (e *Extractor) subject(g dep.Graph, verbID int, pivots int) (int, Slot) {
	for _, edge := range g.Edges {
		if edge.Head.ID != verbID || !strings.Contains(edge.Rel, relSubj) {
			continue
		}

		switch {
		case strings.Contains(edge.Rel, relCSubj):
			return edge.Dep.ID, Slot{Kind: SubjectClause, ID: edge.Dep.ID, Text: edge.Dep.Text}
		case strings.Contains(edge.Rel, relNSubj):
			return edge.Dep.ID, Slot{Kind: Subject, ID: edge.Dep.ID, Text: coordinated(g, edge.Dep)}
		}
	}

	return e.copula(g, verbID, pivots)
}

// copula pivots the subject search through a cop edge whose dependent is
// verbID: the subject hangs from the copula complement (the head).
func (e *Extractor) copula(g dep.Graph, verbID int, pivots int) (int, Slot) {
	if pivots < g.Len() {
		for _, edge := range g.Edges {
			if strings.Contains(edge.Rel, relCopula) && edge.Dep.ID == verbID {
				return e.subject(g, edge.Head.ID, pivots+1)
			}
		}
	}

	return -1, none()
}

// Object finds the object of verbID. A nominal object wins over a clausal
// complement, which is returned as an ObjectClause slot, not yet expanded.
func (e *Extractor) Object(g dep.Graph, verbID int) (int, Slot) {
	for _, edge := range g.Edges {
		if edge.Head.ID == verbID && strings.Contains(edge.Rel, relObj) {
			return edge.Dep.ID, Slot{Kind: Object, ID: edge.Dep.ID, Text: coordinated(g, edge.Dep)}
		}
	}

	for _, edge := range g.Edges {
		if edge.Head.ID != verbID {
			continue
		}
		if strings.Contains(edge.Rel, relCComp) || strings.Contains(edge.Rel, relXComp) {
			return edge.Dep.ID, Slot{Kind: ObjectClause, ID: edge.Dep.ID, Text: edge.Dep.Text}
		}
	}

	return -1, none()
}

// assemble builds the clause headed by verbID. The subject is resolved and
// expanded before the object.
func (e *Extractor) assemble(g dep.Graph, verbID int, verb Slot, depth int) Clause {
	c := Clause{Verb: verb}

	_, c.Subject = e.Subject(g, verbID)
	c.Subject = e.expand(g, c.Subject, depth)

	_, c.Object = e.Object(g, verbID)
	c.Object = e.expand(g, c.Object, depth)

	return c
}

// expand assembles the subordinate clause of a clausal slot. The head word of
// the subordinate clause is its verb. Past the depth bound the slot is kept
// as a plain leaf.
func (e *Extractor) expand(g dep.Graph, s Slot, depth int) Slot {
	if !s.IsClausal() {
		return s
	}

	if depth <= 0 {
		if s.Kind == SubjectClause {
			s.Kind = Subject
		} else {
			s.Kind = Object
		}
		return s
	}

	nested := e.assemble(g, s.ID, Slot{Kind: Verb, ID: s.ID, Text: s.Text}, depth-1)
	s.Nested = &nested
	return s
}

func (e *Extractor) isVerb(w dep.Word) bool {
	if e.IsVerb == nil {
		return VerbTagFunc(DefaultVerbTags)(w)
	}

	return e.IsVerb(w)
}
