package dep

import (
	"testing"

	sent "github.com/revelaction/segvso/sentence"
)

// John ate cake
var tokens = []sent.Token{
	{Index: 0, Head: 1, Dep: "nsubj", Text: "John", Pos: "PROPN", Tag: "NNP"},
	{Index: 1, Head: 1, Dep: "ROOT", Text: "ate", Pos: "VERB", Tag: "VBD"},
	{Index: 2, Head: 1, Dep: "obj", Text: "cake", Pos: "NOUN", Tag: "NN"},
}

func TestFromTokens(t *testing.T) {
	g := FromTokens(tokens, PosTag)

	if g.Len() != 3 {
		t.Fatalf("expected 3 edges, got %d", g.Len())
	}

	// token order is preserved
	subj := g.Edges[0]
	if subj.Rel != "nsubj" || subj.Head.ID != 2 || subj.Dep.ID != 1 || subj.Dep.Text != "John" {
		t.Errorf("unexpected subject edge %+v", subj)
	}

	root := g.Edges[1]
	if root.Rel != RelRoot || root.Head.ID != 0 || root.Dep.Text != "ate" || root.Dep.Pos != "VBD" {
		t.Errorf("unexpected root edge %+v", root)
	}

	if g.Edges[2].Head.Text != "ate" {
		t.Errorf("expected head word text to be resolved, got %+v", g.Edges[2].Head)
	}
}

func TestFromTokensUniversalPos(t *testing.T) {
	g := FromTokens(tokens, PosUniversal)
	if g.Edges[1].Dep.Pos != "VERB" {
		t.Fatalf("expected upos VERB, got %q", g.Edges[1].Dep.Pos)
	}
}

func TestFromTokensEmptyTagFallsBackToPos(t *testing.T) {
	g := FromTokens([]sent.Token{{Index: 0, Head: 0, Dep: "root", Text: "go", Pos: "VERB"}}, PosTag)
	if g.Edges[0].Dep.Pos != "VERB" {
		t.Fatalf("expected fallback to pos, got %q", g.Edges[0].Dep.Pos)
	}
}

func TestGraphWords(t *testing.T) {
	if n := FromTokens(tokens, PosTag).Words(); n != 3 {
		t.Fatalf("expected 3 words, got %d", n)
	}

	if n := (Graph{}).Words(); n != 0 {
		t.Fatalf("expected 0 words, got %d", n)
	}
}
