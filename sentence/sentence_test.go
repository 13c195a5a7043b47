package sentence

import "testing"

func TestTokenIsRoot(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  bool
	}{
		{"stanza root dep", Token{Index: 2, Head: 0, Dep: "root"}, true},
		{"spacy ROOT dep", Token{Index: 2, Head: 2, Dep: "ROOT"}, true},
		{"self head", Token{Index: 3, Head: 3, Dep: "dep"}, true},
		{"subject", Token{Index: 0, Head: 1, Dep: "nsubj"}, false},
	}

	for _, tt := range tests {
		if got := tt.token.IsRoot(); got != tt.want {
			t.Errorf("%s: IsRoot() = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestSentenceText(t *testing.T) {
	s := Sentence{Tokens: []Token{{Text: "John"}, {Text: "ate"}, {Text: "cake"}}}
	if got := s.Text(); got != "John ate cake" {
		t.Fatalf("expected %q, got %q", "John ate cake", got)
	}

	if got := (Sentence{}).Text(); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
