package seq

import (
	"reflect"
	"testing"

	"github.com/revelaction/segvso/clause"
	"github.com/revelaction/segvso/dep"
)

func leaf(kind clause.Kind, text string) clause.Slot {
	if kind == clause.None {
		return clause.Slot{Kind: clause.None, ID: -1}
	}
	return clause.Slot{Kind: kind, Text: text}
}

func TestEncode(t *testing.T) {
	c := clause.Clause{
		Verb:    leaf(clause.Verb, "ate"),
		Subject: leaf(clause.Subject, "John"),
		Object:  leaf(clause.Object, "cake and pie"),
	}

	want := "<v> ate <s> John <o> cake and pie"
	if got := Encode(c); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncodeNone(t *testing.T) {
	c := clause.Clause{
		Verb:    leaf(clause.None, ""),
		Subject: leaf(clause.None, ""),
		Object:  leaf(clause.None, ""),
	}

	if got := Encode(c); got != Empty {
		t.Fatalf("expected %q, got %q", Empty, got)
	}

	if got := EncodeGroup(nil); got != Empty {
		t.Fatalf("expected %q for empty group, got %q", Empty, got)
	}
}

func TestEncodeNestedSubject(t *testing.T) {
	nested := clause.Clause{
		Verb:    leaf(clause.Verb, "running"),
		Subject: leaf(clause.None, ""),
		Object:  leaf(clause.Object, "fast"),
	}
	c := clause.Clause{
		Verb:    leaf(clause.Verb, "helps"),
		Subject: clause.Slot{Kind: clause.SubjectClause, Text: "running", Nested: &nested},
		Object:  leaf(clause.Object, "me"),
	}

	want := "<v> helps <cs> running <s> <none> <o> fast <o> me"
	if got := Encode(c); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncodeUnexpandedClauseSlotIsPlain(t *testing.T) {
	c := clause.Clause{
		Verb:    leaf(clause.Verb, "said"),
		Subject: leaf(clause.None, ""),
		Object:  clause.Slot{Kind: clause.ObjectClause, Text: "left"},
	}

	want := "<v> said <s> <none> <o> left"
	if got := Encode(c); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncodeGroup(t *testing.T) {
	a := clause.Clause{Verb: leaf(clause.Verb, "ran"), Subject: leaf(clause.Subject, "he"), Object: leaf(clause.None, "")}
	b := clause.Clause{Verb: leaf(clause.Verb, "fell"), Subject: leaf(clause.Subject, "she"), Object: leaf(clause.None, "")}

	want := "<v> ran <s> he <o> <none> # <v> fell <s> she <o> <none>"
	if got := EncodeGroup([]clause.Clause{a, b}); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [3]string
		subject []string
		object  []string
	}{
		{
			name: "flat",
			in:   "<v> ate <s> John <o> cake and pie",
			want: [3]string{"ate", "John", "cake and pie"},
		},
		{
			name: "none slots",
			in:   "<v> ran <s> <none> <o> <none>",
			want: [3]string{"ran", None, None},
		},
		{
			name:   "subject clause",
			in:     "<v> helps <cs> running <s> <none> <o> fast <o> me",
			want:   [3]string{"helps", "running", "me"},
			object: []string{"fast"},
		},
		{
			name:    "object clause at the end",
			in:      "<v> said <s> he <co> left <s> she <o> <none>",
			want:    [3]string{"said", "he", "left"},
			subject: []string{"she"},
		},
		{
			name:    "nested object clauses",
			in:      "<v> said <s> he <co> wants <s> she <co> go <s> <none> <o> home",
			want:    [3]string{"said", "he", "wants"},
			subject: []string{"she"},
			object:  []string{"home", "go"},
		},
		{
			name:    "subject and object clauses",
			in:      "<v> proves <cs> winning <s> team <o> <none> <co> trained <s> they <o> hard",
			want:    [3]string{"proves", "winning", "trained"},
			// right to left: the object clause is collapsed first
			subject: []string{"they", "team"},
			object:  []string{"hard"},
		},
		{
			name:    "clause in the second sentence",
			in:      "<v> ran <s> he <o> <none> # <v> helps <cs> running <s> Bob <o> fast <o> me",
			want:    [3]string{"ran", "he", None},
			subject: []string{"Bob"},
			object:  []string{"fast"},
		},
		{
			name:    "clauses in both sentences",
			in:      "<v> said <s> he <co> left <s> she <o> <none> # <v> knew <s> I <co> lost <s> they <o> keys",
			want:    [3]string{"said", "he", "left"},
			// last sentence first
			subject: []string{"they", "she"},
			object:  []string{"keys"},
		},
		{
			name: "empty",
			in:   "",
			want: [3]string{None, None, None},
		},
		{
			name: "no tags",
			in:   "just some words",
			want: [3]string{None, None, None},
		},
		{
			name: "extra white space",
			in:   "  <v>  ate\n<s> John   <o> cake ",
			want: [3]string{"ate", "John", "cake"},
		},
	}

	for _, tt := range tests {
		d := Decode(tt.in)
		if d.Triple() != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, d.Triple())
		}
		if !reflect.DeepEqual(d.SubjectTokens, tt.subject) {
			t.Errorf("%s: expected subject tokens %q, got %q", tt.name, tt.subject, d.SubjectTokens)
		}
		if !reflect.DeepEqual(d.ObjectTokens, tt.object) {
			t.Errorf("%s: expected object tokens %q, got %q", tt.name, tt.object, d.ObjectTokens)
		}
	}
}

func TestDecodeGroup(t *testing.T) {
	ds := DecodeGroup("<v> ran <s> he <o> <none> # <v> said <s> she <co> left <s> he <o> <none>")
	if len(ds) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(ds))
	}

	if ds[0].Triple() != [3]string{"ran", "he", None} {
		t.Errorf("unexpected first clause %q", ds[0].Triple())
	}

	if ds[1].Triple() != [3]string{"said", "she", "left"} {
		t.Errorf("unexpected second clause %q", ds[1].Triple())
	}

	if len(ds[0].SubjectTokens) != 0 {
		t.Errorf("side lists must not leak between clauses, got %q", ds[0].SubjectTokens)
	}

	if !reflect.DeepEqual(ds[1].SubjectTokens, []string{"he"}) {
		t.Errorf("unexpected subject tokens %q", ds[1].SubjectTokens)
	}
}

func TestDecodeGroupEmpty(t *testing.T) {
	for _, in := range []string{"", " # ", "#"} {
		ds := DecodeGroup(in)
		if len(ds) != 1 || ds[0].Triple() != [3]string{None, None, None} {
			t.Errorf("%q: expected canonical empty clause, got %+v", in, ds)
		}
	}
}

func TestRoundTripFlat(t *testing.T) {
	clauses := []clause.Clause{
		{Verb: leaf(clause.Verb, "ate"), Subject: leaf(clause.Subject, "John and Mary"), Object: leaf(clause.Object, "cake")},
		{Verb: leaf(clause.None, ""), Subject: leaf(clause.Subject, "it"), Object: leaf(clause.None, "")},
		{Verb: leaf(clause.None, ""), Subject: leaf(clause.None, ""), Object: leaf(clause.None, "")},
	}

	for _, c := range clauses {
		d := Decode(Encode(c))
		want := [3]string{text(c.Verb), text(c.Subject), text(c.Object)}
		if d.Triple() != want {
			t.Errorf("round trip: expected %q, got %q", want, d.Triple())
		}
	}
}

func TestIsTag(t *testing.T) {
	for _, tag := range []string{TagVerb, TagSubject, TagSubjectClause, TagObject, TagObjectClause} {
		if !IsTag(tag) {
			t.Errorf("expected %q to be a tag", tag)
		}
	}

	// exact match only: substrings of a tag are words
	for _, word := range []string{"<", "s", "cs", "", None, Separator, "<cs"} {
		if IsTag(word) {
			t.Errorf("expected %q not to be a tag", word)
		}
	}
}

func TestExtractEncodeDecode(t *testing.T) {
	word := func(id int, text, pos string) dep.Word { return dep.Word{ID: id, Text: text, Pos: pos} }
	john, ate, cake, and, pie := word(1, "John", "NNP"), word(2, "ate", "VBD"), word(3, "cake", "NN"), word(4, "and", "CC"), word(5, "pie", "NN")

	g := dep.Graph{Edges: []dep.Edge{
		{Head: dep.Root, Rel: "root", Dep: ate},
		{Head: ate, Rel: "nsubj", Dep: john},
		{Head: ate, Rel: "obj", Dep: cake},
		{Head: cake, Rel: "conj", Dep: pie},
		{Head: pie, Rel: "cc", Dep: and},
	}}

	encoded := Encode(clause.NewExtractor(nil).Extract(g))
	if encoded != "<v> ate <s> John <o> cake and pie" {
		t.Fatalf("unexpected encoding %q", encoded)
	}

	d := Decode(encoded)
	if d.Triple() != [3]string{"ate", "John", "cake and pie"} {
		t.Fatalf("unexpected decoding %q", d.Triple())
	}
	if len(d.SubjectTokens) != 0 || len(d.ObjectTokens) != 0 {
		t.Fatalf("expected empty side lists, got %q %q", d.SubjectTokens, d.ObjectTokens)
	}
}

func TestExtractEmptyGraphEncodes(t *testing.T) {
	if got := Encode(clause.NewExtractor(nil).Extract(dep.Graph{})); got != Empty {
		t.Fatalf("expected %q, got %q", Empty, got)
	}
}
