// Package seq renders clauses into the tagged sequence format and parses it
// back.
//
// A clause renders as
//
//	<v> ate <s> John <o> cake and pie
//
// A subordinate clause in the subject or object slot uses the <cs> or <co>
// tag, followed inline by the subordinate clause without its <v> tag:
//
//	<v> helps <cs> running <s> <none> <o> fast <o> me
//
// The clauses of one sentence group are joined with " # ".
package seq

import (
	"strings"

	"github.com/revelaction/segvso/clause"
)

const (
	TagVerb          = "<v>"
	TagSubject       = "<s>"
	TagSubjectClause = "<cs>"
	TagObject        = "<o>"
	TagObjectClause  = "<co>"
	None             = "<none>"
	Separator        = "#"
)

// Empty is the rendering of a clause where nothing was found.
const Empty = TagVerb + " " + None + " " + TagSubject + " " + None + " " + TagObject + " " + None

// IsTag reports whether token is one of the slot tags.
func IsTag(token string) bool {
	switch token {
	case TagVerb, TagSubject, TagSubjectClause, TagObject, TagObjectClause:
		return true
	}
	return false
}

// Encode renders a clause tree.
func Encode(c clause.Clause) string {
	var b strings.Builder
	b.WriteString(TagVerb)
	b.WriteString(" ")
	b.WriteString(text(c.Verb))
	writeBody(&b, c)
	return b.String()
}

// EncodeGroup renders the clauses of a sentence group.
func EncodeGroup(cs []clause.Clause) string {
	if len(cs) == 0 {
		return Empty
	}

	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, Encode(c))
	}

	return strings.Join(parts, " "+Separator+" ")
}

// writeBody writes the subject and object slots of c.
func writeBody(b *strings.Builder, c clause.Clause) {
	writeSlot(b, c.Subject, TagSubject, TagSubjectClause)
	writeSlot(b, c.Object, TagObject, TagObjectClause)
}

func writeSlot(b *strings.Builder, s clause.Slot, tag, clauseTag string) {
	b.WriteString(" ")
	if s.Nested == nil {
		b.WriteString(tag)
		b.WriteString(" ")
		b.WriteString(text(s))
		return
	}

	b.WriteString(clauseTag)
	b.WriteString(" ")
	b.WriteString(text(s.Nested.Verb))
	writeBody(b, *s.Nested)
}

func text(s clause.Slot) string {
	if s.IsNone() || s.Text == "" {
		return None
	}
	return s.Text
}
