// Package clause projects a dependency graph onto a verb/subject/object
// template. Subordinate clauses found in the subject or object position are
// expanded recursively into nested clauses.
package clause

// Kind is the variant of a Slot.
type Kind int

const (
	None Kind = iota
	Verb
	Subject
	SubjectClause
	Object
	ObjectClause
)

func (k Kind) String() string {
	switch k {
	case Verb:
		return "verb"
	case Subject:
		return "subject"
	case SubjectClause:
		return "subject-clause"
	case Object:
		return "object"
	case ObjectClause:
		return "object-clause"
	}

	return "none"
}

// Slot is one position of a clause. ID is the word id that filled the
// slot, -1 for None. For the clausal kinds, Text is the word heading the
// subordinate clause and Nested holds its expansion once assembled.
type Slot struct {
	Kind   Kind
	ID     int
	Text   string
	Nested *Clause
}

// IsNone reports whether nothing was found for the slot.
func (s Slot) IsNone() bool {
	return s.Kind == None
}

// IsClausal reports whether the slot is filled by a subordinate clause.
func (s Slot) IsClausal() bool {
	return s.Kind == SubjectClause || s.Kind == ObjectClause
}

func none() Slot {
	return Slot{Kind: None, ID: -1}
}

// Clause is the verb, subject and object of one clause, in that order.
type Clause struct {
	Verb    Slot
	Subject Slot
	Object  Slot
}

// Depth returns the nesting depth of the clause: 1 for a clause without
// subordinate clauses.
func (c Clause) Depth() int {
	d := 0
	for _, s := range []Slot{c.Subject, c.Object} {
		if s.Nested == nil {
			continue
		}
		if n := s.Nested.Depth(); n > d {
			d = n
		}
	}

	return d + 1
}
