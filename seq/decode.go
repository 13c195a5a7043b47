package seq

import (
	"strings"
)

// Decoded is the flat form of a clause rendering: the main clause slots,
// with the words of subordinate clauses moved to side lists.
type Decoded struct {
	Verb    string `json:"verb"`
	Subject string `json:"subject"`
	Object  string `json:"object"`

	// SubjectTokens are the words found in the subject slots of the
	// subordinate clauses.
	SubjectTokens []string `json:"subject_tokens"`

	// ObjectTokens are the words found in the object slots of the
	// subordinate clauses.
	ObjectTokens []string `json:"object_tokens"`
}

// Triple returns the verb, subject and object.
func (d Decoded) Triple() [3]string {
	return [3]string{d.Verb, d.Subject, d.Object}
}

// empty returns the canonical decoding of a clause where nothing was found.
func empty() Decoded {
	return Decoded{Verb: None, Subject: None, Object: None}
}

type state int

const (
	stateNone state = iota
	stateSubject
	stateObject
)

// Tokens splits a tagged sequence on white space.
func Tokens(text string) []string {
	return strings.Fields(text)
}

// Decode decodes text into the slots of its first clause. The side lists
// hold the subordinate clause words of every clause of the group, in reverse
// scan order. Use DecodeGroup for the slots of each clause.
func Decode(text string) Decoded {
	ds := DecodeGroup(text)
	d := ds[0]
	d.SubjectTokens, d.ObjectTokens = nil, nil
	for i := len(ds) - 1; i >= 0; i-- {
		d.SubjectTokens = append(d.SubjectTokens, ds[i].SubjectTokens...)
		d.ObjectTokens = append(d.ObjectTokens, ds[i].ObjectTokens...)
	}

	return d
}

// DecodeGroup decodes every clause of a " # " separated sentence group. It
// always returns at least one Decoded.
func DecodeGroup(text string) []Decoded {
	var ds []Decoded
	for _, clauseTokens := range split(Tokens(text)) {
		ds = append(ds, decodeClause(clauseTokens))
	}

	if len(ds) == 0 {
		return []Decoded{empty()}
	}

	return ds
}

// split cuts tokens on the clause separator. Empty clauses are dropped.
func split(tokens []string) [][]string {
	var clauses [][]string
	var current []string
	for _, t := range tokens {
		if t == Separator {
			if len(current) > 0 {
				clauses = append(clauses, current)
			}
			current = nil
			continue
		}
		current = append(current, t)
	}

	if len(current) > 0 {
		clauses = append(clauses, current)
	}

	return clauses
}

func decodeClause(tokens []string) Decoded {
	toks := append([]string(nil), tokens...)

	var d Decoded
	// right to left: inner clauses are collapsed before the clauses that
	// contain them.
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i] != TagSubjectClause && toks[i] != TagObjectClause {
			continue
		}
		toks = d.collapse(toks, i)
	}

	d.Verb, d.Subject, d.Object = flatten(toks)
	return d
}

// collapse removes the subordinate clause introduced by the clausal tag at
// position i. The head word of the subordinate clause stays as the slot
// value; its subject and object words go to the side lists. The clausal tag
// is rewritten to the plain one.
//
// The head word is not moved to the side lists: "<cs> running <s> x" keeps
// running as the subject and only x goes to SubjectTokens.
func (d *Decoded) collapse(toks []string, i int) []string {
	start := i + 1
	for start < len(toks) && !IsTag(toks[start]) {
		start++
	}

	st := stateNone
	end := start

SCAN:
	for ; end < len(toks); end++ {
		t := toks[end]
		switch {
		case t == TagSubject && st == stateNone:
			st = stateSubject
		case t == TagObject && st != stateObject:
			st = stateObject
		case IsTag(t):
			break SCAN
		case t == None:
		case st == stateSubject:
			d.SubjectTokens = append(d.SubjectTokens, t)
		case st == stateObject:
			d.ObjectTokens = append(d.ObjectTokens, t)
		}
	}

	if toks[i] == TagSubjectClause {
		toks[i] = TagSubject
	} else {
		toks[i] = TagObject
	}

	return append(toks[:start], toks[end:]...)
}

// flatten reads a clause without clausal tags into its three slots.
func flatten(toks []string) (string, string, string) {
	var buckets [3][]string
	cur := 0
	tagged := false
	for _, t := range toks {
		switch t {
		case TagVerb:
			cur, tagged = 0, true
		case TagSubject:
			cur, tagged = 1, true
		case TagObject:
			cur, tagged = 2, true
		case None:
		default:
			buckets[cur] = append(buckets[cur], t)
		}
	}

	if !tagged {
		return None, None, None
	}

	var slots [3]string
	for i, b := range buckets {
		slots[i] = None
		if len(b) > 0 {
			slots[i] = strings.Join(b, " ")
		}
	}

	return slots[0], slots[1], slots[2]
}
