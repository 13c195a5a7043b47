package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/revelaction/segvso/clause"
	sent "github.com/revelaction/segvso/sentence"
	"github.com/revelaction/segvso/seq"
)

const (
	Defaultformat = "seq"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

// SupportedFormats returns the formats of a tagged group
//
// seq: the tagged sequence
// triple: verb, subject and object of each clause
// tokens: the triple plus the words of the subordinate clauses
func SupportedFormats() []string {
	return []string{"seq", "triple", "tokens"}
}

type Renderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	Format string

	DocNames map[int]string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, Format: Defaultformat, DocNames: map[int]string{}}
}

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Group writes a tagged group in the current format, one line per clause for
// the triple formats.
func (r *Renderer) Group(docId, sentenceId int, group string) {
	prefix := r.prefix(docId, sentenceId)

	switch r.Format {
	case "triple", "tokens":
		for _, d := range seq.DecodeGroup(group) {
			fmt.Fprintf(r.W, "%s%s\n", prefix, r.decoded(d))
		}
	default:
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.Sequence(group))
	}
}

// Sequence returns the tagged sequence with tags, <none> and the separator
// colored.
func (r *Renderer) Sequence(text string) string {
	toks := seq.Tokens(text)
	if !r.HasColor {
		return strings.Join(toks, " ")
	}

	for i, t := range toks {
		if c := tagColor(t); c != "" {
			toks[i] = c + t + Off
		}
	}

	return strings.Join(toks, " ")
}

func (r *Renderer) decoded(d seq.Decoded) string {
	triple := d.Triple()
	parts := make([]string, 0, 5)
	for i, tag := range []string{seq.TagVerb, seq.TagSubject, seq.TagObject} {
		parts = append(parts, r.label(tag)+" "+r.word(triple[i]))
	}

	if r.Format == "tokens" {
		parts = append(parts,
			r.label("subject tokens")+" "+strings.Join(d.SubjectTokens, ", "),
			r.label("object tokens")+" "+strings.Join(d.ObjectTokens, ", "),
		)
	}

	return strings.Join(parts, " | ")
}

func (r *Renderer) label(s string) string {
	if !r.HasColor {
		return s
	}
	return Grey256 + s + Off
}

func (r *Renderer) word(s string) string {
	if r.HasColor && s == seq.None {
		return Gray + s + Off
	}
	return s
}

// Clause writes the clause as an indented outline, one slot per line.
func (r *Renderer) Clause(c clause.Clause) {
	r.clause(c, 0)
}

func (r *Renderer) clause(c clause.Clause, level int) {
	indent := strings.Repeat("    ", level)
	for _, s := range []clause.Slot{c.Verb, c.Subject, c.Object} {
		text := s.Text
		if s.IsNone() || text == "" {
			text = seq.None
		}

		fmt.Fprintf(r.W, "%s%-15s %s\n", indent, s.Kind.String()+":", r.slotText(s.Kind, text))

		if s.Nested != nil {
			r.clause(*s.Nested, level+1)
		}
	}
}

func (r *Renderer) slotText(k clause.Kind, text string) string {
	if !r.HasColor {
		return text
	}

	if c := kindColor(k); c != "" {
		return c + text + Off
	}
	return text
}

// Sentence writes the text of s with the words of the main clause colored.
func (r *Renderer) Sentence(s sent.Sentence, c clause.Clause) {
	prefix := r.prefix(s.DocId, s.Id)
	fmt.Fprintf(r.W, "%s%s\n", prefix, strings.ReplaceAll(r.SentenceString(s.Tokens, c), "\n", " "))
}

// SentenceString returns the text of the tokens, with the words filling the
// slots of c colored.
func (r *Renderer) SentenceString(tokens []sent.Token, c clause.Clause) string {
	colors := map[int]string{}
	if r.HasColor {
		for _, s := range []clause.Slot{c.Verb, c.Subject, c.Object} {
			if !s.IsNone() {
				colors[s.ID] = kindColor(s.Kind)
			}
		}
	}

	return sentence(tokens, colors)
}

// Tokens writes a table of the tokens of s.
func (r *Renderer) Tokens(s sent.Sentence) {
	tw := tabwriter.NewWriter(r.W, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tTEXT\tLEMMA\tPOS\tTAG\tDEP\tHEAD")
	for _, t := range s.Tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n", t.Index, t.Text, t.Lemma, t.Pos, t.Tag, t.Dep, t.Head)
	}
	tw.Flush()
}

// sentence joins the tokens. Words are ids, the token Index plus one.
func sentence(tokens []sent.Token, colors map[int]string) string {
	var str strings.Builder
	var lastIdx, lastLen int
	for i, token := range tokens {
		l := len([]rune(token.Text))
		text := token.Text
		if c := colors[token.Index+1]; c != "" {
			text = c + text + Off
		}

		if i == 0 {
			str.WriteString(text)
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		// multi token words share the text and the idx of the source: the
		// text is only written once. Without idx data the words are joined
		// by a space.
		diff := token.Idx - lastIdx
		switch {
		case token.Idx == 0 && lastIdx == 0:
			str.WriteString(" " + text)
		case diff > 0:
			str.WriteString(strings.Repeat(" ", max(diff-lastLen, 0)))
			str.WriteString(text)
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return str.String()
}

func tagColor(t string) string {
	switch t {
	case seq.TagVerb:
		return Red
	case seq.TagSubject, seq.TagSubjectClause:
		return Green256
	case seq.TagObject, seq.TagObjectClause:
		return Yellow256
	case seq.None:
		return Gray
	case seq.Separator:
		return Teal
	}
	return ""
}

func kindColor(k clause.Kind) string {
	switch k {
	case clause.Verb:
		return Red
	case clause.Subject, clause.SubjectClause:
		return Green256
	case clause.Object, clause.ObjectClause:
		return Yellow256
	}
	return ""
}

func (r *Renderer) prefix(docId, sentenceId int) string {
	if !r.HasPrefix {
		return ""
	}

	return fmt.Sprintf("[%s %2d %5d] ✍  ", r.title(docId), docId, sentenceId)
}

func (r *Renderer) title(docId int) string {
	title := r.DocNames[docId]
	var part string
	if len(title) <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = title[:20]
	}

	if !r.HasColor {
		return part
	}
	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			return
		}
	}

	r.Format = supported[0]
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
