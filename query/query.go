package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/segvso/clause"
	"github.com/revelaction/segvso/dep"
	"github.com/revelaction/segvso/render"
	sent "github.com/revelaction/segvso/sentence"
	"github.com/revelaction/segvso/seq"
	"github.com/revelaction/segvso/storage"
)

const (
	quit = "quit"

	// tokensPrefix shows the token table before the extraction
	tokensPrefix = "tokens"
)

// Handler reads lines in a prompt:
//
//	<v> said <s> he <co> left <s> she <o> <none>    decode a tagged sequence
//	3 12                                           extract sentence 12 of doc 3
//	tokens 3 12                                    same, with the token table
type Handler struct {
	DocRepo   storage.DocReader
	Extractor *clause.Extractor
	Pos       dep.PosField
	Renderer  *render.Renderer
}

func NewHandler(dr storage.DocReader, e *clause.Extractor, pos dep.PosField, r *render.Renderer) *Handler {
	return &Handler{
		DocRepo:   dr,
		Extractor: e,
		Pos:       pos,
		Renderer:  r,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	docs, err := h.DocRepo.List()
	if err != nil {
		return err
	}

	for _, d := range docs {
		h.Renderer.AddDocName(d.Id, d.Title)
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", completer(docs),
			prompt.OptionTitle("segvso query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.W, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Renderer.W, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		history = append(history, in)

		done, err := h.Eval(in)
		if done {
			return nil
		}

		if err != nil {
			fmt.Fprintf(h.Renderer.W, "🔧 %v\n", err)
		}
	}
}

// Eval runs one line of input. It returns true for the quit command.
func (h *Handler) Eval(in string) (bool, error) {
	in = strings.TrimSpace(in)
	if in == quit {
		return true, nil
	}

	if in == "" {
		return false, nil
	}

	if strings.HasPrefix(in, seq.TagVerb) {
		h.Renderer.Group(0, 0, in)
		return false, nil
	}

	fields := strings.Fields(in)
	withTokens := fields[0] == tokensPrefix
	if withTokens {
		fields = fields[1:]
	}

	docId, sentId, err := parseIds(fields)
	if err != nil {
		return false, err
	}

	return false, h.sentence(docId, sentId, withTokens)
}

func (h *Handler) sentence(docId, sentId int, withTokens bool) error {
	doc, err := h.DocRepo.Read(docId)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return fmt.Errorf("doc %d has no sentence %d: %w", docId, sentId, storage.ErrNotFound)
	}

	s := doc.Sentences[sentId]
	s.DocId, s.Id = docId, sentId

	if withTokens {
		h.Renderer.Tokens(s)
	}

	c := h.Extractor.Extract(dep.FromTokens(s.Tokens, h.Pos))
	h.Renderer.Sentence(s, c)
	h.Renderer.Group(docId, sentId, seq.Encode(c))
	h.Renderer.Clause(c)
	return nil
}

func parseIds(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, errors.New("expected a tagged sequence or <doc id> <sentence id>")
	}

	docId, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("doc id %q: %w", fields[0], err)
	}

	sentId, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("sentence id %q: %w", fields[1], err)
	}

	return docId, sentId, nil
}

var tagSuggestions = []prompt.Suggest{
	{Text: seq.TagVerb, Description: "verb"},
	{Text: seq.TagSubject, Description: "subject"},
	{Text: seq.TagSubjectClause, Description: "subject clause"},
	{Text: seq.TagObject, Description: "object"},
	{Text: seq.TagObjectClause, Description: "object clause"},
	{Text: seq.None, Description: "not found"},
	{Text: seq.Separator, Description: "clause separator"},
}

func completer(docs []sent.Doc) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		word := in.GetWordBeforeCursor()
		if word == "" {
			return []prompt.Suggest{}
		}

		if strings.HasPrefix(word, "<") {
			return prompt.FilterHasPrefix(tagSuggestions, word, false)
		}

		// doc ids, only in the first position
		if strings.Contains(strings.TrimSpace(in.TextBeforeCursor()), " ") {
			return []prompt.Suggest{}
		}

		s := []prompt.Suggest{}
		for _, d := range docs {
			id := strconv.Itoa(d.Id)
			if strings.HasPrefix(id, word) {
				s = append(s, prompt.Suggest{Text: id, Description: "🔖 " + d.Title})
			}
		}
		return s
	}
}
