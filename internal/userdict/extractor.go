package userdict

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Strategy names an extraction strategy.
type Strategy string

const (
	StrategyRegex Strategy = "regex"
	StrategyHTML  Strategy = "html"
)

var (
	ErrUnknownStrategy = errors.New("unknown extraction strategy")

	AllStrategies = []Strategy{StrategyRegex, StrategyHTML}
)

var (
	// rowPattern matches one rendered line of a file in a code-hosting blob view.
	rowPattern  = regexp.MustCompile(`<td id="LC\d+" class="blob-code blob-code-inner js-file-line">(.*?)</td>`)
	lineIDRegex = regexp.MustCompile(`^LC\d+$`)
)

// ExtractResult holds the entries recovered from a page in document order.
// Matched counts every recognized row; Malformed counts the rows among them that were dropped.
type ExtractResult struct {
	Entries   []Entry
	Matched   int
	Malformed int
}

func (r *ExtractResult) add(text string) {
	r.Matched++
	entry, ok := splitRow(text)
	if !ok {
		r.Malformed++
		slog.Default().Debug("skip malformed row", "text", text)
		return
	}
	r.Entries = append(r.Entries, entry)
}

type Extractor interface {
	Extract(body string) ExtractResult
}

func NewExtractor(strategy Strategy) (Extractor, error) {
	switch strategy {
	case StrategyRegex:
		return RegexExtractor{}, nil
	case StrategyHTML:
		return HTMLExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// RegexExtractor matches row fragments with a single pattern over the raw markup.
// A cell is matched wherever it appears, even outside a table. Its text is taken
// verbatim up to the closing tag, so nested tags stay part of the row, and a cell
// spanning a literal line break is not matched at all.
type RegexExtractor struct{}

func (RegexExtractor) Extract(body string) ExtractResult {
	result := ExtractResult{
		Entries: []Entry{},
	}
	for _, match := range rowPattern.FindAllStringSubmatch(body, -1) {
		result.add(html.UnescapeString(match[1]))
	}
	return result
}

// HTMLExtractor walks the parsed document and reads the text of every line cell.
// Cells are only recognized where the HTML parser keeps them, i.e. inside a table.
// Nested tags are dropped and only their text is kept. A cell spanning a literal
// line break is matched and counted as malformed.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(body string) ExtractResult {
	result := ExtractResult{
		Entries: []Entry{},
	}
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		slog.Default().Debug("html.Parse failed", "error", err)
		return result
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if isLineCell(n) {
			var sb strings.Builder
			collectText(n, &sb)
			result.add(sb.String())
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return result
}

func isLineCell(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Td {
		return false
	}
	var hasID, hasClass bool
	for _, attr := range n.Attr {
		switch attr.Key {
		case "id":
			hasID = lineIDRegex.MatchString(attr.Val)
		case "class":
			hasClass = containsField(attr.Val, "js-file-line")
		}
	}
	return hasID && hasClass
}

func containsField(s, field string) bool {
	for _, f := range strings.Fields(s) {
		if f == field {
			return true
		}
	}
	return false
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// splitRow splits a row at its first whitespace run. Everything after it, minus
// trailing whitespace, is the code.
func splitRow(text string) (Entry, bool) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return Entry{}, false
	}
	display := text[:i]
	code := strings.TrimRightFunc(strings.TrimLeftFunc(text[i:], unicode.IsSpace), unicode.IsSpace)

	entry, err := NewEntry(display, code)
	if err != nil {
		return Entry{}, false
	}
	return entry, true
}
