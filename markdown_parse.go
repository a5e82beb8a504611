package tabtex

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MarkdownToArray converts a Markdown table, such as one produced by
// [MarkdownTable], into a LaTeX array via [LatexArray]. The Markdown header
// becomes the first array row; any [WithTitle] option is ignored.
func MarkdownToArray(markdown string, opts ...Option) (string, error) {
	o := newOptions(opts)
	parse := ParseMarkdownTable
	if o.gfm {
		parse = ParseGFMTable
	}
	rows, err := parse(markdown)
	if err != nil {
		return "", err
	}
	return LatexArray(rows, append(opts[:len(opts):len(opts)], withoutTitle)...)
}

func withoutTitle(o *options) {
	o.title = nil
	o.hasTitle = false
}

// ParseMarkdownTable splits a Markdown table into cells. Line 1 is taken to
// be the alignment row and dropped; every other line is split on "|" as is,
// so leading or trailing pipes yield empty edge cells. CRLF line endings and
// one trailing newline are tolerated.
func ParseMarkdownTable(markdown string) ([][]string, error) {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.TrimSuffix(markdown, "\n")
	lines := strings.Split(markdown, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a header and separator line, got %d line(s)", ErrMalformedMarkdown, len(lines))
	}

	rows := make([][]string, 0, len(lines)-1)
	for i, line := range lines {
		if i == 1 {
			continue
		}
		rows = append(rows, strings.Split(line, "|"))
	}
	return rows, nil
}

var gfm = goldmark.New(goldmark.WithExtensions(extension.Table))

// ParseGFMTable returns the cells of the first GitHub-flavored Markdown
// table in markdown, header row first. Cell text is the concatenated inline
// text with emphasis and code markers removed, backslash escapes and entity
// references resolved, and surrounding space trimmed. An escaped \| is a
// literal pipe, also inside code spans.
func ParseGFMTable(markdown string) ([][]string, error) {
	src := []byte(markdown)
	doc := gfm.Parser().Parse(text.NewReader(src))

	var table *east.Table
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*east.Table); ok && entering {
			table = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no table found", ErrMalformedMarkdown)
	}

	var rows [][]string
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, strings.TrimSpace(inlineText(cell, src)))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(textValue(t, src))
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.Label(src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// textValue resolves a text segment the way goldmark's HTML writer does.
// Code span content is literal apart from the table's escaped pipe.
func textValue(t *ast.Text, src []byte) []byte {
	v := t.Segment.Value(src)
	if _, ok := t.Parent().(*ast.CodeSpan); ok {
		return bytes.ReplaceAll(v, []byte(`\|`), []byte("|"))
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}
