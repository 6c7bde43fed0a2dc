package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown removes markdown formatting and returns plain text.
// Announcement descriptions may carry markdown; the text index and the
// listing excerpts both want the plain content.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// Excerpt returns the first maxLen runes of the plain-text rendering of a
// markdown string, cut at a word boundary.
func Excerpt(text string, maxLen int) string {
	plain := StripMarkdown(text)
	plain = strings.Join(strings.Fields(plain), " ")
	if maxLen <= 0 || len(plain) <= maxLen {
		return plain
	}

	cut := plain[:maxLen]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}

// extractText walks the AST and collects text content.
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return
	case *ast.Hardbreak:
		buf.WriteString("\n")
		return
	case *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		// Raw HTML never reaches the index or the UI.
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	if _, ok := node.(*ast.ListItem); ok {
		buf.WriteString("• ")
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List, *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
