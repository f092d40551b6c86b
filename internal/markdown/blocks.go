// Package markdown converts markdown documents into block wire objects
// ready for the append-children endpoint.
//
// Parsing is goldmark-first: the markdown AST drives block construction, so
// fenced code, quotes, and nested list structure are handled by the parser
// rather than by line-level heuristics.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ToBlocks parses markdown content and returns block objects in wire shape,
// one per top-level markdown block. List items become individual
// bulleted_list_item / numbered_list_item blocks.
func ToBlocks(content []byte) ([]map[string]any, error) {
	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var blocks []map[string]any
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, convertNode(n, content)...)
	}
	return blocks, nil
}

func convertNode(n ast.Node, content []byte) []map[string]any {
	switch node := n.(type) {
	case *ast.Heading:
		return []map[string]any{headingBlock(node, content)}
	case *ast.Paragraph:
		return []map[string]any{textBlock("paragraph", nodeText(node, content))}
	case *ast.Blockquote:
		return []map[string]any{textBlock("quote", nodeText(node, content))}
	case *ast.FencedCodeBlock:
		return []map[string]any{codeBlock(node, content)}
	case *ast.CodeBlock:
		return []map[string]any{codeBlockPlain(node, content)}
	case *ast.ThematicBreak:
		return []map[string]any{{"object": "block", "type": "divider", "divider": map[string]any{}}}
	case *ast.List:
		return listBlocks(node, content)
	default:
		// Unknown block kinds degrade to paragraphs so no content is lost.
		if txt := nodeText(n, content); txt != "" {
			return []map[string]any{textBlock("paragraph", txt)}
		}
		return nil
	}
}

func headingBlock(h *ast.Heading, content []byte) map[string]any {
	// The service supports three heading levels; deeper headings clamp to 3.
	level := h.Level
	if level > 3 {
		level = 3
	}
	typ := [...]string{"heading_1", "heading_2", "heading_3"}[level-1]
	return textBlock(typ, nodeText(h, content))
}

func codeBlock(cb *ast.FencedCodeBlock, content []byte) map[string]any {
	lang := "plain text"
	if info := cb.Language(content); len(info) > 0 {
		lang = string(info)
	}
	b := textBlock("code", rawLines(cb, content))
	b["code"].(map[string]any)["language"] = lang
	return b
}

func codeBlockPlain(cb *ast.CodeBlock, content []byte) map[string]any {
	b := textBlock("code", rawLines(cb, content))
	b["code"].(map[string]any)["language"] = "plain text"
	return b
}

func listBlocks(list *ast.List, content []byte) []map[string]any {
	typ := "bulleted_list_item"
	if list.IsOrdered() {
		typ = "numbered_list_item"
	}

	var blocks []map[string]any
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var itemText string
		var children []map[string]any
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch sub := c.(type) {
			case *ast.List:
				children = append(children, listBlocks(sub, content)...)
			default:
				if itemText != "" {
					itemText += " "
				}
				itemText += nodeText(c, content)
			}
		}
		b := textBlock(typ, itemText)
		if len(children) > 0 {
			b[typ].(map[string]any)["children"] = children
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// textBlock builds the generic {type: {rich_text: [...]}} wire shape.
func textBlock(typ, content string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   typ,
		typ: map[string]any{
			"rich_text": []map[string]any{
				{
					"type": "text",
					"text": map[string]any{"content": content},
				},
			},
		},
	}
}

// nodeText collects the plain text of a node and its descendants. Goldmark
// splits text at inline markers, so spans are concatenated in walk order.
func nodeText(n ast.Node, content []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(content))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(content))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// rawLines reassembles the verbatim lines of a code block.
func rawLines(n ast.Node, content []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(content))
	}
	return strings.TrimRight(sb.String(), "\n")
}
