// Package export writes pages to local markdown files with YAML frontmatter.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/lcampos/quill/internal/workspace"
)

// Frontmatter is the metadata block written at the top of an exported file.
type Frontmatter struct {
	Title      string            `yaml:"title"`
	ID         string            `yaml:"id"`
	URL        string            `yaml:"url,omitempty"`
	Created    string            `yaml:"created,omitempty"`
	LastEdited string            `yaml:"last_edited,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// PageResult describes one exported page.
type PageResult struct {
	// FilePath is the absolute path to the written file.
	FilePath string

	// Slug is the filename stem derived from the page title.
	Slug string
}

// WritePage renders a page and its blocks to <outDir>/<slug>.md.
// The schema, when non-nil, selects which properties land in frontmatter;
// otherwise every renderable property is included.
func WritePage(page *workspace.Page, schema *workspace.Schema, blocks []workspace.Block, outDir string) (*PageResult, error) {
	if page == nil {
		return nil, fmt.Errorf("page is required")
	}
	if outDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	title := page.Title()
	s := FileSlug(title)
	if s == "" {
		s = page.ID
	}

	var content strings.Builder
	content.WriteString("---\n")
	fm, err := yaml.Marshal(buildFrontmatter(page, schema, title))
	if err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	content.Write(fm)
	content.WriteString("---\n\n")

	if body := RenderBlocks(blocks); body != "" {
		content.WriteString(body)
	}

	filePath := filepath.Join(outDir, s+".md")
	if err := os.WriteFile(filePath, []byte(content.String()), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	return &PageResult{FilePath: filePath, Slug: s}, nil
}

func buildFrontmatter(page *workspace.Page, schema *workspace.Schema, title string) Frontmatter {
	fm := Frontmatter{
		Title:      title,
		ID:         page.ID,
		URL:        page.URL,
		Created:    page.CreatedTime,
		LastEdited: page.LastEditedTime,
	}

	props := make(map[string]string)
	if schema != nil {
		for _, p := range schema.Properties() {
			if p.Type == workspace.TypeTitle {
				continue
			}
			if v := page.PropertyText(p.Name); v != "" {
				props[p.Name] = v
			}
		}
	} else {
		for name, raw := range page.Properties {
			var probe struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(raw, &probe); err != nil || probe.Type == "title" {
				continue
			}
			if v := page.PropertyText(name); v != "" {
				props[name] = v
			}
		}
	}
	if len(props) > 0 {
		fm.Properties = props
	}
	return fm
}

// FileSlug derives a filesystem-safe filename stem from a page title.
func FileSlug(title string) string {
	s := goslug.Make(title)
	if s == "" {
		s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
	}
	return s
}

// RenderBlocks converts blocks back into markdown text. Unknown block types
// degrade to their plain text so no content is silently dropped.
func RenderBlocks(blocks []workspace.Block) string {
	var sb strings.Builder
	numbered := 0
	for _, b := range blocks {
		if b.Type == "numbered_list_item" {
			numbered++
		} else {
			numbered = 0
		}
		renderBlock(&sb, &b, numbered)
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, b *workspace.Block, ordinal int) {
	switch b.Type {
	case "heading_1":
		fmt.Fprintf(sb, "# %s\n\n", b.PlainText())
	case "heading_2":
		fmt.Fprintf(sb, "## %s\n\n", b.PlainText())
	case "heading_3":
		fmt.Fprintf(sb, "### %s\n\n", b.PlainText())
	case "paragraph":
		if txt := b.PlainText(); txt != "" {
			fmt.Fprintf(sb, "%s\n\n", txt)
		}
	case "bulleted_list_item":
		fmt.Fprintf(sb, "- %s\n", b.PlainText())
	case "numbered_list_item":
		fmt.Fprintf(sb, "%d. %s\n", ordinal, b.PlainText())
	case "to_do":
		mark := " "
		if blockChecked(b) {
			mark = "x"
		}
		fmt.Fprintf(sb, "- [%s] %s\n", mark, b.PlainText())
	case "quote":
		fmt.Fprintf(sb, "> %s\n\n", b.PlainText())
	case "code":
		fmt.Fprintf(sb, "```%s\n%s\n```\n\n", blockLanguage(b), b.PlainText())
	case "divider":
		sb.WriteString("---\n\n")
	default:
		if txt := b.PlainText(); txt != "" {
			fmt.Fprintf(sb, "%s\n\n", txt)
		}
	}
}

func blockChecked(b *workspace.Block) bool {
	var probe struct {
		Checked bool `json:"checked"`
	}
	if err := json.Unmarshal(b.Content, &probe); err != nil {
		return false
	}
	return probe.Checked
}

func blockLanguage(b *workspace.Block) string {
	var probe struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal(b.Content, &probe); err != nil {
		return ""
	}
	if probe.Language == "plain text" {
		return ""
	}
	return probe.Language
}
