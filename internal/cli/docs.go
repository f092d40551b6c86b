package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/lcampos/quill/docs"
	"github.com/lcampos/quill/internal/ui"
)

type docsTopic struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse guides bundled with the quill binary",
	Long: `Browse long-form documentation bundled into the quill binary.

Examples:
  quill docs
  quill docs filters`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listBundledTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild quill so bundled docs are available")
		}

		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(topics, &Meta{Count: len(topics)})
				return nil
			}
			fmt.Println(ui.Header("Topics"))
			table := ui.NewTable(2)
			for _, t := range topics {
				table.AddRow("  "+t.ID, ui.Hint(t.Title))
			}
			fmt.Print(table.String())
			fmt.Println(ui.Hint("Read one with 'quill docs <topic>'"))
			return nil
		}

		for _, t := range topics {
			if t.ID == args[0] {
				return showTopic(t)
			}
		}
		return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("unknown topic %q", args[0]), "Run 'quill docs' to list topics")
	},
}

func showTopic(topic docsTopic) error {
	content, err := fs.ReadFile(builtindocs.FS, topic.Path)
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]any{"topic": topic.ID, "content": string(content)}, nil)
		return nil
	}

	display := ui.NewDisplayContext()
	if !display.IsTTY {
		fmt.Print(string(content))
		return nil
	}
	rendered, err := ui.RenderMarkdown(string(content), display.AvailableWidth(ui.MarkdownRenderMargin))
	if err != nil {
		return handleError(ErrInternal, err, "")
	}
	fmt.Print(rendered)
	return nil
}

func listBundledTopics() ([]docsTopic, error) {
	entries, err := fs.ReadDir(builtindocs.FS, "guide")
	if err != nil {
		return nil, err
	}

	var topics []docsTopic
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		fsPath := path.Join("guide", entry.Name())
		id := strings.TrimSuffix(entry.Name(), ".md")
		topics = append(topics, docsTopic{
			ID:    id,
			Title: topicTitle(fsPath, id),
			Path:  fsPath,
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

// topicTitle reads the first heading of a topic, falling back to the id.
func topicTitle(fsPath, id string) string {
	content, err := fs.ReadFile(builtindocs.FS, fsPath)
	if err != nil {
		return id
	}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return id
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
