package cmd

import (
	"os"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadmeListsEveryCommand keeps the README in sync with the code: every
// registered subcommand must be documented in the Commands section.
func TestReadmeListsEveryCommand(t *testing.T) {
	content, err := os.ReadFile("../README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	mdParser := goldmark.DefaultParser()
	root := mdParser.Parse(text.NewReader(content))

	// Collect every inline code span of the document.
	documented := make(map[string]bool)
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if cs, ok := n.(*ast.CodeSpan); ok {
			documented[string(cs.Text(content))] = true
		}
		return ast.WalkContinue, nil
	})

	for _, name := range Names() {
		if !documented[name] {
			t.Errorf("command %q is not documented in README.md", name)
		}
	}
}
