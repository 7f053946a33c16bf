// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mesh-intelligence/yatm/pkg/issue"
)

// Document renders issues into one Markdown document, one top-level
// section per issue, preceded by a table of contents of the sections.
func Document(title string, issues []issue.Local) string {
	var b strings.Builder
	for i, li := range issues {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# %s\n\n", li.Title)
		if len(li.Labels) > 0 {
			quoted := make([]string, len(li.Labels))
			for j, l := range li.Labels {
				quoted[j] = "`" + l + "`"
			}
			fmt.Fprintf(&b, "Labels: %s\n\n", strings.Join(quoted, ", "))
		}
		b.WriteString(demote(li.Body))
	}
	return PrependTableOfContents(b.String(), TOCOptions{Title: title, TitleLevel: 1, MaxDepth: 1})
}

// demote pushes every heading of body one level down so issue sections
// nest under their title. Fenced code is left alone.
func demote(body string) string {
	lines := strings.Split(body, "\n")
	inCode := false
	for i, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCode = !inCode
			continue
		}
		if !inCode && strings.HasPrefix(line, "#") {
			lines[i] = "#" + line
		}
	}
	return strings.Join(lines, "\n")
}

// Preview renders markdown for a terminal of the given width.
func Preview(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
