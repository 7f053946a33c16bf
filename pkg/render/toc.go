// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNoHeadings is returned by TableOfContents for a document without
// headings in range.
var ErrNoHeadings = errors.New("no headings found in the document")

// TOCOptions tunes TableOfContents. Zero values select the defaults:
// every level from 1 down, two spaces per indent, no title.
type TOCOptions struct {
	Title           string
	TitleLevel      int
	MinDepth        int
	MaxDepth        int
	SpacesPerIndent int
}

// Slugify turns heading text into a GitHub style anchor: lower case,
// spaces to dashes, everything except letters, digits and dashes
// dropped.
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune('-')
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TableOfContents returns a nested list linking every ATX heading of
// markdown. Headings inside fenced code blocks are skipped.
func TableOfContents(markdown string, opts TOCOptions) (string, error) {
	minDepth := opts.MinDepth
	if minDepth <= 0 {
		minDepth = 1
	}
	spaces := opts.SpacesPerIndent
	if spaces <= 0 {
		spaces = 2
	}

	var b strings.Builder
	inCode := false
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "```") {
			inCode = !inCode
		}
		if inCode || !strings.HasPrefix(line, "#") {
			continue
		}
		level := len(line) - len(strings.TrimLeft(line, "#"))
		if level < minDepth || (opts.MaxDepth > 0 && level > opts.MaxDepth) {
			continue
		}
		title := strings.TrimSpace(line[level:])
		fmt.Fprintf(&b, "%s- [%s](#%s)\n", strings.Repeat(" ", (level-minDepth)*spaces), title, Slugify(title))
	}
	if b.Len() == 0 {
		return "", ErrNoHeadings
	}

	toc := b.String()
	if opts.Title != "" {
		title := opts.Title
		if opts.TitleLevel > 0 {
			title = strings.Repeat("#", opts.TitleLevel) + " " + title
		}
		toc = title + "\n\n" + toc
	}
	return toc, nil
}

// PrependTableOfContents returns markdown with its table of contents
// in front, or markdown unchanged when it has no headings.
func PrependTableOfContents(markdown string, opts TOCOptions) string {
	toc, err := TableOfContents(markdown, opts)
	if err != nil {
		return markdown
	}
	return toc + "\n\n" + markdown
}
