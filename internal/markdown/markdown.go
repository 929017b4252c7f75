// Package markdown provides lightweight analysis of generated Markdown.
//
// This is an analysis API; it does not attempt to re-render Markdown.
package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is a link-like construct extracted from a Markdown body.
type Link struct {
	Destination string
	Title       string
}

// Heading is one heading with its resolved anchor ID.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// ExtractLinks parses a Markdown body and extracts inline and auto links.
func ExtractLinks(body []byte) []Link {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Destination: string(node.URL(body))})
		case *gmast.Link:
			links = append(links, Link{Destination: string(node.Destination), Title: string(node.Title)})
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// explicit VitePress-style heading IDs: "### Title {#anchor}"
var explicitAnchorRe = regexp.MustCompile(`\{#([^}]+)\}\s*$`)

// ExtractHeadings parses a Markdown body and returns all headings with their
// anchors. Explicit `{#id}` suffixes take precedence over derived anchors.
func ExtractHeadings(body []byte) []Heading {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		txt := string(nodeText(h, body))
		anchor := ""
		if m := explicitAnchorRe.FindStringSubmatch(txt); m != nil {
			anchor = m[1]
			txt = strings.TrimSpace(explicitAnchorRe.ReplaceAllString(txt, ""))
		} else {
			anchor = DeriveAnchor(txt)
		}
		headings = append(headings, Heading{Level: h.Level, Text: txt, Anchor: anchor})
		return gmast.WalkSkipChildren, nil
	})
	return headings
}

// DeriveAnchor approximates the static-site generator's derived heading IDs:
// lower-cased, spaces to hyphens, punctuation dropped.
func DeriveAnchor(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}

func nodeText(n gmast.Node, body []byte) []byte {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			out = append(out, t.Value(body)...)
		} else {
			out = append(out, nodeText(c, body)...)
		}
	}
	return out
}
