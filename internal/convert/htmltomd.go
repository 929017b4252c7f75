// Package convert turns exported HTML reference trees into Markdown pages the
// site generator accepts.
package convert

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ToMarkdown converts an HTML document to Markdown. Block structure is kept
// for headings, paragraphs, lists and preformatted code; tables and unknown
// containers are flattened to their text.
func ToMarkdown(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var b strings.Builder
	renderBlock(&b, doc)
	return b.String(), nil
}

func renderBlock(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "head", "nav":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", level), inlineText(n))
			return
		case "p":
			if text := inlineText(n); text != "" {
				b.WriteString(text + "\n\n")
			}
			return
		case "ul", "ol":
			renderList(b, n, n.Data == "ol")
			b.WriteString("\n")
			return
		case "pre":
			b.WriteString("```\n" + strings.TrimRight(nodeText(n), "\n") + "\n```\n\n")
			return
		case "br":
			b.WriteString("\n")
			return
		}
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			b.WriteString(text + "\n\n")
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderBlock(b, c)
	}
}

func renderList(b *strings.Builder, n *html.Node, ordered bool) {
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		i++
		if ordered {
			fmt.Fprintf(b, "%d. %s\n", i, inlineText(c))
		} else {
			fmt.Fprintf(b, "- %s\n", inlineText(c))
		}
	}
}

// inlineText renders a node's content as a single Markdown line: links become
// link syntax, code spans get backticks, emphasis is kept, everything else is
// flattened to text.
func inlineText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "a":
				if href := attr(n, "href"); href != "" {
					fmt.Fprintf(&b, "[%s](%s)", strings.TrimSpace(nodeText(n)), href)
					return
				}
			case "code":
				b.WriteString("`" + nodeText(n) + "`")
				return
			case "strong", "b":
				b.WriteString("**" + strings.TrimSpace(nodeText(n)) + "**")
				return
			case "em", "i":
				b.WriteString("*" + strings.TrimSpace(nodeText(n)) + "*")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
