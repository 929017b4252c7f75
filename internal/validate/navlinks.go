package validate

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// extractHrefs parses an HTML document and collects every anchor href.
func extractHrefs(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return hrefs, nil
}

// linksToSection reports whether any href points into the given nav section.
func linksToSection(hrefs []string, section string) bool {
	for _, href := range hrefs {
		trimmed := strings.TrimPrefix(href, "/")
		if trimmed == section || strings.HasPrefix(trimmed, section+"/") || strings.HasPrefix(trimmed, section+".html") {
			return true
		}
	}
	return false
}
