package xmldoc

import (
	"encoding/xml"
	"io"
	"regexp"
	"strings"
)

// NoDescription is rendered when a member carries no summary.
const NoDescription = "No description available"

var (
	seeCrefRe  = regexp.MustCompile(`&lt;see cref="[TMP]:([^"]+)"\s*/&gt;`)
	paramRefRe = regexp.MustCompile(`&lt;paramref name="([^"]+)"\s*/&gt;`)
	codeRe     = regexp.MustCompile(`(?s)<code>(.*?)</code>`)
	slashesRe  = regexp.MustCompile(`(?m)^\s*///`)
)

// CleanText normalizes documentation text for Markdown embedding: whitespace
// runs collapse to single spaces, angle brackets are escaped so generic-type
// syntax is not taken for markup by the site renderer, and the common inline
// doc tags are rewritten to Markdown code spans.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.Join(strings.Fields(text), " ")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	// Inline tags survive the escape pass as entities; convert them after.
	text = strings.ReplaceAll(text, "&lt;c&gt;", "`")
	text = strings.ReplaceAll(text, "&lt;/c&gt;", "`")
	text = seeCrefRe.ReplaceAllString(text, "`$1`")
	text = paramRefRe.ReplaceAllString(text, "`$1`")
	return text
}

// cleanSummary applies CleanText and substitutes the placeholder for missing
// or empty summaries.
func cleanSummary(text string) string {
	cleaned := CleanText(text)
	if cleaned == "" {
		return NoDescription
	}
	return cleaned
}

// ExtractCodeBlocks finds <code> regions in raw inner XML and re-emits them as
// fenced Markdown code blocks with a best-effort language tag.
func ExtractCodeBlocks(innerXML string) string {
	var b strings.Builder
	for _, match := range codeRe.FindAllStringSubmatch(innerXML, -1) {
		code := slashesRe.ReplaceAllString(match[1], "")
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		b.WriteString("\n```")
		b.WriteString(guessLanguage(code))
		b.WriteString("\n")
		b.WriteString(code)
		b.WriteString("\n```\n")
	}
	return b.String()
}

// guessLanguage picks a fence language from common keyword tokens.
func guessLanguage(code string) string {
	for _, kw := range []string{"public", "class", "using", "await", "var"} {
		if strings.Contains(code, kw) {
			return "csharp"
		}
	}
	return ""
}

// flattenXML returns all character data of an XML fragment, including text
// nested inside child elements (inline code markers and the like).
func flattenXML(innerXML string) string {
	dec := xml.NewDecoder(strings.NewReader("<x>" + innerXML + "</x>"))
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// The fragment came from a document that already parsed; treat
			// residual errors as end of usable content.
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			b.Write(cd)
		}
	}
	return b.String()
}
