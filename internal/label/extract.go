// Package label extracts ingredient text from product labels supplied as
// web pages or PDF files, so users can point the analyzer at a product
// listing instead of retyping the INCI list.
package label

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// FromHTML extracts the visible text of an HTML document, one line per
// text node. Script, style, and head content is skipped.
func FromHTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimRight(b.String(), "\n"), nil
}

// FromPDF extracts the plain text of the PDF at path.
func FromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return b.String(), nil
}

// IngredientSection narrows extracted label text down to the ingredient
// declaration when one is present. Product pages bury the INCI list in
// marketing copy; the section typically starts with an "Ingredients"
// heading and runs to the next blank line. Returns the full text when no
// heading is found.
func IngredientSection(text string) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, "ingredients")
	if idx == -1 {
		return text
	}

	section := text[idx:]
	// Drop the heading itself up to a colon or line break.
	if cut := strings.IndexAny(section, ":\n"); cut != -1 {
		section = section[cut+1:]
	}
	// Stop at the first blank line after the list starts.
	if end := strings.Index(section, "\n\n"); end != -1 {
		section = section[:end]
	}

	section = strings.TrimSpace(section)
	if section == "" {
		return text
	}
	return section
}
