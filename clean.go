package textpipe

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// CleanOptions controls the text-cleaning steps. The zero value disables
// everything and CleanWith returns the raw text verbatim.
type CleanOptions struct {
	StripHTML          bool // Parse as HTML and keep only text content.
	NormalizeUnicode   bool // Apply Unicode NFC normalization.
	NormalizeDots      bool // Replace horizontal ellipsis with "...".
	NormalizeQuotes    bool // Normalize curly and low quotes to ASCII.
	CollapseWhitespace bool // Collapse whitespace runs to single spaces and trim.
}

// DefaultCleanOptions returns the options used by Doc.Clean: every step
// enabled.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		StripHTML:          true,
		NormalizeUnicode:   true,
		NormalizeDots:      true,
		NormalizeQuotes:    true,
		CollapseWhitespace: true,
	}
}

var (
	dotsRE        = regexp.MustCompile(`…`)
	singleQuoteRE = regexp.MustCompile("[`‘’‛⸂⸃⸌⸍⸜⸝]")
	doubleQuoteRE = regexp.MustCompile(`[„“]|('')|(,,)`)
	whitespaceRE  = regexp.MustCompile(`\s+`)
)

// cleanText applies the selected cleaning steps in a fixed order: HTML
// stripping, NFC normalization, punctuation normalization, whitespace
// collapsing.
func cleanText(raw string, opts CleanOptions) string {
	text := raw
	if opts.StripHTML {
		text = stripHTML(text)
	}
	if opts.NormalizeUnicode {
		text = norm.NFC.String(text)
	}
	if opts.NormalizeDots {
		text = dotsRE.ReplaceAllString(text, "...")
	}
	if opts.NormalizeQuotes {
		text = singleQuoteRE.ReplaceAllString(text, "'")
		text = doubleQuoteRE.ReplaceAllString(text, `"`)
	}
	if opts.CollapseWhitespace {
		text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	}
	return text
}

// stripHTML parses text as an HTML fragment and returns its text content.
// Markup-free input passes through unchanged apart from entity decoding.
func stripHTML(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		// x/net/html recovers from malformed markup; a hard parse error
		// means we are better off leaving the input alone.
		return text
	}

	var sb strings.Builder
	collectText(doc, &sb)
	return sb.String()
}

// collectText walks the parse tree appending text nodes, skipping elements
// that never contribute readable content.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
