package htmlutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CleanText renders the text of a selection roughly the way a browser
// would: non-printable runes (nbsp padding included) become plain
// spaces, surrounding whitespace is trimmed and inner runs collapse to
// a single space. stat tables pad their cells enough that a raw
// .Text() is rarely usable directly.
func CleanText(sel *goquery.Selection) string {
	var out strings.Builder
	for _, node := range sel.Nodes {
		appendText(&out, node)
	}
	text := strings.TrimSpace(out.String())
	return innerWhitespace.ReplaceAllString(text, " ")
}

func appendText(out *strings.Builder, node *html.Node) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		for _, r := range node.Data {
			if unicode.IsPrint(r) {
				out.WriteRune(r)
			} else {
				out.WriteRune(' ')
			}
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		appendText(out, child)
	}
}
