package detect

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Normalize strips non-content nodes from the document so rules never match
// markup hidden inside scripts, styles, noscript blocks, or comments. The
// surviving nodes keep their attributes and sibling order.
func Normalize(doc *goquery.Document) {
	doc.Find("script, style, noscript").Remove()
	for _, n := range doc.Nodes {
		removeComments(n)
	}
}

func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}
