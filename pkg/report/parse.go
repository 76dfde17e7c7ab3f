package report

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML reads an annotated report back into its structural form.
// It accepts any HTML document containing hw_page elements, so reports
// survive being edited or embedded in other pages.
func ParseHTML(data []byte) (Document, error) {
	var result Document

	root, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return result, err
	}

	result.Title = findTitle(root)

	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "hw_page") {
			result.Pages = append(result.Pages, parsePage(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(root)

	if len(result.Pages) == 0 {
		return result, fmt.Errorf("no hw_page elements found in report data")
	}
	return result, nil
}

func parsePage(n *html.Node) DocumentPage {
	page := DocumentPage{}
	if v := attr(n, "data-page"); v != "" {
		page.Number, _ = strconv.Atoi(v)
	}

	var findLines func(*html.Node)
	findLines = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "hw_line") {
			page.Lines = append(page.Lines, parseLine(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findLines(c)
		}
	}
	findLines(n)
	return page
}

func parseLine(n *html.Node) DocumentLine {
	line := DocumentLine{
		Tag:        classBesides(n, "hw_line"),
		Confidence: confidenceFromTitle(attr(n, "title")),
	}

	var findWords func(*html.Node)
	findWords = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "hw_word") {
			line.Words = append(line.Words, DocumentWord{
				Text:       textContent(n),
				Verdict:    classBesides(n, "hw_word"),
				Confidence: confidenceFromTitle(attr(n, "title")),
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findWords(c)
		}
	}
	findWords(n)
	return line
}

// confidenceFromTitle extracts the value of a "conf 0.95" title
// property, returning 0 when absent
func confidenceFromTitle(title string) float64 {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 2 && fields[0] == "conf" {
			conf, err := strconv.ParseFloat(fields[1], 64)
			if err == nil {
				return conf
			}
		}
	}
	return 0
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// classBesides returns the first class on the node other than the
// given structural class
func classBesides(n *html.Node, structural string) string {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c != structural {
			return c
		}
	}
	return ""
}

func textContent(n *html.Node) string {
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
	return strings.TrimSpace(b.String())
}

func findTitle(root *html.Node) string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			title = textContent(n)
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return title
}
