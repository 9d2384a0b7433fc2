package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/urithi-ke/urithi/internal/model"
)

// ParseHTMLTable reads fact rows from the first <table> in an HTML document.
// The first row supplies column headers, matched by normalized name like the
// CSV parser. Pages without a table yield no rows.
func ParseHTMLTable(r io.Reader) ([]model.RawFact, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := findFirst(doc, "table")
	if table == nil {
		return []model.RawFact{}, nil
	}

	var grid [][]string
	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			grid = append(grid, rowCells(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(table)

	if len(grid) < 2 {
		return []model.RawFact{}, nil
	}

	index := make(map[string]int, len(grid[0]))
	for i, name := range grid[0] {
		index[normalizeColumn(name)] = i
	}

	var rows []model.RawFact
	for _, record := range grid[1:] {
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		rows = append(rows, model.RawFact{
			CulturalGroup:        cell(colCulturalGroup),
			Category:             cell(colCategory),
			Title:                cell(colTitle),
			Description:          cell(colDescription),
			CulturalSignificance: cell(colCulturalSignificance),
			Region:               cell(colRegion),
		})
	}

	return rows, nil
}

// rowCells collects the trimmed text of each th/td in a table row
func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	return cells
}

// nodeText concatenates the text nodes under n, skipping scripts and styles
func nodeText(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return b.String()
}

// findFirst returns the first element with the given tag, depth-first
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
