// Package report renders an HTML summary of an atlas conversion.
package report

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Summary is the data shown in a report.
type Summary struct {
	Input    string
	Output   string
	Pages    []Page
	Warnings []string
	Failed   bool
}

// Page is one row of the page table.
type Page struct {
	Name                        string
	Scale                       float64
	Width, Height               int // as packed
	WrittenWidth, WrittenHeight int // after scale compensation
	Regions                     int
	Texture                     string // texture outcome, e.g. "scaled"
}

// Write renders s as a standalone HTML document.
func Write(w io.Writer, s Summary) error {
	if err := html.Render(w, build(s)); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

func build(s Summary) *html.Node {
	status := "completed"
	if s.Failed {
		status = "completed with errors"
	}

	body := element(atom.Body,
		element(atom.H1, text("Atlas conversion")),
		element(atom.P, text("Input: "+s.Input)),
		element(atom.P, text("Output: "+s.Output)),
		element(atom.P, text("Status: "+status)),
		pageTable(s.Pages),
	)
	if len(s.Warnings) > 0 {
		list := element(atom.Ul)
		for _, w := range s.Warnings {
			list.AppendChild(element(atom.Li, text(w)))
		}
		body.AppendChild(element(atom.H2, text("Warnings")))
		body.AppendChild(list)
	}

	head := element(atom.Head, element(atom.Title, text("Atlas conversion report")))
	root := element(atom.Html, head, body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc
}

func pageTable(pages []Page) *html.Node {
	header := element(atom.Tr)
	for _, h := range []string{"Page", "Scale", "Packed size", "Written size", "Regions", "Texture"} {
		header.AppendChild(element(atom.Th, text(h)))
	}

	table := element(atom.Table, element(atom.Thead, header))
	rows := element(atom.Tbody)
	for _, p := range pages {
		rows.AppendChild(element(atom.Tr,
			cell(p.Name),
			cell(strconv.FormatFloat(p.Scale, 'g', -1, 64)),
			cell(size(p.Width, p.Height)),
			cell(size(p.WrittenWidth, p.WrittenHeight)),
			cell(strconv.Itoa(p.Regions)),
			cell(p.Texture),
		))
	}
	table.AppendChild(rows)
	return table
}

func size(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

func cell(s string) *html.Node {
	return element(atom.Td, text(s))
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
