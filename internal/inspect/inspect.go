// seehuhn.de/go/servicesheet - print blank service sheets as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package inspect reads a PDF file back and summarises the parts which are
// relevant for checking a generated service sheet.
package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/scanner"
	"seehuhn.de/go/pdf/pagetree"
)

// Summary describes a PDF file and the content stream of its first page.
type Summary struct {
	Version  pdf.Version
	NumPages int

	// MediaBox is the page size of the first page.
	MediaBox *pdf.Rectangle

	Title string
	Lang  string

	// Ops counts the content stream operators of the first page.
	Ops map[string]int

	// Fonts counts the "Tf" operators of the first page by font name
	// (the BaseFont entry of the font dictionary).
	Fonts map[string]int

	// HasMetadata is true if the catalog references an XMP stream.
	HasMetadata bool
}

// File opens the named PDF file and summarises it.
func File(fname string) (*Summary, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Read(r)
}

// Read summarises the PDF file r.
func Read(r pdf.Getter) (*Summary, error) {
	meta := r.GetMeta()
	res := &Summary{
		Version: meta.Version,
		Ops:     make(map[string]int),
		Fonts:   make(map[string]int),
	}
	if meta.Info != nil {
		res.Title = string(meta.Info.Title)
	}
	if meta.Catalog != nil {
		res.HasMetadata = meta.Catalog.Metadata != 0
		if !meta.Catalog.Lang.IsRoot() {
			res.Lang = meta.Catalog.Lang.String()
		}
	}

	n, err := pagetree.NumPages(r)
	if err != nil {
		return nil, fmt.Errorf("page tree: %w", err)
	}
	res.NumPages = n
	if n == 0 {
		return res, nil
	}

	pageDict, err := pagetree.GetPage(r, 0)
	if err != nil {
		return nil, fmt.Errorf("page 0: %w", err)
	}
	res.MediaBox, err = pdf.GetRectangle(r, pageDict["MediaBox"])
	if err != nil {
		return nil, fmt.Errorf("page 0: MediaBox: %w", err)
	}

	fontNames, err := baseFonts(r, pageDict)
	if err != nil {
		return nil, fmt.Errorf("page 0: %w", err)
	}

	stm, err := pagetree.ContentStream(r, pageDict)
	if err != nil {
		return nil, fmt.Errorf("page 0: %w", err)
	}
	s := scanner.NewScanner()
	err = s.Scan(stm)(func(op string, args []pdf.Object) error {
		res.Ops[op]++
		if op == "Tf" && len(args) == 2 {
			if name, ok := args[0].(pdf.Name); ok {
				res.Fonts[fontNames[name]]++
			}
		}
		return nil
	})
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("page 0: content stream: %w", err)
	}

	return res, nil
}

// baseFonts maps the font resource names of a page to the BaseFont names.
func baseFonts(r pdf.Getter, pageDict pdf.Dict) (map[pdf.Name]string, error) {
	resources, err := pdf.GetDict(r, pageDict["Resources"])
	if err != nil {
		return nil, err
	}
	fonts, err := pdf.GetDict(r, resources["Font"])
	if err != nil {
		return nil, err
	}

	res := make(map[pdf.Name]string, len(fonts))
	for key, obj := range fonts {
		fontDict, err := pdf.GetDict(r, obj)
		if err != nil {
			return nil, err
		}
		name, err := pdf.GetName(r, fontDict["BaseFont"])
		if err != nil {
			return nil, err
		}
		res[key] = string(name)
	}
	return res, nil
}

// Lines returns the number of straight line segments ("l" operators).
func (s *Summary) Lines() int {
	return s.Ops["l"]
}

// Rectangles returns the number of rectangles ("re" operators).
func (s *Summary) Rectangles() int {
	return s.Ops["re"]
}

// TextRuns returns the number of text show operators.
func (s *Summary) TextRuns() int {
	return s.Ops["Tj"] + s.Ops["TJ"] + s.Ops["'"] + s.Ops["\""]
}

// Format writes a human readable form of the summary to w.
func (s *Summary) Format(w io.Writer) error {
	ver, err := s.Version.ToString()
	if err != nil {
		ver = "unknown"
	}
	lines := []string{
		fmt.Sprintf("PDF version: %s", ver),
		fmt.Sprintf("pages: %d", s.NumPages),
	}
	if s.MediaBox != nil {
		const mm = 72 / 25.4
		lines = append(lines, fmt.Sprintf("page size: %.0fmm x %.0fmm",
			(s.MediaBox.URx-s.MediaBox.LLx)/mm, (s.MediaBox.URy-s.MediaBox.LLy)/mm))
	}
	if s.Title != "" {
		lines = append(lines, fmt.Sprintf("title: %q", s.Title))
	}
	if s.Lang != "" {
		lines = append(lines, "language: "+s.Lang)
	}
	lines = append(lines,
		fmt.Sprintf("text runs: %d", s.TextRuns()),
		fmt.Sprintf("lines: %d", s.Lines()),
		fmt.Sprintf("rectangles: %d", s.Rectangles()),
	)

	var names []string
	for name := range s.Fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("font %s: %d", name, s.Fonts[name]))
	}

	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
