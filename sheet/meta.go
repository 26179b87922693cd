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

package sheet

import (
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/xmp"
)

// Options control the PDF file format and the document metadata.
// The layout of the sheet itself is fixed.
type Options struct {
	// Version is the PDF version of the output file.
	Version pdf.Version

	// HumanReadable disables stream compression.
	HumanReadable bool

	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	// Lang is the natural language of the document.
	Lang language.Tag

	// Date, if non-zero, is recorded as the creation and modification date.
	Date time.Time
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		Version:  pdf.V1_7,
		Title:    "Feuille de service",
		Author:   "Les Entreprises Jessica Mikael Inc.",
		Subject:  "Feuille de service vierge",
		Keywords: "service, facture, paiement",
		Creator:  "service-sheet",
		Producer: "seehuhn.de/go/servicesheet",
		Lang:     language.CanadianFrench,
	}
}

// setMetadata fills in the document information dictionary, the catalog
// language and, for PDF 1.4 and newer, an XMP metadata stream.
func setMetadata(page *document.Page, opt *Options) error {
	meta := page.Out.GetMeta()

	info := &pdf.Info{
		Title:    pdf.TextString(opt.Title),
		Author:   pdf.TextString(opt.Author),
		Subject:  pdf.TextString(opt.Subject),
		Keywords: pdf.TextString(opt.Keywords),
		Creator:  pdf.TextString(opt.Creator),
		Producer: pdf.TextString(opt.Producer),
	}
	if !opt.Date.IsZero() {
		info.CreationDate = pdf.Date(opt.Date)
		info.ModDate = pdf.Date(opt.Date)
	}
	meta.Info = info

	if !opt.Lang.IsRoot() {
		meta.Catalog.Lang = opt.Lang
	}

	if opt.Version < pdf.V1_4 {
		return nil
	}
	ref, err := writeXMP(page.Out, opt)
	if err != nil {
		return err
	}
	meta.Catalog.Metadata = ref
	return nil
}

func writeXMP(w *pdf.Writer, opt *Options) (pdf.Reference, error) {
	lang := opt.Lang
	if lang.IsRoot() {
		lang = language.CanadianFrench
	}
	xDefault := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if opt.Title != "" {
		dc.Title.Set(xDefault, opt.Title)
		dc.Title.Set(lang, opt.Title)
	}
	if opt.Author != "" {
		dc.Creator.Append(xmp.NewProperName(opt.Author))
	}
	if opt.Subject != "" {
		dc.Description.Set(xDefault, opt.Subject)
		dc.Description.Set(lang, opt.Subject)
	}

	basic := &xmp.Basic{}
	if opt.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(opt.Creator)
	}
	if !opt.Date.IsZero() {
		basic.CreateDate = xmp.NewDate(opt.Date)
		basic.ModifyDate = xmp.NewDate(opt.Date)
	}

	pdfNS := &pdfSchema{}
	if opt.Keywords != "" {
		pdfNS.Keywords = xmp.NewText(opt.Keywords)
	}
	if opt.Producer != "" {
		pdfNS.Producer = xmp.NewAgentName(opt.Producer)
	}
	if v, err := opt.Version.ToString(); err == nil {
		pdfNS.PDFVersion = xmp.NewText(v)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfNS)

	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return 0, err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: opt.HumanReadable})
	if err != nil {
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// pdfSchema is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfSchema struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
}
