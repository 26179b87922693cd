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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
)

// MM is the length of one millimetre in PDF units.
const MM = 72 / 25.4

// Layout constants, in PDF units.
const (
	Margin     = 20 * MM
	HeaderGap  = 20 * MM
	FieldGap   = 12 * MM
	LineHeight = 8 * MM
	Spacer     = 4 * MM

	ruleInset = 40 * MM
	ruleDrop  = 2 * MM

	BoxSide     = 4 * MM
	boxLabel    = 6 * MM
	boxDrop     = 3 // points, not millimetres
	payStart    = 50 * MM
	HeaderSize  = 14
	RegularSize = 12

	// BlankRules is the number of blank lines in the services section.
	BlankRules = 4
)

// Paper is the page size of the service sheet.
var Paper = document.A4

// Kind is the type of a drawing primitive.
type Kind int

// These are the drawing primitives used on the sheet.
const (
	KindText Kind = iota
	KindRule
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRule:
		return "rule"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Role describes what a primitive is for on the form.
type Role string

// These are the roles of the primitives on the sheet.
const (
	RoleHeader  Role = "header"  // the bold title line
	RoleLabel   Role = "label"   // text of a labelled line
	RoleField   Role = "field"   // rule of a labelled line
	RoleHeading Role = "heading" // section headings without a rule
	RoleBlank   Role = "blank"   // full width rule in the services section
	RoleBox     Role = "box"     // checkbox square
	RoleOption  Role = "option"  // text next to a checkbox
)

// Item is a single drawing primitive with absolute page coordinates.
//
// For text, At is the start of the baseline.  For rules, the line runs from
// At to End.  For boxes, At is the lower left corner of a square with side
// length Side.
type Item struct {
	Kind Kind
	Role Role
	At   vec.Vec2
	End  vec.Vec2
	Side float64

	Text string
	Bold bool
	Size float64
}

// BBox returns the area covered by the item.
// Text is not measured, so the box of a text item is its anchor point.
func (it Item) BBox() rect.Rect {
	switch it.Kind {
	case KindRule:
		return rect.Rect{
			LLx: min(it.At.X, it.End.X),
			LLy: min(it.At.Y, it.End.Y),
			URx: max(it.At.X, it.End.X),
			URy: max(it.At.Y, it.End.Y),
		}
	case KindBox:
		return rect.Rect{
			LLx: it.At.X,
			LLy: it.At.Y,
			URx: it.At.X + it.Side,
			URy: it.At.Y + it.Side,
		}
	default:
		return rect.Rect{LLx: it.At.X, LLy: it.At.Y, URx: it.At.X, URy: it.At.Y}
	}
}

// Plan is the complete, ordered list of primitives on the service sheet.
type Plan struct {
	Paper *pdf.Rectangle
	Items []Item

	// Rows holds the baseline of every row, top to bottom.
	Rows []float64
}

// Count returns the number of items of the given kind.
func (p *Plan) Count(kind Kind) int {
	n := 0
	for _, it := range p.Items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// CountRole returns the number of items with the given role.
func (p *Plan) CountRole(role Role) int {
	n := 0
	for _, it := range p.Items {
		if it.Role == role {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle covering all items.
func (p *Plan) Bounds() rect.Rect {
	var bbox rect.Rect
	for i, it := range p.Items {
		b := it.BBox()
		if i == 0 {
			bbox = b
			continue
		}
		bbox.LLx = min(bbox.LLx, b.LLx)
		bbox.LLy = min(bbox.LLy, b.LLy)
		bbox.URx = max(bbox.URx, b.URx)
		bbox.URy = max(bbox.URy, b.URy)
	}
	return bbox
}

// Layout computes the positions of all primitives on the service sheet.
// The result does not depend on any input.
func Layout() *Plan {
	l := newLayouter(Paper)

	l.text(RoleHeader, Margin, l.cur.Row(), labelHeader, true)
	l.cur.Advance(HeaderGap)

	for _, label := range []string{labelDate, labelTime, labelClient, labelAddress} {
		l.labelledLine(label)
	}

	l.text(RoleHeading, Margin, l.cur.Row(), labelServices, false)
	l.cur.Advance(LineHeight)
	for range BlankRules {
		y := l.cur.Row()
		l.rule(RoleBlank, Margin, l.right, y)
		l.cur.Advance(LineHeight)
	}
	l.cur.Advance(Spacer)

	l.labelledLine(labelTotal)

	y := l.cur.Row()
	l.text(RoleHeading, Margin, y, labelPayment, false)
	x := Margin + payStart
	for i, opt := range paymentOptions {
		if i > 0 {
			x += paymentSteps[i-1]
		}
		l.checkbox(x, y, opt)
	}
	l.cur.Advance(FieldGap)

	l.labelledLine(labelSignature)

	l.checkbox(Margin, l.cur.Row(), labelInvoice)

	return &Plan{
		Paper: Paper,
		Items: l.items,
		Rows:  l.cur.Rows(),
	}
}

// paymentSteps are the horizontal distances between the payment checkboxes.
var paymentSteps = []float64{35 * MM, 38 * MM}

type layouter struct {
	cur   *Cursor
	right float64
	items []Item
}

func newLayouter(paper *pdf.Rectangle) *layouter {
	return &layouter{
		cur:   NewCursor(paper.URy - Margin),
		right: paper.URx - Margin,
	}
}

// labelledLine draws a label followed by a rule for handwritten input,
// and then moves down by the field gap.
func (l *layouter) labelledLine(label string) {
	y := l.cur.Row()
	l.text(RoleLabel, Margin, y, label, false)
	l.rule(RoleField, Margin+ruleInset, l.right, y-ruleDrop)
	l.cur.Advance(FieldGap)
}

func (l *layouter) checkbox(x, y float64, label string) {
	l.items = append(l.items, Item{
		Kind: KindBox,
		Role: RoleBox,
		At:   vec.Vec2{X: x, Y: y - boxDrop},
		Side: BoxSide,
	})
	l.text(RoleOption, x+boxLabel, y, label, false)
}

func (l *layouter) text(role Role, x, y float64, s string, bold bool) {
	size := float64(RegularSize)
	if bold {
		size = HeaderSize
	}
	l.items = append(l.items, Item{
		Kind: KindText,
		Role: role,
		At:   vec.Vec2{X: x, Y: y},
		Text: normalize(s),
		Bold: bold,
		Size: size,
	})
}

func (l *layouter) rule(role Role, x1, x2, y float64) {
	l.items = append(l.items, Item{
		Kind: KindRule,
		Role: role,
		At:   vec.Vec2{X: x1, Y: y},
		End:  vec.Vec2{X: x2, Y: y},
	})
}
