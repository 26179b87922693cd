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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/vec"
)

const eps = 1e-6

func findText(t *testing.T, p *Plan, text string) Item {
	t.Helper()
	for _, it := range p.Items {
		if it.Kind == KindText && it.Text == text {
			return it
		}
	}
	t.Fatalf("text %q not found", text)
	return Item{}
}

// following returns the item directly after the text item with the given
// label.
func following(t *testing.T, p *Plan, text string) Item {
	t.Helper()
	for i, it := range p.Items {
		if it.Kind == KindText && it.Text == text {
			if i+1 >= len(p.Items) {
				t.Fatalf("nothing after %q", text)
			}
			return p.Items[i+1]
		}
	}
	t.Fatalf("text %q not found", text)
	return Item{}
}

func TestLayoutCounts(t *testing.T) {
	p := Layout()

	counts := map[string]int{
		"text":    p.Count(KindText),
		"rule":    p.Count(KindRule),
		"box":     p.Count(KindBox),
		"header":  p.CountRole(RoleHeader),
		"label":   p.CountRole(RoleLabel),
		"field":   p.CountRole(RoleField),
		"heading": p.CountRole(RoleHeading),
		"blank":   p.CountRole(RoleBlank),
		"option":  p.CountRole(RoleOption),
	}
	want := map[string]int{
		"text":    14,
		"rule":    10,
		"box":     4,
		"header":  1,
		"label":   6,
		"field":   6,
		"heading": 2,
		"blank":   BlankRules,
		"option":  4,
	}
	if d := cmp.Diff(want, counts); d != "" {
		t.Errorf("unexpected counts (-want +got):\n%s", d)
	}

	bold := 0
	for _, it := range p.Items {
		if it.Bold {
			bold++
			if it.Size != HeaderSize {
				t.Errorf("bold text has size %g", it.Size)
			}
		} else if it.Kind == KindText && it.Size != RegularSize {
			t.Errorf("%q has size %g", it.Text, it.Size)
		}
	}
	if bold != 1 {
		t.Errorf("found %d bold text runs, want 1", bold)
	}

	// four labelled lines come before the services section
	services := findText(t, p, "Services effectués :")
	before := 0
	for _, it := range p.Items {
		if it.Role == RoleField && it.At.Y > services.At.Y {
			before++
		}
	}
	if before != 4 {
		t.Errorf("found %d labelled lines before the services section, want 4", before)
	}
}

func TestLayoutRows(t *testing.T) {
	p := Layout()

	if len(p.Rows) != 14 {
		t.Fatalf("got %d rows, want 14", len(p.Rows))
	}
	if d := p.Rows[0] - (p.Paper.URy - Margin); d > eps || d < -eps {
		t.Errorf("first row at %g, want %g", p.Rows[0], p.Paper.URy-Margin)
	}
	for i := 1; i < len(p.Rows); i++ {
		if p.Rows[i] >= p.Rows[i-1] {
			t.Errorf("row %d at %g is not below row %d at %g",
				i, p.Rows[i], i-1, p.Rows[i-1])
		}
	}
}

func TestLayoutBounds(t *testing.T) {
	p := Layout()
	left := Margin
	right := p.Paper.URx - Margin
	top := p.Paper.URy - Margin

	for _, it := range p.Items {
		b := it.BBox()
		if b.LLx < left-eps || b.URx > right+eps || b.LLy < 0 || b.URy > top+eps {
			t.Errorf("%s %q at %v is outside the margins", it.Kind, it.Text, b)
		}
	}

	bounds := p.Bounds()
	if bounds.LLx < left-eps || bounds.URx > right+eps {
		t.Errorf("horizontal bounds %g..%g exceed %g..%g",
			bounds.LLx, bounds.URx, left, right)
	}
	if bounds.LLy < 0 || bounds.URy > top+eps {
		t.Errorf("vertical bounds %g..%g exceed 0..%g", bounds.LLy, bounds.URy, top)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	p1 := Layout()
	p2 := Layout()
	if d := cmp.Diff(p1, p2); d != "" {
		t.Errorf("layout differs between calls (-first +second):\n%s", d)
	}
}

func TestLayoutPositions(t *testing.T) {
	p := Layout()
	W := p.Paper.URx
	H := p.Paper.URy
	approx := cmpopts.EquateApprox(0, 1e-6)

	header := findText(t, p, "Feuille de service – Mikael – Les Entreprises Jessica Mikael Inc.")
	if d := cmp.Diff(vec.Vec2{X: Margin, Y: H - Margin}, header.At, approx); d != "" {
		t.Errorf("header position (-want +got):\n%s", d)
	}
	if !header.Bold || header.Role != RoleHeader {
		t.Errorf("header is not a bold header: %+v", header)
	}

	date := findText(t, p, "Date :")
	if d := cmp.Diff(H-Margin-HeaderGap, date.At.Y, approx); d != "" {
		t.Errorf("date baseline (-want +got):\n%s", d)
	}
	rule := following(t, p, "Date :")
	wantRule := Item{
		Kind: KindRule,
		Role: RoleField,
		At:   vec.Vec2{X: Margin + 40*MM, Y: date.At.Y - 2*MM},
		End:  vec.Vec2{X: W - Margin, Y: date.At.Y - 2*MM},
	}
	if d := cmp.Diff(wantRule, rule, approx); d != "" {
		t.Errorf("date rule (-want +got):\n%s", d)
	}

	tm := findText(t, p, "Heure :")
	if d := cmp.Diff(date.At.Y-FieldGap, tm.At.Y, approx); d != "" {
		t.Errorf("time baseline (-want +got):\n%s", d)
	}

	// services section
	services := findText(t, p, "Services effectués :")
	var blanks []Item
	for _, it := range p.Items {
		if it.Role == RoleBlank {
			blanks = append(blanks, it)
		}
	}
	for i, it := range blanks {
		y := services.At.Y - float64(i+1)*LineHeight
		want := Item{
			Kind: KindRule,
			Role: RoleBlank,
			At:   vec.Vec2{X: Margin, Y: y},
			End:  vec.Vec2{X: W - Margin, Y: y},
		}
		if d := cmp.Diff(want, it, approx); d != "" {
			t.Errorf("blank rule %d (-want +got):\n%s", i, d)
		}
	}
	total := findText(t, p, "Prix total :")
	wantY := services.At.Y - float64(BlankRules+1)*LineHeight - Spacer
	if d := cmp.Diff(wantY, total.At.Y, approx); d != "" {
		t.Errorf("total baseline (-want +got):\n%s", d)
	}

	// payment row
	payment := findText(t, p, "Mode de paiement :")
	if d := cmp.Diff(total.At.Y-FieldGap, payment.At.Y, approx); d != "" {
		t.Errorf("payment baseline (-want +got):\n%s", d)
	}
	wantX := []float64{Margin + 50*MM, Margin + 85*MM, Margin + 123*MM}
	for i, label := range []string{"Argent", "Virement", "Crédit"} {
		opt := findText(t, p, label)
		if d := cmp.Diff(vec.Vec2{X: wantX[i] + 6*MM, Y: payment.At.Y}, opt.At, approx); d != "" {
			t.Errorf("%s label (-want +got):\n%s", label, d)
		}
	}
	var boxes []Item
	for _, it := range p.Items {
		if it.Kind == KindBox {
			boxes = append(boxes, it)
		}
	}
	for i, x := range wantX {
		want := Item{
			Kind: KindBox,
			Role: RoleBox,
			At:   vec.Vec2{X: x, Y: payment.At.Y - 3},
			Side: 4 * MM,
		}
		if d := cmp.Diff(want, boxes[i], approx); d != "" {
			t.Errorf("payment box %d (-want +got):\n%s", i, d)
		}
	}

	// signature and invoice checkbox
	signature := findText(t, p, "Signature de Mikael :")
	if d := cmp.Diff(payment.At.Y-FieldGap, signature.At.Y, approx); d != "" {
		t.Errorf("signature baseline (-want +got):\n%s", d)
	}
	invoice := findText(t, p, "À facturer")
	y := signature.At.Y - FieldGap
	if d := cmp.Diff(vec.Vec2{X: Margin + 6*MM, Y: y}, invoice.At, approx); d != "" {
		t.Errorf("invoice label (-want +got):\n%s", d)
	}
	wantBox := Item{Kind: KindBox, Role: RoleBox, At: vec.Vec2{X: Margin, Y: y - 3}, Side: 4 * MM}
	if d := cmp.Diff(wantBox, boxes[3], approx); d != "" {
		t.Errorf("invoice box (-want +got):\n%s", d)
	}
	if last := p.Items[len(p.Items)-1]; last.Text != "À facturer" {
		t.Errorf("last item is %q, want the invoice label", last.Text)
	}
}

func TestLayoutTextNormalized(t *testing.T) {
	for _, it := range Layout().Items {
		if it.Kind == KindText && !norm.NFC.IsNormalString(it.Text) {
			t.Errorf("%q is not in NFC", it.Text)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, out string }{
		{"Cre\u0301dit", "Crédit"},
		{"A\u0300 facturer", "À facturer"},
		{"Crédit", "Crédit"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.out {
			t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor(100)
	if y := c.Row(); y != 100 {
		t.Errorf("got row at %g, want 100", y)
	}
	c.Advance(10)
	c.Advance(2.5)
	if y := c.Row(); y != 87.5 {
		t.Errorf("got row at %g, want 87.5", y)
	}
	if d := cmp.Diff([]float64{100, 87.5}, c.Rows()); d != "" {
		t.Errorf("rows (-want +got):\n%s", d)
	}

	for _, d := range []float64{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Advance(%g) did not panic", d)
				}
			}()
			c.Advance(d)
		}()
	}
	if c.Y() != 87.5 {
		t.Errorf("cursor moved to %g", c.Y())
	}
}
