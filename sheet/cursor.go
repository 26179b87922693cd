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

import "fmt"

// Cursor tracks the vertical position of the next row on the page.
// The position only ever moves down the page.
type Cursor struct {
	y    float64
	rows []float64
}

// NewCursor returns a cursor positioned at y.
func NewCursor(y float64) *Cursor {
	return &Cursor{y: y}
}

// Y returns the current vertical position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Row marks the current position as the baseline of a row and returns it.
func (c *Cursor) Row() float64 {
	c.rows = append(c.rows, c.y)
	return c.y
}

// Advance moves the cursor down by d, which must be positive.
func (c *Cursor) Advance(d float64) {
	if !(d > 0) {
		panic(fmt.Sprintf("sheet: invalid cursor advance %g", d))
	}
	c.y -= d
}

// Rows returns the baselines of all rows marked so far, in order.
func (c *Cursor) Rows() []float64 {
	return c.rows
}
