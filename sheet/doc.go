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

// Package sheet draws the service sheet of "Les Entreprises Jessica Mikael
// Inc.", a single A4 page with a header, lines to fill in by hand and
// checkboxes for the payment method.
//
// The layout is computed by [Layout] as a list of drawing primitives with
// absolute coordinates, starting 20mm below the top edge of the page and
// moving down one row at a time.  [Write] draws this list into a PDF file,
// and [Render] does the same for a named file on disk:
//
//	err := sheet.Render("service_sheet_fr.pdf", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
package sheet
