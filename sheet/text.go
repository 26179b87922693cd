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

import "golang.org/x/text/unicode/norm"

// The text on the sheet.
const (
	labelHeader    = "Feuille de service – Mikael – Les Entreprises Jessica Mikael Inc."
	labelDate      = "Date :"
	labelTime      = "Heure :"
	labelClient    = "Nom du client :"
	labelAddress   = "Adresse :"
	labelServices  = "Services effectués :"
	labelTotal     = "Prix total :"
	labelPayment   = "Mode de paiement :"
	labelSignature = "Signature de Mikael :"
	labelInvoice   = "À facturer"
)

var paymentOptions = []string{"Argent", "Virement", "Crédit"}

// normalize converts s to Unicode normalization form C.
// The standard fonts only have glyphs for precomposed accented letters, so a
// decomposed "e" followed by a combining acute accent would otherwise be shown
// as two separate glyphs.
func normalize(s string) string {
	return norm.NFC.String(s)
}
