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

// OutputWriteError is returned by [Render] if the service sheet could not be
// written to the destination file.
type OutputWriteError struct {
	// Path is the destination file name.
	Path string

	// Op is the step which failed, e.g. "create" or "rename".
	Op string

	Err error
}

func (err *OutputWriteError) Error() string {
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "cannot write service sheet to " + err.Path + " (" + err.Op + ")" + tail
}

func (err *OutputWriteError) Unwrap() error {
	return err.Err
}
