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
	"bufio"
	"io"
	"os"
	"path/filepath"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
)

// Render writes the service sheet to the file with the given name.
//
// The file is first written under a temporary name in the same directory and
// then renamed, so that on failure no file is left at path.  All errors are
// of type [*OutputWriteError].  If opt is nil, [DefaultOptions] is used.
func Render(path string, opt *Options) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &OutputWriteError{Path: path, Op: "create", Err: err}
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(f)
	err = Write(buf, opt)
	if err == nil {
		err = buf.Flush()
	}
	if err != nil {
		return &OutputWriteError{Path: path, Op: "write", Err: err}
	}

	// os.CreateTemp uses mode 0600
	err = f.Chmod(0o644)
	if err != nil {
		return &OutputWriteError{Path: path, Op: "chmod", Err: err}
	}
	err = f.Sync()
	if err != nil {
		return &OutputWriteError{Path: path, Op: "sync", Err: err}
	}
	err = f.Close()
	if err != nil {
		return &OutputWriteError{Path: path, Op: "close", Err: err}
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		return &OutputWriteError{Path: path, Op: "rename", Err: err}
	}
	return nil
}

// Write writes the service sheet as a PDF file to w.
// If opt is nil, [DefaultOptions] is used.
func Write(w io.Writer, opt *Options) error {
	if opt == nil {
		opt = DefaultOptions()
	}

	wOpt := &pdf.WriterOptions{
		HumanReadable: opt.HumanReadable,
	}
	page, err := document.WriteSinglePage(w, Paper, opt.Version, wOpt)
	if err != nil {
		return err
	}

	err = draw(page, Layout())
	if err != nil {
		return err
	}

	err = setMetadata(page, opt)
	if err != nil {
		return err
	}

	return page.Close()
}

// draw emits the primitives of the plan onto the page.
func draw(page *document.Page, plan *Plan) error {
	regular, err := standard.Helvetica.New(nil)
	if err != nil {
		return err
	}
	bold, err := standard.HelveticaBold.New(nil)
	if err != nil {
		return err
	}

	for _, it := range plan.Items {
		switch it.Kind {
		case KindText:
			F := regular
			if it.Bold {
				F = bold
			}
			page.TextSetFont(F, it.Size)
			page.TextBegin()
			page.TextFirstLine(it.At.X, it.At.Y)
			page.TextShow(it.Text)
			page.TextEnd()
		case KindRule:
			page.MoveTo(it.At.X, it.At.Y)
			page.LineTo(it.End.X, it.End.Y)
			page.Stroke()
		case KindBox:
			page.Rectangle(it.At.X, it.At.Y, it.Side, it.Side)
			page.Stroke()
		}
	}
	return page.Err
}
