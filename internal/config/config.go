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

// Package config reads the optional configuration file of the service-sheet
// command.  The file only controls the output file and the document
// metadata; the layout of the sheet is fixed.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/servicesheet/sheet"
)

// Config is the contents of a configuration file.
// Empty fields keep the default values.
type Config struct {
	Output        string `yaml:"output"`
	PDFVersion    string `yaml:"pdf_version"`
	Title         string `yaml:"title"`
	Author        string `yaml:"author"`
	Subject       string `yaml:"subject"`
	Keywords      string `yaml:"keywords"`
	Language      string `yaml:"language"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Load reads the named configuration file.
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", fname, err)
	}
	return cfg, nil
}

// Parse decodes a configuration file.  Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.PDFVersion != "" {
		if _, err := pdf.ParseVersion(cfg.PDFVersion); err != nil {
			return fmt.Errorf("invalid pdf_version %q", cfg.PDFVersion)
		}
	}
	if cfg.Language != "" {
		if _, err := language.Parse(cfg.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", cfg.Language, err)
		}
	}
	if strings.TrimSpace(cfg.Output) != cfg.Output {
		return fmt.Errorf("output file name %q has leading or trailing space", cfg.Output)
	}
	return nil
}

// Apply overrides the fields of opt which are set in the configuration.
func (cfg *Config) Apply(opt *sheet.Options) {
	if cfg.PDFVersion != "" {
		// validated by Parse
		opt.Version, _ = pdf.ParseVersion(cfg.PDFVersion)
	}
	if cfg.Title != "" {
		opt.Title = cfg.Title
	}
	if cfg.Author != "" {
		opt.Author = cfg.Author
	}
	if cfg.Subject != "" {
		opt.Subject = cfg.Subject
	}
	if cfg.Keywords != "" {
		opt.Keywords = cfg.Keywords
	}
	if cfg.Language != "" {
		opt.Lang = language.Make(cfg.Language)
	}
	if cfg.HumanReadable {
		opt.HumanReadable = true
	}
}
