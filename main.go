/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/docopt/docopt-go"

	"github.com/google/colframe/core/aggregates"
	"github.com/google/colframe/core/csvimport"
	"github.com/google/colframe/core/logging"
	"github.com/google/colframe/core/rendering"
	"github.com/google/colframe/core/tables"
	"github.com/google/colframe/datasources"
	"github.com/google/colframe/demo"
)

const usage = `colframe: inspect and summarize CSV files.
Usage:
  colframe -h | --help
  colframe structure [options] <file>
  colframe head [options] <file>
  colframe sort [options] [--desc] <file> <key>...
  colframe summarize [options] [--by=COLUMNS] [--fn=FUNCS] [--propagate-missing] <file> <column>
  colframe export [options] [--out-delimiter=D] <file> <out>
  colframe html [options] [--title=TITLE] <files>...
  colframe demo [options]
Options:
  -h --help            Show this screen.
  --delimiter=D        Input field delimiter [default: ,].
  --sample=N           Rows sampled for type inference, 0 for all [default: 0].
  --rows=N             Rows to show, -1 for all [default: 10].
  --desc               Sort largest first.
  --by=COLUMNS         Comma separated grouping columns.
  --fn=FUNCS           Comma separated aggregates [default: count,mean,std,min,max].
  --propagate-missing  Yield a missing result when any input cell is missing.
  --out-delimiter=D    Output field delimiter [default: ,].
  --title=TITLE        Page title [default: Tables].
  --log-level=LEVEL    DEBUG, INFO, WARN or ERROR [default: WARN].
  --log-format=FORMAT  text or json [default: text].`

type config struct {
	Structure        bool
	Head             bool
	Sort             bool
	Summarize        bool
	Export           bool
	HTML             bool `docopt:"html"`
	Demo             bool
	File             string
	Files            []string
	Key              []string
	Column           string
	Out              string
	Delimiter        string
	Sample           int
	Rows             int
	Desc             bool
	By               string
	Fn               string
	PropagateMissing bool
	OutDelimiter     string
	Title            string
	LogLevel         string
	LogFormat        string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpOnly}
	opts, err := parser.ParseArgs(usage, args, "")
	if err != nil {
		return err
	}
	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		return err
	}

	if _, err := logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr}); err != nil {
		return err
	}

	switch {
	case cfg.Structure:
		t, err := load(cfg, cfg.File)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, t.Structure().Print(-1))
		return err
	case cfg.Head:
		t, err := load(cfg, cfg.File)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, t.Print(cfg.Rows))
		return err
	case cfg.Sort:
		return sortCommand(cfg, stdout)
	case cfg.Summarize:
		return summarizeCommand(cfg, stdout)
	case cfg.Export:
		t, err := load(cfg, cfg.File)
		if err != nil {
			return err
		}
		d, err := delimiter(cfg.OutDelimiter)
		if err != nil {
			return err
		}
		return csvimport.ExportToFile(cfg.Out, t, d)
	case cfg.HTML:
		return htmlCommand(cfg, stdout)
	case cfg.Demo:
		all, err := demo.CreateDemoTables()
		if err != nil {
			return err
		}
		for _, t := range all {
			if _, err := fmt.Fprintln(stdout, t.Print(cfg.Rows)); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func importOptions(cfg config) (csvimport.ImportOptions, error) {
	options := csvimport.DefaultOptions()
	d, err := delimiter(cfg.Delimiter)
	if err != nil {
		return options, err
	}
	options.Delimiter = d
	options.SampleSize = cfg.Sample
	return options, nil
}

func load(cfg config, path string) (*tables.Table, error) {
	options, err := importOptions(cfg)
	if err != nil {
		return nil, err
	}
	return csvimport.ImportFromFile(path, options)
}

func delimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sortCommand(cfg config, stdout io.Writer) error {
	t, err := load(cfg, cfg.File)
	if err != nil {
		return err
	}
	keys := make([]tables.SortKey, len(cfg.Key))
	for i, k := range cfg.Key {
		keys[i] = tables.SortKey{Name: k, Descending: cfg.Desc}
	}
	var sorted *tables.Table
	if cfg.Rows >= 0 {
		sorted, err = t.Top(cfg.Rows, keys...)
	} else {
		sorted, err = t.SortOn(keys...)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, sorted.Print(-1))
	return err
}

func summarizeCommand(cfg config, stdout io.Writer) error {
	t, err := load(cfg, cfg.File)
	if err != nil {
		return err
	}
	var fns []aggregates.AggregateFunction
	for _, name := range splitList(cfg.Fn) {
		fn, ok := aggregates.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown aggregate %q", name)
		}
		fns = append(fns, fn)
	}
	s := t.Summarize(cfg.Column, fns...).By(splitList(cfg.By)...)
	if cfg.PropagateMissing {
		s = s.WithMissingPolicy(aggregates.PropagateMissing)
	}
	summary, err := s.Apply()
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, summary.Print(-1))
	return err
}

func htmlCommand(cfg config, stdout io.Writer) error {
	options, err := importOptions(cfg)
	if err != nil {
		return err
	}
	manager := datasources.NewManager()
	for _, path := range cfg.Files {
		manager.AddFile(path, options)
	}
	all, err := manager.LoadAll()
	if err != nil {
		return err
	}

	renderer, err := rendering.NewTableRenderer()
	if err != nil {
		return err
	}
	if len(all) == 1 {
		return renderer.Render(stdout, all[0], cfg.Rows)
	}
	return renderer.RenderLanding(stdout, cfg.Title, all, cfg.Rows)
}
