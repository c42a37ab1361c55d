// Command wrparsecxx is a thin driver over the lexer/parser core: it
// builds a dialect.Options from command-line flags, then lexes and
// parses each file independently, per spec §6.1's configuration grammar
// and §5's "independent (Options, Lexer, Parser) triples may run in
// parallel on disjoint inputs" concurrency model.
package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/walres/wrparsecxx/csource"
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/grammar"
	"github.com/walres/wrparsecxx/lexer"
	"github.com/walres/wrparsecxx/parser"
)

func main() {
	app := &cli.App{
		Name:      "wrparsecxx",
		Usage:     "lex and parse C/C++ source files against a configurable dialect",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "std", Usage: "dialect standard, e.g. c11, c++17"},
			&cli.StringFlag{Name: "x", Usage: "language when -std doesn't imply one: c or c++"},
			&cli.StringFlag{Name: "finput-locale", Usage: "transcode input from this locale/encoding before lexing"},
			&cli.BoolFlag{Name: "fdigraphs"},
			&cli.BoolFlag{Name: "ftrigraphs"},
			&cli.BoolFlag{Name: "fbinary-literals"},
			&cli.BoolFlag{Name: "fdollars-in-identifiers"},
			&cli.BoolFlag{Name: "finline-functions"},
			&cli.BoolFlag{Name: "fline-comments"},
			&cli.BoolFlag{Name: "flong-long"},
			&cli.BoolFlag{Name: "fucns"},
			&cli.IntFlag{Name: "jobs", Value: 4, Usage: "maximum number of files processed concurrently"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wrparsecxx: %v\n", err)
		os.Exit(1)
	}
}

func run (c *cli.Context) error {
	opts, err := optionsFromFlags(c)
	if err != nil {
		return err
	}

	var enc encoding.Encoding
	if locale := c.String("finput-locale"); locale != "" {
		enc, err = htmlindex.Get(locale)
		if err != nil {
			return fmt.Errorf("unknown -finput-locale %q: %w", locale, err)
		}
	}

	files := c.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}

	var g errgroup.Group
	g.SetLimit(c.Int("jobs"))

	var failed atomic.Bool
	var mu sync.Mutex

	for _, name := range files {
		name := name
		g.Go(func() error {
			errs, err := processFile(name, opts, enc)
			mu.Lock()
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e)
			}
			mu.Unlock()
			if err != nil || len(errs) > 0 {
				failed.Store(true)
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if failed.Load() {
		return fmt.Errorf("one or more files failed to parse cleanly")
	}
	return nil
}

// optionsFromFlags resolves -std/-x and the -f feature flags into an
// immutable dialect.Options, per spec §6.1.
func optionsFromFlags (c *cli.Context) (*dialect.Options, error) {
	var cStd, cxxStd dialect.Standard

	if std := c.String("std"); std != "" {
		s, err := dialect.ParseStandard(std)
		if err != nil {
			return nil, err
		}
		if s >= dialect.CXX98 {
			cxxStd = s
		} else {
			cStd = s
		}
	}

	if lang := c.String("x"); lang != "" {
		isCXX, err := dialect.ParseLanguage(lang)
		if err != nil {
			return nil, err
		}
		if isCXX && cxxStd == 0 && cStd == 0 {
			cxxStd = dialect.CXX17
		} else if !isCXX && cxxStd == 0 && cStd == 0 {
			cStd = dialect.C11
		}
	}

	if cStd == 0 && cxxStd == 0 {
		cStd = dialect.C11
	}

	var features dialect.Feature
	flagBits := map[string]dialect.Feature{
		"fdigraphs":               dialect.DIGRAPHS,
		"ftrigraphs":              dialect.TRIGRAPHS,
		"fbinary-literals":        dialect.BINARY_LITERALS,
		"fdollars-in-identifiers": dialect.IDENTIFIER_DOLLARS,
		"finline-functions":       dialect.INLINE_FUNCTIONS,
		"fline-comments":          dialect.LINE_COMMENTS,
		"flong-long":              dialect.LONG_LONG,
		"fucns":                   dialect.UCNS,
	}
	for name, bit := range flagBits {
		if c.Bool(name) {
			features |= bit
		}
	}

	return dialect.New(cStd, cxxStd, features)
}

// processFile lexes and parses one file (or stdin, for "-") to
// exhaustion, collecting every diagnostic raised along the way.
func processFile (name string, opts *dialect.Options, enc encoding.Encoding) ([]error, error) {
	f, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src *csource.Source
	if enc != nil {
		src, err = csource.Transcode(name, f, enc)
	} else {
		src, err = csource.New(name, f)
	}
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var diags []error
	collect := func (e error) {
		mu.Lock()
		diags = append(diags, e)
		mu.Unlock()
	}

	lx := lexer.New(opts, src, collect)
	p := parser.New(lx, opts, collect, nil)

	for !p.AtEOF() {
		if _, err := p.Parse(grammar.SimpleDeclaration); err != nil {
			p.RecoverDeclaration()
			p.Reset()
		}
	}

	return diags, nil
}

func openInput (name string) (*os.File, error) {
	if name == "-" {
		return os.Stdin, nil
	}
	return os.Open(name)
}
