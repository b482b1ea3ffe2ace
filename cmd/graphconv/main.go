// graphconv transcodes a document between the supported wire formats
// without resolving its type tags.
//
//	graphconv --from json --to cbor --diag input.json
//
// The input is read from the file argument or, when it is absent or "-",
// from stdin. The result is written to stdout.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	graphcodec "github.com/tarantool/go-graphcodec"
	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/cbor"
	"github.com/tarantool/go-graphcodec/format/json"
	"github.com/tarantool/go-graphcodec/tree"
)

// ErrUsage is returned for invalid command lines.
var ErrUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	from    string
	to      string
	indent  string
	lenient bool
	diag    bool
	verbose bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("graphconv", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.from, "from", "f", "json", "input format (json, bson, cbor, msgpack, yaml)")
	flagSet.StringVarP(&opts.to, "to", "t", "json", "output format (json, bson, cbor, msgpack, yaml)")
	flagSet.StringVar(&opts.indent, "indent", "", "indent unit for json output")
	flagSet.BoolVar(&opts.lenient, "lenient", false, "accept comments and trailing commas in json input")
	flagSet.BoolVar(&opts.diag, "diag", false, "print cbor output in diagnostic notation")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug events to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})) //nolint:exhaustruct

	from, err := graphcodec.ParseFormat(opts.from)
	if err != nil {
		return err
	}

	to, err := graphcodec.ParseFormat(opts.to)
	if err != nil {
		return err
	}

	if opts.diag && to != graphcodec.CBOR {
		return fmt.Errorf("%w: --diag requires --to cbor", ErrUsage)
	}

	in := stdin

	switch rest := flagSet.Args(); {
	case len(rest) > 1:
		return fmt.Errorf("%w: at most one input file", ErrUsage)
	case len(rest) == 1 && rest[0] != "-":
		file, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer file.Close() //nolint:errcheck

		in = file
	}

	reader, err := newReader(from, in, opts)
	if err != nil {
		return err
	}

	root, err := graphcodec.NewDecoder(graphcodec.WithLogger(logger)).Parse(reader)
	if err != nil {
		return fmt.Errorf("read %s: %w", from, err)
	}

	// A top-level BSON array arrives as a document keyed by index.
	if obj, ok := root.(*tree.Object); ok && from == graphcodec.BSON {
		if arr, ok := obj.Indexed(); ok {
			root = arr
		}
	}

	var buf bytes.Buffer

	writer, err := newWriter(to, &buf, opts)
	if err != nil {
		return err
	}

	if err := format.Emit(writer, root); err != nil {
		return fmt.Errorf("write %s: %w", to, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("write %s: %w", to, err)
	}

	logger.Debug("transcoded", slog.String("from", from.String()), slog.String("to", to.String()),
		slog.Int("bytes", buf.Len()))

	if opts.diag {
		diag, err := cbor.Diagnose(buf.Bytes())
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(stdout, diag)

		return err
	}

	_, err = stdout.Write(buf.Bytes())

	return err
}

func newReader(f graphcodec.Format, r io.Reader, opts options) (format.Reader, error) {
	if f == graphcodec.JSON && opts.lenient {
		return json.NewReader(r, json.WithLenient()), nil
	}

	return f.NewReader(r)
}

func newWriter(f graphcodec.Format, w io.Writer, opts options) (format.Writer, error) {
	if f == graphcodec.JSON && opts.indent != "" {
		return json.NewWriter(w, json.WithIndent(opts.indent)), nil
	}

	return f.NewWriter(w)
}
