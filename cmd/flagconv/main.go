// flagconv converts a single encoded flag set between wire formats.
//
// The flag table is given on the command line, so no Go type is needed:
//
//	flagconv --flag READ=0x1 --flag WRITE=0x2 --from json --to cbor --hex '"READ | WRITE"'
//
// The value is read from the positional argument, or from stdin when the
// argument is absent. Text formats use the human-readable form by default
// and binary formats the compact form; --compact-in and --compact-out force
// the compact form on either side.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("flagconv", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringArrayVar(&opts.flags, "flag", nil, "flag definition NAME=VALUE (repeatable, declaration order)")
	flagSet.IntVar(&opts.width, "width", 32, "bit width of the flag set: 8, 16, 32 or 64")
	flagSet.StringVar(&opts.from, "from", "json", "input format: json, yaml, cbor, msgpack")
	flagSet.StringVar(&opts.to, "to", "json", "output format: json, yaml, cbor, msgpack")
	flagSet.BoolVar(&opts.compactIn, "compact-in", false, "read the compact (integer) form")
	flagSet.BoolVar(&opts.compactOut, "compact-out", false, "write the compact (integer) form")
	flagSet.BoolVar(&opts.hex, "hex", false, "binary input and output (cbor, msgpack) are hex-encoded")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}

	var input []byte
	switch rest := flagSet.Args(); len(rest) {
	case 0:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = data
	case 1:
		input = []byte(rest[0])
	default:
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}

	output, err := opts.convert(input)
	if err != nil {
		return err
	}

	_, err = stdout.Write(output)
	return err
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `flagconv converts an encoded flag set between formats.

Usage:
  flagconv --flag NAME=VALUE... [flags] [VALUE]

Examples:
  # Text to compact JSON
  flagconv --flag READ=1 --flag WRITE=2 --compact-out '"READ | WRITE"'

  # JSON with unknown bits to hex-encoded CBOR
  flagconv --flag READ=1 --to cbor --hex '"READ | 0x80"'

  # CBOR back to YAML
  flagconv --flag READ=1 --from cbor --to yaml --hex 01

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
