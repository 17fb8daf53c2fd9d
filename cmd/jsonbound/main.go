package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	jsonbound "github.com/jsonbound/jsonbound"
	"github.com/jsonbound/jsonbound/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "dump":
		dumpCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "jsonbound CLI\n\nUsage:\n  jsonbound dump [-depth N] [-items N] [file]\n  jsonbound check [-shape object|array|string|number|integer|bool] [file]\n\nNotes:\n  - Reads from stdin when no file is given.")
}

func dumpCmd(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var depth, items int
	fs.IntVar(&depth, "depth", render.DefaultOptions().MaxDepth, "max nesting depth to render")
	fs.IntVar(&items, "items", render.DefaultOptions().MaxItems, "max entries per container")
	_ = fs.Parse(args)

	data := readInput(fs.Args())
	v, err := jsonbound.DecodeBytes(jsonbound.Unknown(), data)
	if err != nil {
		fatalf("parse: %v", err)
	}
	opts := render.DefaultOptions()
	opts.MaxDepth = depth
	opts.MaxItems = items
	fmt.Println(render.DumpWith(v, opts))
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var shape string
	fs.StringVar(&shape, "shape", "", "required top-level shape (default: any)")
	_ = fs.Parse(args)

	data := readInput(fs.Args())
	if err := checkShape(shape, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func checkShape(shape string, data []byte) error {
	switch shape {
	case "", "any":
		_, err := jsonbound.DecodeBytes(jsonbound.Unknown(), data)
		return err
	case "object":
		_, err := jsonbound.DecodeBytes(jsonbound.Dict(jsonbound.Unknown()), data)
		return err
	case "array":
		_, err := jsonbound.DecodeBytes(jsonbound.Many(jsonbound.Unknown()), data)
		return err
	case "string":
		_, err := jsonbound.DecodeBytes(jsonbound.String(), data)
		return err
	case "number":
		_, err := jsonbound.DecodeBytes(jsonbound.Number(), data)
		return err
	case "integer":
		_, err := jsonbound.DecodeBytes(jsonbound.Integer(), data)
		return err
	case "bool":
		_, err := jsonbound.DecodeBytes(jsonbound.Bool(), data)
		return err
	default:
		return fmt.Errorf("unknown shape %q", shape)
	}
}

func readInput(args []string) []byte {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading %s: %v", args[0], err)
	}
	return data
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
