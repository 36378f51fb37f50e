package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	immu "github.com/reoring/immu"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "values":
		valuesCmd(os.Args[2:])
	case "map":
		mapCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "immu CLI\n\nUsage:\n  immu values -in tree.json|tree.yaml [-format json|yaml]\n  immu map -in tree.yaml -expr incr|upper|lower [-format json|yaml]\n\nNotes:\n  - A tree document is nested {value, left, right} objects; null means an empty subtree.\n  - map prints the transformed tree as a JSON document on stdout.")
}

func valuesCmd(args []string) {
	fs := flag.NewFlagSet("values", flag.ExitOnError)
	var in, format string
	fs.StringVar(&in, "in", "", "input tree document")
	fs.StringVar(&format, "format", "", "input format (json|yaml); default by extension")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	tr := decodeTree(in, format)
	for _, v := range tr.Values() {
		fmt.Println(v)
	}
}

func mapCmd(args []string) {
	fs := flag.NewFlagSet("map", flag.ExitOnError)
	var in, format, expr string
	fs.StringVar(&in, "in", "", "input tree document")
	fs.StringVar(&format, "format", "", "input format (json|yaml); default by extension")
	fs.StringVar(&expr, "expr", "", "transform to apply (incr|upper|lower)")
	_ = fs.Parse(args)
	if in == "" || expr == "" {
		fs.Usage()
		os.Exit(2)
	}
	fn, ok := transforms[expr]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown expr %q (want incr|upper|lower)\n", expr)
		os.Exit(2)
	}
	tr := decodeTree(in, format)
	out, err := immu.TryMap(tr, fn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "map: %v\n", err)
		os.Exit(1)
	}
	b, err := immu.EncodeTreeJSON(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}

// transforms are the built-in map expressions. Each fails on values of the
// wrong kind so a mixed tree aborts as a whole (TryMap is all-or-nothing).
var transforms = map[string]func(any) (any, error){
	"incr": func(v any) (any, error) {
		switch n := v.(type) {
		case int:
			return n + 1, nil
		case float64:
			return n + 1, nil
		}
		return nil, fmt.Errorf("incr: not a number: %v", v)
	},
	"upper": func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("upper: not a string: %v", v)
		}
		return strings.ToUpper(s), nil
	},
	"lower": func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("lower: not a string: %v", v)
		}
		return strings.ToLower(s), nil
	},
}

func decodeTree(path, format string) immu.Tree[any] {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}
	if format == "" {
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	var tr immu.Tree[any]
	switch format {
	case "yaml":
		tr, err = immu.DecodeTreeYAML[any](data)
	case "json":
		tr, err = immu.DecodeTreeJSON[any](data)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want json|yaml)\n", format)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode %s: %v\n", path, err)
		os.Exit(1)
	}
	return tr
}
