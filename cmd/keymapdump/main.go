// Command keymapdump prints the keyboard's layers as YAML, one list of cells
// per matrix row.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"splitkb/custom"
	"splitkb/keymap"
	"splitkb/layers"
	"splitkb/proto"
)

type layerDoc struct {
	Name string     `yaml:"name"`
	Rows [][]string `yaml:"rows"`
}

func main() {
	var (
		only    = flag.String("layer", "", "Dump only the named layer.")
		outPath = flag.String("out", "", "Output file (default stdout).")
	)
	flag.Parse()

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatalf("create: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := dump(w, layers.Keymap(), *only); err != nil {
		fatalf("dump: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func dump(w io.Writer, km keymap.Layers[custom.Action], only string) error {
	docs := make([]layerDoc, 0, len(km))
	for i := range km {
		name := proto.LayerFromIndex(i).String()
		if only != "" && only != name {
			continue
		}
		d := layerDoc{Name: name}
		for _, row := range km[i] {
			cells := make([]string, len(row))
			for j, a := range row {
				cells[j] = cell(a)
			}
			d.Rows = append(d.Rows, cells)
		}
		docs = append(docs, d)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no layer named %q", only)
	}
	b, err := yaml.Marshal(docs)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func cell(a keymap.Action[custom.Action]) string {
	switch a.Kind {
	case keymap.ActCustom:
		return a.Custom.String()
	case keymap.ActMultiple:
		parts := make([]string, len(a.Actions))
		for i, sub := range a.Actions {
			parts[i] = cell(sub)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case keymap.ActHoldTap:
		return "ht(" + cell(a.HoldTap.Tap) + "," + cell(a.HoldTap.Hold) + ")"
	}
	return a.String()
}
