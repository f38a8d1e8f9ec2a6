package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"

	"splitkb/layers"
	"splitkb/proto"
)

func TestDumpAllLayers(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, layers.Keymap(), ""); err != nil {
		t.Fatal(err)
	}
	var docs []layerDoc
	if err := yaml.UnmarshalStrict(buf.Bytes(), &docs); err != nil {
		t.Fatal(err)
	}
	if len(docs) != proto.LayerCount {
		t.Fatalf("%d layers, want %d", len(docs), proto.LayerCount)
	}
	def := docs[0]
	if def.Name != "default" || len(def.Rows) != 4 || len(def.Rows[1]) != 14 {
		t.Fatalf("default layer = %+v", def)
	}
	if def.Rows[1][13] != "bslash" {
		t.Fatalf("(1,13) = %q", def.Rows[1][13])
	}
	if !strings.HasPrefix(def.Rows[2][7], "media(") {
		t.Fatalf("(2,7) = %q", def.Rows[2][7])
	}
}

func TestDumpOneLayer(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, layers.Keymap(), "menu"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("menu_down")) {
		t.Fatalf("menu layer:\n%s", buf.String())
	}
	if err := dump(&buf, layers.Keymap(), "nope"); err == nil {
		t.Fatal("no error for unknown layer")
	}
}
