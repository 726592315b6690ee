package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("To be,\r\nor not\nto be\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	if want := "To be, or not to be"; got != want {
		t.Errorf("ReadText = %q, want %q", got, want)
	}

	// The end of one line is adjacent to the start of the next.
	g := wordgraph.FromText(got)
	if !g.HasEdge("be", "or") || !g.HasEdge("not", "to") {
		t.Errorf("line break did not join words: %v", g.Edges())
	}
}

func TestReadTextUnreadable(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.txt")},
		{"directory", t.TempDir()},
		{"empty path", ""},
		{"null byte", "a\x00b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(tt.path)
			if !errors.Is(err, errors.ErrCodeInputUnreadable) {
				t.Fatalf("ReadText(%q) error = %v, want %s", tt.path, err, errors.ErrCodeInputUnreadable)
			}
			if got := errors.UserMessage(err); got != unreadable {
				t.Errorf("message = %q", got)
			}
		})
	}
}

func TestReadTextFrom(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"one", "one"},
		{"one\n", "one"},
		{"a\n\nb", "a  b"},
		{"a\r\nb\r\n", "a b"},
	}
	for _, tt := range tests {
		got, err := ReadTextFrom(strings.NewReader(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("ReadTextFrom(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g, err := wordgraph.FromAdjacency(map[string]map[string]int{
		"do":   {"you": 2},
		"you":  {"do": 1, "work": 3},
		"idle": {},
	})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	if !strings.Contains(buf.String(), `"weight": 3`) {
		t.Errorf("weights missing from output:\n%s", buf.String())
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if back.Fingerprint() != g.Fingerprint() {
		t.Errorf("round trip changed graph: %v vs %v", back.Edges(), g.Edges())
	}
	if !back.IsSource("idle") || back.OutDegree("idle") != 0 {
		t.Error("source without edges was not preserved")
	}
	if back.IsSource("work") {
		t.Error("destination-only word became a source")
	}
}

func TestExportImportFile(t *testing.T) {
	g := wordgraph.FromText("a student works hard a student rests")
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if w, _ := back.Weight("a", "student"); w != 2 {
		t.Errorf("weight(a, student) = %d, want 2", w)
	}
	if back.Fingerprint() != g.Fingerprint() {
		t.Error("file round trip changed graph")
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON of missing file should fail")
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", `{"nodes": [`},
		{"empty id", `{"nodes": [{"id": ""}], "edges": []}`},
		{"duplicate node", `{"nodes": [{"id": "a", "source": true}, {"id": "a"}], "edges": []}`},
		{"unknown node", `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "b", "weight": 1}]}`},
		{"zero weight", `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"from": "a", "to": "b", "weight": 0}]}`},
		{"duplicate edge", `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"from": "a", "to": "b", "weight": 1}, {"from": "a", "to": "b", "weight": 2}]}`},
		{"isolated node", `{"nodes": [{"id": "a"}], "edges": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadJSON error = %v, want %s", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}
