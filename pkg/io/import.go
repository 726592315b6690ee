package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// ReadJSON decodes a JSON graph from r.
//
// ReadJSON returns an [errors.ErrCodeInvalidFormat] error if:
//   - The JSON is malformed
//   - A node id is empty or listed twice
//   - An edge references an unlisted node or has a weight < 1
//   - An edge appears twice
//   - A listed node is neither a source nor the target of an edge
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*wordgraph.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph")
	}

	adj := make(map[string]map[string]int)
	listed := make(map[string]bool, len(data.Nodes))
	for _, n := range data.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node with empty id")
		}
		if listed[n.ID] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "duplicate node %s", n.ID)
		}
		listed[n.ID] = true
		if n.Source {
			adj[n.ID] = make(map[string]int)
		}
	}

	targets := make(map[string]bool)
	for _, e := range data.Edges {
		if !listed[e.From] || !listed[e.To] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "edge %s->%s: unknown node", e.From, e.To)
		}
		out, ok := adj[e.From]
		if !ok {
			out = make(map[string]int)
			adj[e.From] = out
		}
		if _, dup := out[e.To]; dup {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "duplicate edge %s->%s", e.From, e.To)
		}
		out[e.To] = e.Weight
		targets[e.To] = true
	}

	for id := range listed {
		if _, src := adj[id]; !src && !targets[id] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node %s has no edges", id)
		}
	}

	g, err := wordgraph.FromAdjacency(adj)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "build graph")
	}
	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
func ImportJSON(path string) (*wordgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
