// Package io reads input text and imports or exports word graphs as JSON.
//
// # Input Text
//
// [ReadText] loads a text file and joins its lines with single spaces, so a
// word at the end of one line is adjacent to the first word of the next:
//
//	raw, err := io.ReadText("story.txt")
//	if errors.Is(err, errors.ErrCodeInputUnreadable) {
//	    // ask for another path
//	}
//	g := wordgraph.FromText(raw)
//
// # JSON Format
//
// Graphs are exchanged as a node list plus a weighted edge list:
//
//	{
//	  "nodes": [
//	    {"id": "do", "source": true},
//	    {"id": "you", "source": true},
//	    {"id": "hard"}
//	  ],
//	  "edges": [
//	    {"from": "do", "to": "you", "weight": 1}
//	  ]
//	}
//
// Nodes are written in sorted order, edges ordered by source then target.
// "source" marks words that have an entry in the adjacency mapping; a source
// without edges is preserved this way. Words that only receive edges omit it.
//
// Use [WriteJSON]/[ExportJSON] to export and [ReadJSON]/[ImportJSON] to
// import. Export followed by import yields a graph with the same
// [wordgraph.Graph.Fingerprint].
package io
