package bridge

import (
	"strings"

	"github.com/matzehuels/wordgraph/pkg/text"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// Augment rewrites input by inserting one randomly chosen bridge word between
// every consecutive pair of its words that has at least one bridge in g.
//
// The input is normalized independently of the graph (see [text.Tokenize]),
// so the output is lowercase, space separated and without punctuation. If the
// input holds fewer than two words it is returned unchanged. Words unknown to
// g are kept and never receive a bridge. A nil c uses a non-seeded source.
func Augment(g *wordgraph.Graph, input string, c wordgraph.Chooser) string {
	words := text.Tokenize(input)
	if len(words) < 2 {
		return input
	}
	if c == nil {
		c = wordgraph.RandomChooser()
	}

	out := make([]string, 0, 2*len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		out = append(out, words[i])
		if m, ok := wordgraph.Pick(c, Words(g, words[i], words[i+1])); ok {
			out = append(out, m)
		}
	}
	out = append(out, words[len(words)-1])
	return strings.Join(out, " ")
}
