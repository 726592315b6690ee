// Package artifact stores the durable outputs of wordgraph commands, such as
// the text of a random walk or a rendered graph image.
//
// Three implementations are provided:
//   - [FileStore]: one file per artifact in a directory (CLI default)
//   - [MemoryStore]: in-process map, for tests
//   - [NullStore]: discards everything, for --no-save style runs
//
// Artifact names are plain file names validated with
// [errors.ValidateArtifactName]; a store never writes outside its root.
package artifact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Store persists named artifacts.
type Store interface {
	// Put stores data under name, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the data stored under name and whether it exists.
	Get(ctx context.Context, name string) ([]byte, bool, error)

	// Delete removes name. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases resources held by the store.
	Close() error
}

// UniqueName returns a collision-free artifact name of the form
// "<prefix>-<uuid><ext>", e.g. "walk-1b4e28ba-2fa1-11d2-883f-0016d3cca427.txt".
func UniqueName(prefix, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)
}
