package artifact

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/observability"
)

// FileStore writes each artifact to a file in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store rooted at dir.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the root directory of the store.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file path used for name.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Put writes data to a temporary file and renames it into place, so readers
// never observe a partially written artifact. Every attempt is reported to
// the registered [observability.ArtifactHooks].
func (s *FileStore) Put(ctx context.Context, name string, data []byte) error {
	err := s.put(ctx, name, data)
	observability.Artifact().OnArtifactWrite(ctx, name, len(data), err)
	return err
}

func (s *FileStore) put(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateArtifactName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path(name))
}

// Get reads the artifact stored under name.
func (s *FileStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	if err := errors.ValidateArtifactName(name); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(s.Path(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Delete removes the artifact stored under name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateArtifactName(name); err != nil {
		return err
	}
	err := os.Remove(s.Path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file store.
func (s *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
