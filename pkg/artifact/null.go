package artifact

import "context"

// NullStore is a no-op store that never keeps anything.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Put does nothing.
func (s *NullStore) Put(ctx context.Context, name string, data []byte) error {
	return nil
}

// Get always reports a missing artifact.
func (s *NullStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	return nil, false, nil
}

// Delete does nothing.
func (s *NullStore) Delete(ctx context.Context, name string) error {
	return nil
}

// Close does nothing.
func (s *NullStore) Close() error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
