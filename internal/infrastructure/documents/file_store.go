package documents

import (
	"context"
	"os"
	"path/filepath"

	"biquote/internal/usecase/interfaces"
)

const defaultDocumentsDir = "./uploads"

// FileStore keeps rendered quote documents on the local filesystem.
//
// The returned reference is the bare file name; Get resolves it against the
// configured directory and never follows paths outside it.
type FileStore struct {
	dir string
}

var _ interfaces.IDocumentStore = (*FileStore)(nil)

func NewFileStore() *FileStore {
	return NewFileStoreAt(getenvDefault("DOCUMENTS_DIR", defaultDocumentsDir))
}

func NewFileStoreAt(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

func (s *FileStore) Get(_ context.Context, ref string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, interfaces.ErrDocumentNotFound
		}
		return nil, err
	}
	return data, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
