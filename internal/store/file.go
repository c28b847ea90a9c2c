package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/intern-match/internal/logger"
)

// fileKeyValueStore keeps every document in a single JSON file that is
// rewritten on each mutation.
type fileKeyValueStore struct {
	path string

	mu   sync.RWMutex
	docs map[string]string

	logger *logger.Logger
}

type filePersistedState struct {
	Documents map[string]string `json:"documents"`
	SavedAt   time.Time         `json:"saved_at"`
}

// NewFileStore opens (or lazily creates) the JSON document file at path.
func NewFileStore(path string, log *logger.Logger) (KeyValueStore, error) {
	s := &fileKeyValueStore{
		path:   path,
		docs:   make(map[string]string),
		logger: log,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.docs[key]
	if !ok {
		return "", ErrDocumentNotFound
	}
	return value, nil
}

func (s *fileKeyValueStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.docs[key]
	s.docs[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.docs[key] = prev
		} else {
			delete(s.docs, key)
		}
		s.logger.Err(err).Str("func", "fileKeyValueStore.Set").Str("key", key).Msg("failed to persist document")
		return err
	}
	return nil
}

func (s *fileKeyValueStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.docs[key]
	if !existed {
		return nil
	}
	delete(s.docs, key)
	if err := s.persist(); err != nil {
		s.docs[key] = prev
		s.logger.Err(err).Str("func", "fileKeyValueStore.Remove").Str("key", key).Msg("failed to persist removal")
		return err
	}
	return nil
}

func (s *fileKeyValueStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if st.Documents != nil {
		s.docs = st.Documents
	}

	return nil
}

// persist must be called with s.mu held. The file is replaced atomically
// through a temp file in the same directory.
func (s *fileKeyValueStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Documents: s.docs, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp local storage file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close local storage file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod local storage file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}
