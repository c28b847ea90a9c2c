package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
)

const (
	// MemoryDSN selects the in-memory backend.
	MemoryDSN = ":memory:"

	draftNamespace = "draft"
	stateNamespace = "state"
)

// ClientStorages groups the local document stores used by the service
// layer. Both views share one backend.
type ClientStorages struct {
	// Drafts holds draft form documents under "draft:<key>".
	Drafts KeyValueStore
	// State holds per-owner state documents under "state:<owner>".
	State KeyValueStore

	close func() error
}

// NewClientStorages selects the backend from cfg.DSN:
//   - ":memory:" keeps documents in process memory;
//   - a path ending in ".json" uses a single JSON document file;
//   - anything else opens (and migrates) a SQLite database file.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Str("dsn", cfg.DSN).Msg("creating new storages...")

	kv, closeFn, err := openBackend(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Drafts: Namespace(kv, draftNamespace),
		State:  Namespace(kv, stateNamespace),
		close:  closeFn,
	}, nil
}

// Close releases the backend.
func (s *ClientStorages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func openBackend(ctx context.Context, dsn string, log *logger.Logger) (KeyValueStore, func() error, error) {
	switch {
	case dsn == "" || dsn == MemoryDSN:
		return NewMemoryStore(), nil, nil

	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		kv, err := NewFileStore(dsn, log)
		if err != nil {
			return nil, nil, fmt.Errorf("file storage error: %w", err)
		}
		return kv, nil, nil

	default:
		db, err := NewConnectSQLite(ctx, dsn, log)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewDocumentRepository(db, log), db.Close, nil
	}
}
