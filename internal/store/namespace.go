package store

import "context"

type namespacedStore struct {
	inner  KeyValueStore
	prefix string
}

// Namespace returns a view of kv in which every key is stored as "ns:key".
func Namespace(kv KeyValueStore, ns string) KeyValueStore {
	return &namespacedStore{inner: kv, prefix: ns + ":"}
}

func (n *namespacedStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespacedStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespacedStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return n.inner.Remove(ctx, n.prefix+key)
}
