// Package userdata associates native window handles with Go-side context
// values without handing Go pointers to the OS.
//
// The OS-owned per-window slot (GWLP_USERDATA on Win32) stores only an
// opaque integer Key. The Registry owns the value behind that key: Attach
// installs it exactly once and Detach removes it exactly once.
package userdata

import (
	"errors"
	"sync"
)

// Key identifies a registry entry. The zero Key is never issued so that an
// unset OS slot (which reads back as 0) never resolves to a value.
type Key uintptr

var (
	ErrNotAttached = errors.New("userdata: key not attached")
	ErrZeroKey     = errors.New("userdata: zero key")
)

// Registry maps keys to values of type T.
type Registry[T any] struct {
	mu      sync.RWMutex
	next    Key
	entries map[Key]T
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[Key]T)}
}

// Attach stores v under a fresh key and returns the key.
func (r *Registry[T]) Attach(v T) Key {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[Key]T)
	}
	for {
		r.next++
		if r.next == 0 {
			continue
		}
		if _, taken := r.entries[r.next]; !taken {
			break
		}
	}
	r.entries[r.next] = v
	return r.next
}

// Lookup returns the value stored under k without removing it.
func (r *Registry[T]) Lookup(k Key) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[k]
	return v, ok
}

// Detach removes and returns the value stored under k. Detaching a key that
// was never attached, or was already detached, is an error.
func (r *Registry[T]) Detach(k Key) (T, error) {
	var zero T
	if k == 0 {
		return zero, ErrZeroKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.entries[k]
	if !ok {
		return zero, ErrNotAttached
	}
	delete(r.entries, k)
	return v, nil
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
