package userstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML shape. The user key is absent until
// registration so a fresh data directory and an unregistered store file are
// equivalent.
type document struct {
	User *User `yaml:"user,omitempty"`
}

// Store is a durable repository for the singleton user record. All access
// goes through one mutex, which serializes read-modify-write sequences and
// makes Update an atomic compare-free CAS: with a single record and low
// contention a critical section is simpler and just as correct.
type Store struct {
	mu   sync.RWMutex
	path string
	user *User // in-memory snapshot of the persisted record, nil when unregistered
}

// New opens the store backed by the YAML file at path, loading any existing
// record. A missing file is a valid empty store.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, ErrMissingStorePath
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrCorruptStore, err)
	}
	s.user = doc.User

	return s, nil
}

// Exists reports whether a user record is present. It never fails once the
// store is open.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil, nil
}

// Create persists the initial user record. It fails with ErrAlreadyRegistered
// if a record exists; the singleton invariant is enforced here, under the
// same lock that guards every mutation, so two concurrent registrations
// cannot both succeed.
func (s *Store) Create(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(user); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		return ErrAlreadyRegistered
	}
	if err := s.persist(&user); err != nil {
		return err
	}
	s.user = &user
	return nil
}

// Read returns a snapshot of the current record, or ErrNotRegistered.
func (s *Store) Read(ctx context.Context) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, ErrNotRegistered
	}
	return *s.user, nil
}

// Update applies fn to a copy of the current record and persists the result.
// The whole read-modify-write runs inside the store lock, so concurrent
// updates serialize and none is lost. If fn returns an error, or the mutated
// record is invalid, or persistence fails, the stored record is untouched.
func (s *Store) Update(ctx context.Context, fn func(*User) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotRegistered
	}

	updated := *s.user
	if err := fn(&updated); err != nil {
		return err
	}
	if err := validate(updated); err != nil {
		return err
	}
	if err := s.persist(&updated); err != nil {
		return err
	}
	s.user = &updated
	return nil
}

// validate enforces the record invariants: a user always has a name and a
// password hash.
func validate(user User) error {
	if user.Name == "" || user.PasswordHash == "" {
		return ErrInvalidRecord
	}
	return nil
}

// persist writes the record to a temp file in the store directory and
// renames it over the live file, so a crash mid-write leaves the previous
// state intact. Caller holds the write lock.
func (s *Store) persist(user *User) error {
	data, err := yaml.Marshal(document{User: user})
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set store file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
