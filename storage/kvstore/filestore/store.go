package filestore

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store keeps one `<key>.json` file per key in a directory. Writes go through a temporary
// file renamed over the old one, so a crash never leaves a half-written collection.
type Store struct {
	dir string
}

var _ core.KVStore = (*Store)(nil)

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) (string, error) {
	if !keyRegex.MatchString(key) {
		return "", errors.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *Store) Get(key string) ([]byte, error) {
	fp, err := s.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fp)
	if os.IsNotExist(err) {
		return nil, core.ErrKeyNotFound
	}
	return b, errors.Wrapf(err, "reading %s", key)
}

func (s *Store) Set(key string, value []byte) error {
	fp, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "writing %s", key)
	}
	defer func() { _ = os.Remove(tmp.Name()) }() // no-op once renamed

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing %s", key)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", key)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), fp), "writing %s", key)
}

func (s *Store) Close() error { return nil }
