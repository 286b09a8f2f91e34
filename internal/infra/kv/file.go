package kv

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"room-booking/internal/infra"
)

// FileBackend keeps each key in <dir>/<escaped key>.json with its revision in
// a <escaped key>.rev sidecar, so the value file holds nothing but the payload.
// The mutex serialises writers in this process only.
//
// The sidecar is always written before the value. A crash between the two
// leaves the old value under a newer revision, which makes writers that read
// the old revision fail their check instead of passing it.
type FileBackend struct {
	mu  sync.Mutex
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr("failed to create storage directory", err)
	}
	return &FileBackend{dir: dir}, nil
}

// paths escapes the key so that distinct keys never share a file and no key
// reaches outside dir.
func (f *FileBackend) paths(key string) (value, rev string) {
	base := url.PathEscape(key)
	return filepath.Join(f.dir, base+".json"), filepath.Join(f.dir, base+".rev")
}

func (f *FileBackend) Get(_ context.Context, key string) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	valuePath, revPath := f.paths(key)
	rev, err := readRevision(revPath)
	if err != nil {
		return Record{}, err
	}

	value, err := os.ReadFile(valuePath)
	if errors.Is(err, fs.ErrNotExist) {
		if rev == 0 {
			return Record{}, notFound(key)
		}
		// cleared by Delete
		return Record{Revision: rev}, nil
	}
	if err != nil {
		return Record{}, infra.WrapRepoErr("failed to read "+valuePath, err)
	}
	return Record{Value: value, Revision: rev}, nil
}

func (f *FileBackend) Put(_ context.Context, key string, value []byte, expected int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	valuePath, revPath := f.paths(key)
	current, err := readRevision(revPath)
	if err != nil {
		return 0, err
	}
	if !admits(expected, current) {
		return 0, conflict(key, expected, current)
	}

	next := current + 1
	if err := writeAtomic(revPath, []byte(strconv.FormatInt(next, 10))); err != nil {
		return 0, err
	}
	if err := writeAtomic(valuePath, value); err != nil {
		return 0, err
	}
	return next, nil
}

func (f *FileBackend) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	valuePath, revPath := f.paths(key)
	current, err := readRevision(revPath)
	if err != nil {
		return err
	}
	_, statErr := os.Stat(valuePath)
	if current == 0 && errors.Is(statErr, fs.ErrNotExist) {
		return nil
	}

	if err := writeAtomic(revPath, []byte(strconv.FormatInt(current+1, 10))); err != nil {
		return err
	}
	if err := os.Remove(valuePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return infra.WrapRepoErr("failed to remove "+valuePath, err)
	}
	return nil
}

func (f *FileBackend) Close() error { return nil }

// A missing or unreadable sidecar counts as revision 0.
func readRevision(path string) (int64, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read "+path, err)
	}
	n, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return infra.WrapRepoErr("failed to create temp file", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return infra.WrapRepoErr("failed to write "+tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return infra.WrapRepoErr("failed to sync "+tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapRepoErr("failed to close "+tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return infra.WrapRepoErr("failed to move "+tmpName+" into place", err)
	}
	return nil
}
