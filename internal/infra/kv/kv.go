// Package kv holds the keyed blob backends the booking store is persisted in.
// Every key carries a revision that increases by one on each successful Put
// or Delete, which lets callers detect writes made since they last read.
// The revision of a key never goes backwards, not even across a Delete.
package kv

import (
	"context"

	"room-booking/internal/infra"
)

// AnyRevision makes Put unconditional (last write wins).
const AnyRevision int64 = -1

type Record struct {
	Value    []byte
	Revision int64
}

type Backend interface {
	// Get returns a KindNotFound error when the key was never written.
	// A deleted key reads as an empty value at its current revision.
	Get(ctx context.Context, key string) (Record, error)
	// Put stores value if the current revision equals expected (0 for a key
	// never written) and returns the new revision. A mismatch is KindConflict.
	Put(ctx context.Context, key string, value []byte, expected int64) (int64, error)
	// Delete clears the value and advances the revision. Deleting a key that
	// was never written is a no-op.
	Delete(ctx context.Context, key string) error
	Close() error
}

func notFound(key string) error {
	return infra.WrapRepoErr("key not found: "+key, nil, infra.KindNotFound)
}

func conflict(key string, expected, actual int64) error {
	return infra.WrapRepoErr(
		"revision mismatch for "+key+": expected "+itoa(expected)+", found "+itoa(actual),
		nil,
		infra.KindConflict,
	)
}

func staleWrite(key string, expected int64) error {
	return infra.WrapRepoErr("revision "+itoa(expected)+" is no longer current for "+key, nil, infra.KindConflict)
}

// admits reports whether a write expecting `expected` may replace revision `current`.
func admits(expected, current int64) bool {
	return expected == AnyRevision || expected == current
}
