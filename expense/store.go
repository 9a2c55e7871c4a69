/*
store.go - Persistence interface for expense records

PURPOSE:
  Defines the interface between the query engine and the record collection.
  The Store keeps the session's expenses in insertion order and is the only
  place new records enter the system.

APPEND-ONLY CONTRACT:
  - Append(): the single write operation
  - NO Update() or Delete() methods exist; deletion is out of scope

SNAPSHOT READS:
  Snapshot() returns a copy of the collection. The query engine evaluates
  over the copy, so a concurrent append can never be observed half-applied
  and a caller can never mutate stored records through a result.

IMPLEMENTATIONS:
  - store/memory.go: In-memory, process-lifetime store

SEE ALSO:
  - validate.go: The only sanctioned producer of records
  - query.go: The only consumer of snapshots
*/
package expense

import (
	"context"
	"errors"
)

// ErrInvalidRecord is returned when an append bypasses validation with a
// record that breaks the store invariants (non-positive amount or a
// category outside the closed set).
var ErrInvalidRecord = errors.New("invalid expense record")

// Store holds the session's expense records in insertion order.
type Store interface {
	// Append admits one validated record. Returns ErrInvalidRecord if the
	// record violates the store invariants.
	Append(ctx context.Context, r Record) error

	// Snapshot returns a copy of all records in insertion order.
	Snapshot(ctx context.Context) ([]Record, error)

	// Reset clears the store. Used by demo-data loading only.
	Reset(ctx context.Context) error
}
