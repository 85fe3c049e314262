// Package state owns the product collection for the running program.
//
// # Overview
//
// A Store is loaded once from a storage.Slot at startup and then mutated by the
// UI or the CLI through Add, Edit and Remove. Every mutation re-serializes the
// complete collection and writes it back to the slot before returning, so the
// slot always holds the latest state (whole-collection writes, never deltas).
//
//	startup:   slot.Read ──> json.Unmarshal ──> Store{products}
//	mutation:  Add/Edit/Remove ──> json.Marshal(all) ──> slot.Write
//	render:    Store.Products() ──> catalog pipeline ──> UI
//
// # Load Semantics
//
//   - Slot empty or never written: empty store, no error
//   - Slot content is not a JSON product array: empty store, warning logged
//   - Slot I/O failure: error returned, nothing is overwritten
//
// The next mutation replaces unreadable content with a valid array.
//
// # Identifiers
//
// New products get the current Unix time in milliseconds as id. If that value
// is not greater than the highest id already present (fast successive adds, a
// clock step backwards, or imported data from the future) the id becomes
// highest+1 instead. Ids are never reused within a store.
//
// # Concurrency
//
// The program is single-user and event driven; the RWMutex only keeps Bubble
// Tea commands that read snapshots from racing the update loop. Products
// returns a copy, so callers may sort or slice it freely.
//
// # Errors
//
// Edit and Remove wrap ErrNotFound for unknown ids and do not touch the slot.
// A failed slot write is returned wrapped as "persist catalog: ..." while the
// in-memory change is kept; there is no rollback.
package state
