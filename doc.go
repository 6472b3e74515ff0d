// Package plans is the composition root for a small file-backed note list.
//
// A store keeps every note in one file (or one SQLite row) and rewrites the
// whole list on each change. The repository caches the list in memory and
// only replaces its cache after the gateway has accepted the new bytes, so
// memory and disk never disagree. A presenter sits on top, keeps the notes
// sorted newest first, and tells a view which rows to redraw.
//
// Layout:
//
//   - pkg/core: the Note type, error sentinels and the ports (Gateway, Codec, NoteRepository).
//   - pkg/codec: JSON, YAML and CSV encodings of the note list.
//   - pkg/adapters/fs and pkg/adapters/sqlite: persistence gateways.
//   - pkg/repository: the cached, transactional repository.
//   - pkg/presenter: the display list and its view notifications.
//
// Usage:
//
//	store, err := plans.Open(ctx, "./notes", plans.WithFormat("yaml"))
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	p := plans.NewPresenter(store, view)
//	if err := p.Load(ctx); err != nil {
//		return err
//	}
//	_, err = p.Create(ctx, "Buy milk", "two litres")
package plans
