package crud

import "context"

// InsertFunc persists a new record built from a validated payload.
type InsertFunc[T Record] func(ctx context.Context, values Values) (T, error)

// UpdateFunc persists a validated payload against an existing record.
type UpdateFunc[T Record] func(ctx context.Context, id string, values Values) (T, error)

// Result is the outcome of a coordinated submission. A nil Err is the
// unconditional completion signal: the coordinator always reports
// completion on remote success, and the call site decides what completion
// means (close a dialog, navigate away, nothing at all). The same policy
// applies to both the insert and the update path.
type Result[T Record] struct {
	Record  T
	Created bool
	Err     error
}

// OK reports whether the submission completed successfully.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Coordinate dispatches a validated submission as an insert or an update.
// A nil current record means insert; otherwise update is called with the
// record's identity. On remote success the server's result payload is
// pushed to the notifier; on failure the error payload is pushed instead
// and the session is left open for correction. Re-invoking with the same
// values against the insert path produces a second distinct record;
// inserts are not deduplicated by payload.
func Coordinate[T Record](ctx context.Context, values Values, current *T, insert InsertFunc[T], update UpdateFunc[T], notifier Notifier) Result[T] {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	if current == nil {
		rec, err := insert(ctx, values)
		if err != nil {
			notifier.Error("create failed", err)
			return Result[T]{Err: err}
		}
		notifier.Success("created", rec)
		return Result[T]{Record: rec, Created: true}
	}

	rec, err := update(ctx, (*current).RecordID(), values)
	if err != nil {
		notifier.Error("update failed", err)
		return Result[T]{Err: err}
	}
	notifier.Success("updated", rec)
	return Result[T]{Record: rec}
}
