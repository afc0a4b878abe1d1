package crud

import "context"

// Values is an entity-agnostic field payload keyed by field name. Nested or
// foreign-key fields use dotted paths (e.g. "profile.address").
type Values map[string]any

// Clone returns a shallow copy of the payload.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Record is one persisted business entity instance with an opaque string
// identity.
type Record interface {
	RecordID() string
}

// Collaborator is the remote persistence contract for one entity
// collection. Implementations are expected to be safe for concurrent use;
// the engine never calls them while holding internal locks.
type Collaborator[T Record] interface {
	List(ctx context.Context, q Query) (Page[T], error)
	Create(ctx context.Context, values Values) (T, error)
	Update(ctx context.Context, id string, values Values) (T, error)
	Remove(ctx context.Context, id string) error
}
