package tokenstore

// Store is the durable per-user key-value slot backing a single credential or
// mirror value. Load returns an empty string (not an error) when nothing has
// been saved yet; absence is a normal state, discovered expiry is not stored
// here at all.
type Store interface {
	Save(value string) error
	Load() (string, error)
	Clear() error
}
