package storefake

import (
	"sync"

	"github.com/broqhotels/broq-go/tokenstore"
)

var _ tokenstore.Store = (*FakeStore)(nil)

// FakeStore is an in-memory Store for tests.
type FakeStore struct {
	lock  sync.RWMutex
	value string
	set   bool

	SaveErr  error
	LoadErr  error
	ClearErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (fs *FakeStore) Save(value string) error {
	if fs.SaveErr != nil {
		return fs.SaveErr
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.value = value
	fs.set = true
	return nil
}

func (fs *FakeStore) Load() (string, error) {
	if fs.LoadErr != nil {
		return "", fs.LoadErr
	}
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	if !fs.set {
		return "", nil
	}
	return fs.value, nil
}

func (fs *FakeStore) Clear() error {
	if fs.ClearErr != nil {
		return fs.ClearErr
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.value = ""
	fs.set = false
	return nil
}

// Contains reports whether a value is currently stored.
func (fs *FakeStore) Contains() bool {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return fs.set
}
