package brc

import (
	"unsafe"

	"github.com/dolthub/swiss"
)

// expected number of distinct stations, the map grows past it when needed
const storeSize = 1024

type InfoStore struct {
	m *swiss.Map[string, *Info]
}

func NewInfoStore() *InfoStore {
	return &InfoStore{
		m: swiss.NewMap[string, *Info](storeSize),
	}
}

// Update accounts item. The name is copied only the first time it is seen,
// lookups of known stations do not allocate.
func (store *InfoStore) Update(item Item) {
	if info, ok := store.m.Get(bytesToString(item.name)); ok {
		info.Update(item.value)
		return
	}
	store.m.Put(string(item.name), InfoFromItem(item))
}

// Merge takes ownership of other, it must not be used by the caller after.
func (store *InfoStore) Merge(name string, other *Info) {
	if mine, ok := store.m.Get(name); ok {
		mine.Merge(other)
	} else {
		store.m.Put(name, other)
	}
}

func (store *InfoStore) Len() int {
	return store.m.Count()
}

// Each calls fn for every station in unspecified order.
func (store *InfoStore) Each(fn func(name string, info *Info)) {
	store.m.Iter(func(name string, info *Info) bool {
		fn(name, info)
		return false
	})
}

// Names returns the station names in unspecified order.
func (store *InfoStore) Names() []string {
	names := make([]string, 0, store.Len())
	store.Each(func(name string, _ *Info) {
		names = append(names, name)
	})
	return names
}

// Snapshot returns a copy of the store contents detached from the store.
func (store *InfoStore) Snapshot() map[string]Info {
	out := make(map[string]Info, store.Len())
	store.Each(func(name string, info *Info) {
		out[name] = *info
	})
	return out
}

// bytesToString aliases b, the result is only valid while b is unchanged
// and must never be stored.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
