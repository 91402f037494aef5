package covtable

import (
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/covtable/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

// Index associates named coverage sets, typically one per font face,
// with label metadata. It answers which entries cover a given code
// and supports label selector queries.
type Index interface {
	Get(name string) (Entry, error)
	Claim(name string, cov *interval.Set, lbls labels.Set) error
	Release(name string) error
	Update(name string, lbls labels.Set) error

	Count() int
	Has(name string) bool

	Covering(code int64) []Entry
	GetByLabel(selector labels.Selector) []Entry
	GetAll() []Entry

	Iterate() *Iterator
}

func New() Index {
	return &index{
		m:       new(sync.RWMutex),
		entries: map[string]Entry{},
	}
}

type index struct {
	m       *sync.RWMutex
	entries map[string]Entry
}

func (r *index) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("no match found for: %s", name)
	}
	return e, nil
}

// Claim registers a coverage set under name. The index takes a
// snapshot of cov; later mutations by the caller are not reflected.
func (r *index) Claim(name string, cov *interval.Set, lbls labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("entry %s already exists", name)
	}
	if cov == nil {
		return fmt.Errorf("entry %s has no coverage set", name)
	}
	r.entries[name] = NewEntry(name, cov.Clone(), lbls)
	return nil
}

func (r *index) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	delete(r.entries, name)
	return nil
}

func (r *index) Update(name string, lbls labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	r.entries[name] = NewEntry(name, e.Coverage(), lbls)
	return nil
}

func (r *index) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *index) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Covering returns the entries whose coverage contains code, in name
// order.
func (r *index) Covering(code int64) []Entry {
	entries := []Entry{}
	iter := r.Iterate()
	for iter.Next() {
		if iter.Entry().Coverage().Has(code) {
			entries = append(entries, iter.Entry())
		}
	}
	return entries
}

func (r *index) GetByLabel(selector labels.Selector) []Entry {
	entries := []Entry{}
	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Entry().Labels()) {
			entries = append(entries, iter.Entry())
		}
	}
	return entries
}

func (r *index) GetAll() []Entry {
	entries := []Entry{}
	iter := r.Iterate()
	for iter.Next() {
		entries = append(entries, iter.Entry())
	}
	return entries
}

func (r *index) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make(map[string]Entry, len(r.entries))
	for name, e := range r.entries {
		entries[name] = e
	}

	return &Iterator{current: -1, keys: keys, entries: entries}
}
