package covtable

// Iterator walks the index entries in name order.
type Iterator struct {
	current int
	keys    []string
	entries map[string]Entry
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}

func (r *Iterator) Name() string {
	return r.keys[r.current]
}

func (r *Iterator) Entry() Entry {
	return r.entries[r.keys[r.current]]
}
