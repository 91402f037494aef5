package interval

// Iterator walks a snapshot of intervals in ascending order.
type Iterator struct {
	current int
	rr      []Interval
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.rr)
}

func (r *Iterator) Range() Interval {
	return r.rr[r.current]
}

func (r *Iterator) Lo() int64 {
	return r.rr[r.current].Lo
}

func (r *Iterator) End() int64 {
	return r.rr[r.current].End
}
