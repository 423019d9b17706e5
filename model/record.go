package model

// Record is a normalized write payload: persisted column names paired with
// their values, in insertion order. Persisted reports whether the row
// already exists in the store; it is set from a fetch, never guessed from
// the magnitude of the id.
type Record struct {
	Kind      Kind
	ID        int64
	Persisted bool
	Cols      []string
	Vals      []interface{}
}

func (r *Record) Set(col string, val interface{}) {
	for i, c := range r.Cols {
		if c == col {
			r.Vals[i] = val
			return
		}
	}
	r.Cols = append(r.Cols, col)
	r.Vals = append(r.Vals, val)
}

func (r *Record) Value(col string) (interface{}, bool) {
	for i, c := range r.Cols {
		if c == col {
			return r.Vals[i], true
		}
	}
	return nil, false
}

func (r *Record) Has(col string) bool {
	_, ok := r.Value(col)
	return ok
}
