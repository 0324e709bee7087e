package session

import "maps"

// Record is a flat key/value mapping stored under one session identifier.
type Record map[string]any

// Table maps session identifiers to their records. It is the unit of persistence.
type Table map[string]Record

// Clone returns a shallow copy of the record. Values are shared, keys are not.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Clone returns a copy of the table with every record cloned.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for id, rec := range t {
		if rec == nil {
			rec = Record{}
		}
		out[id] = rec.Clone()
	}
	return out
}

// merge copies every entry of src into dst, overwriting existing keys.
// It is shallow: nested values are copied by reference.
func merge(dst, src Record) Record {
	if dst == nil {
		dst = make(Record, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// without rebuilds rec with key removed so the key is absent afterwards.
func without(rec Record, key string) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if k != key {
			out[k] = v
		}
	}
	return out
}
