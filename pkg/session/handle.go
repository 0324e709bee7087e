package session

import "context"

// Handle is a view over one session record in a Registry.
// It holds no data: every read and write goes to the live table,
// so all handles for the same id observe the same record.
type Handle struct {
	id       string
	registry *Registry
}

// ID returns the session identifier the handle is bound to
func (h *Handle) ID() string {
	return h.id
}

// Exists reports whether the bound record is still live
func (h *Handle) Exists() bool {
	return h.registry.Has(h.id)
}

// Values returns a copy of the full record, or nil if the session was dropped
func (h *Handle) Values() Record {
	var out Record
	h.registry.read(h.id, func(rec Record, ok bool) {
		if ok {
			out = rec.Clone()
			if out == nil {
				out = Record{}
			}
		}
	})
	return out
}

// Value retrieves a value from the record
func (h *Handle) Value(key string) (any, bool) {
	var (
		val any
		ok  bool
	)
	h.registry.read(h.id, func(rec Record, live bool) {
		if live {
			val, ok = rec[key]
		}
	})
	return val, ok
}

// String retrieves a string value from the record
func (h *Handle) String(key string) (string, bool) {
	val, ok := h.Value(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Int retrieves an int value from the record.
// Decoded snapshots may carry numbers as int64 or float64, both are accepted.
func (h *Handle) Int(key string) (int, bool) {
	val, ok := h.Value(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Bool retrieves a bool value from the record
func (h *Handle) Bool(key string) (bool, bool) {
	val, ok := h.Value(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value in the record and persists the table
func (h *Handle) Set(ctx context.Context, key string, value any) (*Handle, error) {
	err := h.registry.update(ctx, h.id, func(rec Record) Record {
		if rec == nil {
			rec = Record{}
		}
		rec[key] = value
		return rec
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Delete removes a key from the record and persists the table
func (h *Handle) Delete(ctx context.Context, key string) (*Handle, error) {
	err := h.registry.update(ctx, h.id, func(rec Record) Record {
		return without(rec, key)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Reset replaces the record with an empty one and persists the table
func (h *Handle) Reset(ctx context.Context) (*Handle, error) {
	err := h.registry.update(ctx, h.id, func(Record) Record {
		return Record{}
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}
