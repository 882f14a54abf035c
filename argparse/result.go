package argparse

import "sort"

// Result maps destination keys to resolved values. Lookups of missing keys
// or mismatched kinds return zero values rather than failing.
type Result struct {
	values map[string]Value
}

// Get returns the value stored under key. A present key may hold None,
// e.g. a "*" argument that matched no tokens.
func (r *Result) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key was filled.
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Len returns the number of filled keys.
func (r *Result) Len() int { return len(r.values) }

// Keys returns the destination keys in sorted order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying mapping.
func (r *Result) Map() map[string]Value {
	out := make(map[string]Value, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Strings renders every value with Value.String.
func (r *Result) Strings() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v.String()
	}
	return out
}

// GetString returns the string under key, or "".
func (r *Result) GetString(key string) string { return r.values[key].Str() }

// GetInt returns the int under key, or 0.
func (r *Result) GetInt(key string) int { return r.values[key].IntValue() }

// GetDouble returns the double under key, or 0.
func (r *Result) GetDouble(key string) float64 { return r.values[key].DoubleValue() }

// GetBool returns the bool under key, or false.
func (r *Result) GetBool(key string) bool { return r.values[key].BoolValue() }

// GetStrings returns the string array under key, or nil.
func (r *Result) GetStrings(key string) []string { return r.values[key].StringArray() }

// GetInts returns the int array under key, or nil.
func (r *Result) GetInts(key string) []int { return r.values[key].IntArray() }

// GetDoubles returns the double array under key, or nil.
func (r *Result) GetDoubles(key string) []float64 { return r.values[key].DoubleArray() }

// GetBools returns the bool array under key, or nil.
func (r *Result) GetBools(key string) []bool { return r.values[key].BoolArray() }
