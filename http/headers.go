package http

import "strings"

// Headers maps header names to a single value each. Names are normalized
// to lower-case on insert, so lookups are case-insensitive and setting the
// same name twice overwrites the earlier value. Repeatable headers are not
// modeled.
type Headers map[string]string

func (headers Headers) Set(key, value string) {
	headers[strings.ToLower(key)] = value
}

func (headers Headers) Get(key string) (string, bool) {
	value, found := headers[strings.ToLower(key)]
	return value, found
}

func (headers Headers) Has(key string) bool {
	_, found := headers[strings.ToLower(key)]
	return found
}
