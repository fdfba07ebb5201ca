package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// pathInt reads an integer path wildcard.
func pathInt(r *http.Request, op, key string) (int, error) {
	raw := r.PathValue(key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, WrapKind(op, ErrBadRequest, fmt.Errorf("%s must be an integer, got %q", key, raw))
	}
	return n, nil
}

// queryInt reads an integer query parameter. When the parameter is absent
// def is returned, or an error if required.
func queryInt(r *http.Request, op, key string, def int, required bool) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		if required {
			return 0, WrapKind(op, ErrBadRequest, fmt.Errorf("missing %s", key))
		}
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, WrapKind(op, ErrBadRequest, fmt.Errorf("%s must be an integer, got %q", key, raw))
	}
	return n, nil
}

// queryList collects a repeatable parameter, also splitting on commas
// unless keepCommas is set.
func queryList(r *http.Request, key string, keepCommas bool) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		parts := []string{v}
		if !keepCommas {
			parts = strings.Split(v, ",")
		}
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
