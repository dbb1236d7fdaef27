package middleware

import (
	"net/http"
	"strings"
)

// overrideField is the form field and query parameter carrying the intended
// HTTP method, following the common `_method` convention.
const overrideField = "_method"

// MethodOverride rewrites POST requests carrying a `_method` form field or
// query parameter into the method it names. HTML forms can only submit GET
// and POST, so PUT and DELETE routes are reached through this rewrite.
// Only PUT, PATCH, and DELETE are honored; anything else is left alone.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := overrideMethod(r); m != "" {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	m := r.URL.Query().Get(overrideField)
	if m == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		// ParseForm reads the body once; handlers reuse the parsed values
		// from r.PostForm afterwards.
		if err := r.ParseForm(); err == nil {
			m = r.PostForm.Get(overrideField)
		}
	}

	switch strings.ToUpper(m) {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return strings.ToUpper(m)
	}
	return ""
}
