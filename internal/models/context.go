package models

import "net/http"

type contextKey struct {
	name string
}

// Universal context key to get the request ID from context
var RequestIDContextKey = contextKey{name: "request_id"}

// GetRequestIDFromContext gets the request ID from context
func GetRequestIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(RequestIDContextKey).(string)
	return id // empty if not in context
}
