package restmachinery

import "net/http"

// Filter is an interface to be implemented by components that can wrap one
// http.HandlerFunc (e.g. one that handles authentication) around another.
type Filter interface {
	// Decorate decorates one http.HandlerFunc with another
	Decorate(http.HandlerFunc) http.HandlerFunc
}
