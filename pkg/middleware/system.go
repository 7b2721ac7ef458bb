package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes an ordered middleware chain around a terminal handler.
type System interface {
	Use(mw Middleware)
	Wrap(handler http.Handler) http.Handler
}

type system struct {
	chain []Middleware
}

// New creates an empty middleware system. Middleware registered first wraps
// outermost, so it observes the request before later registrations.
func New() System {
	return &system{}
}

func (s *system) Use(mw Middleware) {
	s.chain = append(s.chain, mw)
}

func (s *system) Wrap(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.chain) - 1; i >= 0; i-- {
		wrapped = s.chain[i](wrapped)
	}
	return wrapped
}
