package received

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Counter interface {
	Received(endpoint string)
}

// New counts requests per matched route pattern. Routes using it must be
// registered directly on the router so the pattern is known up front.
func New(counter Counter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				counter.Received(rctx.RoutePattern())
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
