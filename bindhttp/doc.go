/*
Package bindhttp provides HTTP middleware that creates a [bindkit.Scope] for
each request.

Example:

	package main

	import (
		"net/http"

		"github.com/goresolve/bindkit"
		"github.com/goresolve/bindkit/bindctx"
		"github.com/goresolve/bindkit/bindhttp"
	)

	func main() {
		c := bindkit.New()
		_ = bindkit.RegisterType[*RequestHandler](c, bindkit.Scoped)

		provider, err := c.Build()
		if err != nil {
			panic(err)
		}

		scopeMiddleware, _ := bindhttp.NewRequestScopeMiddleware(provider)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := bindctx.MustResolve[*RequestHandler](r.Context())
			h.Handle(w, r)
		})

		http.Handle("/", scopeMiddleware(handler))
		http.ListenAndServe(":8080", nil)
	}
*/
package bindhttp
