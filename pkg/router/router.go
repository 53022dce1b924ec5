// Package router is a thin generic layer over net/http. Handlers take a
// typed request and return a typed response; the router binds queries or
// JSON bodies, runs the context middlewares, and wraps every reply in the
// standard response envelope.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc decorates the request context before the handler runs.
// Returning an error short-circuits the request.
type MiddlewareFunc func(ctx context.Context, r *http.Request) (context.Context, error)

type Router struct {
	mux         *http.ServeMux
	middlewares []MiddlewareFunc
}

func New() *Router {
	return &Router{mux: http.NewServeMux()}
}

func (r *Router) Use(middleware MiddlewareFunc) {
	r.middlewares = append(r.middlewares, middleware)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	router *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		ctx := req.Context()
		var err error
		for _, middleware := range router.middlewares {
			ctx, err = middleware(ctx, req)
			if err != nil {
				writeResponse(ctx, w, newErrorResponse(err))
				return
			}
		}

		var request Request
		switch method {
		case http.MethodGet:
			err = bindQuery(req.URL.Query(), &request)
		case http.MethodPost:
			err = json.NewDecoder(req.Body).Decode(&request)
			if errors.Is(err, io.EOF) {
				err = nil
			}
		}

		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			writeResponse(ctx, w, newErrorResponse(errorx.New(errorx.BadRequest, "Cannot bind the request")))
			return
		}

		resp, err := handler(ctx, &request)
		if err != nil {
			writeResponse(ctx, w, newErrorResponse(err))
			return
		}

		writeResponse(ctx, w, newResponse(resp))
	}
}
