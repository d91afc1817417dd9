package http

// Handler turns a decoded request into a response. Handlers own the request
// they are given and must not reach for shared mutable state beyond what
// they closed over at registration.
type Handler func(req *Request) Response

// Route binds one (path, method) pair to a handler.
type Route struct {
	Path   string
	Method Method
	Handle Handler
}

// Router is an ordered dispatch table. Register everything before handing
// it to a Server: the table is scanned without locking during dispatch.
type Router struct {
	Routes []Route
}

func NewRouter() *Router {
	return &Router{
		Routes: make([]Route, 0),
	}
}

// AddEndpoint registers a handler for the exact (path, method) pair and
// returns the router for chaining. If the same pair is registered twice,
// the first registration wins.
func (r *Router) AddEndpoint(path string, method Method, handle Handler) *Router {
	r.Routes = append(r.Routes, Route{
		Path:   path,
		Method: method,
		Handle: handle,
	})
	return r
}

func (r *Router) GET(path string, handle Handler) *Router {
	return r.AddEndpoint(path, MethodGet, handle)
}

func (r *Router) POST(path string, handle Handler) *Router {
	return r.AddEndpoint(path, MethodPost, handle)
}

func (r *Router) PUT(path string, handle Handler) *Router {
	return r.AddEndpoint(path, MethodPut, handle)
}

func (r *Router) DELETE(path string, handle Handler) *Router {
	return r.AddEndpoint(path, MethodDelete, handle)
}

// Resolve returns the handler for the request's (endpoint, method) pair.
// Matching is exact, no wildcards or prefixes. An unregistered pair
// resolves to NotFoundHandler, never to an error.
func (r *Router) Resolve(req *Request) Handler {
	for _, route := range r.Routes {
		if route.Path != req.Endpoint {
			continue
		}
		if route.Method != req.Method {
			continue
		}
		return route.Handle
	}
	return NotFoundHandler
}

// NotFoundHandler answers any request with a plain 404.
var NotFoundHandler Handler = func(*Request) Response {
	return Response{
		Status: StatusNotFound,
		Body:   StatusNotFound.Reason(),
	}
}
