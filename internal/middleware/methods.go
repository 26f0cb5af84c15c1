package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/ulp/panel/internal/response"
)

var candidateMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// routeMethods is one registered route pattern and the methods served on it.
type routeMethods struct {
	segments []string
	literals int
	methods  map[string]bool
}

// MethodNotAllowed returns a 405 handler that reports, in the Allow header,
// the methods registered on the route pattern matching the request path.
// The route table is read from routes on first use, once registration is done.
func MethodNotAllowed(routes chi.Routes) http.HandlerFunc {
	var (
		once  sync.Once
		table []routeMethods
	)
	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { table = routeTable(routes) })
		response.MethodNotAllowed(w, r.Method, allowedMethods(table, r.URL.Path))
	}
}

// NotFound is a JSON 404 handler for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	response.NotFound(w, "Not Found")
}

// routeTable flattens routes into endpoint patterns. chi.Walk skips mount
// stubs, so only methods with a real handler are recorded.
func routeTable(routes chi.Routes) []routeMethods {
	index := map[string]int{}
	var table []routeMethods
	_ = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		i, ok := index[route]
		if !ok {
			segs := splitPath(route)
			literals := 0
			for _, s := range segs {
				if !isParam(s) && s != "*" {
					literals++
				}
			}
			i = len(table)
			index[route] = i
			table = append(table, routeMethods{segments: segs, literals: literals, methods: map[string]bool{}})
		}
		table[i].methods[method] = true
		return nil
	})
	return table
}

// allowedMethods returns, in candidateMethods order, the methods of the most
// literal pattern matching path.
func allowedMethods(table []routeMethods, path string) []string {
	segs := splitPath(path)
	best := -1
	for i, rt := range table {
		if matchSegments(rt.segments, segs) && (best < 0 || rt.literals > table[best].literals) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	var allowed []string
	for _, m := range candidateMethods {
		if table[best].methods[m] {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

func matchSegments(pattern, path []string) bool {
	for i, p := range pattern {
		if p == "*" {
			return true
		}
		if i >= len(path) {
			return false
		}
		if isParam(p) {
			if path[i] == "" {
				return false
			}
			continue
		}
		if p != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}

func isParam(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

// splitPath splits a path on "/", ignoring leading and trailing slashes.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
