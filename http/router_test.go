package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterResolveExactMatch(t *testing.T) {
	router := NewRouter().
		AddEndpoint("/", MethodGet, func(*Request) Response {
			return Response{Status: StatusOK, Body: "root"}
		}).
		AddEndpoint("/things", MethodPost, func(*Request) Response {
			return Response{Status: StatusCreated, Body: "created"}
		})

	req := Request{Method: MethodPost, Endpoint: "/things"}
	res := router.Resolve(&req)(&req)
	assert.Equal(t, StatusCreated, res.Status)
	assert.Equal(t, "created", res.Body)

	// Same path, different method: no match.
	req = Request{Method: MethodGet, Endpoint: "/things"}
	res = router.Resolve(&req)(&req)
	assert.Equal(t, StatusNotFound, res.Status)

	// No prefix matching.
	req = Request{Method: MethodGet, Endpoint: "/things/42"}
	res = router.Resolve(&req)(&req)
	assert.Equal(t, StatusNotFound, res.Status)
}

func TestRouterResolveIsDeterministic(t *testing.T) {
	router := NewRouter().
		GET("/a", func(*Request) Response { return Response{Status: StatusOK, Body: "a"} }).
		GET("/b", func(*Request) Response { return Response{Status: StatusOK, Body: "b"} })

	req := Request{Method: MethodGet, Endpoint: "/a"}
	for i := 0; i < 10; i++ {
		res := router.Resolve(&req)(&req)
		assert.Equal(t, "a", res.Body)
	}

	missing := Request{Method: MethodGet, Endpoint: "/missing"}
	for i := 0; i < 10; i++ {
		res := router.Resolve(&missing)(&missing)
		assert.Equal(t, StatusNotFound, res.Status)
	}
}

func TestRouterFirstRegistrationWins(t *testing.T) {
	router := NewRouter().
		GET("/dup", func(*Request) Response { return Response{Status: StatusOK, Body: "first"} }).
		GET("/dup", func(*Request) Response { return Response{Status: StatusOK, Body: "second"} })

	req := Request{Method: MethodGet, Endpoint: "/dup"}
	res := router.Resolve(&req)(&req)
	assert.Equal(t, "first", res.Body)
}

func TestNotFoundHandler(t *testing.T) {
	req := Request{Method: MethodGet, Endpoint: "/anywhere"}
	res := NotFoundHandler(&req)
	assert.Equal(t, StatusNotFound, res.Status)
}
