// Package http implements the HTTP transport layer of the broker.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as requester authentication, request
// tracing, and access logging are handled in this package before requests are
// delegated to the service layer.
package http
