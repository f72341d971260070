// Package http implements the HTTP transport layer of the comment board.
//
// The whole API is a single endpoint: every request carries an "op" form
// field that selects the operation, with the remaining fields acting as that
// operation's parameters. The package wires the route, parses and validates
// the per-operation parameters, and delegates to the service layer.
// Cross-cutting concerns such as request tracing, access logging, and
// response compression are handled here as middleware.
package http
