// Package http implements the REST API of the study service.
//
// It wires the chi router, the request handlers and the middleware chain.
// Tracing, access logging, CORS, compression and bearer-token
// authentication are handled here before requests reach the service layer.
package http
