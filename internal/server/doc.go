// Package server runs the HTTP API and stops it gracefully on SIGINT,
// SIGTERM or SIGQUIT.
package server
