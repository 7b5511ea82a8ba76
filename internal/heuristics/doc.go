// Package heuristics derives study material from plain text using
// frequency, keyword and position scoring.
//
// Every function is pure and deterministic: the same text always yields the
// same artifacts, and sparse input falls back to generic defaults instead of
// failing.
package heuristics
