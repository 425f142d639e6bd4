// Package server exposes the word generator over HTTP. It serves a JSON
// API under /api and a small browser frontend at the root path.
package server
