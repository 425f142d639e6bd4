// Package processor contains the application logic behind the CLI
// commands. It loads the dictionary, runs single and batch lookups with
// optional translation, and starts the HTTP server.
package processor
