// Package daemon provides finfod startup and shutdown orchestration.
//
// The Daemon coordinates the lifecycle of the finfod servers: API server
// startup, optional metrics server startup, and graceful ordered teardown
// bounded by the configured shutdown timeout.
package daemon
