// Package server implements the MCP (Model Context Protocol) server that
// exposes the dot-grid tooling over JSON-RPC 2.0 on stdin/stdout.
//
// The server speaks newline-delimited JSON-RPC: one request per line on
// stdin, one response per line on stdout. Diagnostics go to stderr so they
// never corrupt the protocol stream.
//
// Tools cover the inspection workflow end to end: loading persisted symbol
// grids, enumerating their dihedral transforms, searching a candidate grid
// for a reference pattern, detecting dots on scanned page images, collapsing
// a page into its symbol grid, and generating synthetic sample pages.
package server
