// Package service hosts the MCP server over stdio or HTTP transports and
// wires the design tool handlers into it.
package service
