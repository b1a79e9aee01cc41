// Package domain defines the MCP tool surface for mascot design generation:
// input/output schemas and the handlers that bind them to the design service.
package domain
