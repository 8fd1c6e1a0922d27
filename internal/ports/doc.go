// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers
// and the CLI. Provider ports are implemented by outbound adapters (manifest
// catalogs, the convention registry client, the source cache) and called by
// the application layer.
package ports
