// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, the CLI). Platform ports such as Clock are
// implemented under internal/platform and injected into the application layer.
package ports
