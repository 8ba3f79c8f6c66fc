// Package wrappers is the root of the generated, strongly-typed packet
// wrappers. Generated packages live below it, one per protocol package and
// direction.
package wrappers

//go:generate go run ../../cmd/gen-wrapper --out . --manifest manifest.yaml

import "github.com/seitarof/gen-wrapper/pkg/container"

// Base is embedded by every generated wrapper.
type Base struct {
	container *container.PacketContainer
}

// NewBase binds a wrapper to its container.
func NewBase(c *container.PacketContainer) Base {
	return Base{container: c}
}

// Container returns the wrapped packet container.
func (b Base) Container() *container.PacketContainer {
	return b.container
}
