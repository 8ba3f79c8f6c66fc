// Package catalog enumerates the packet types known to the protocol layer.
package catalog

import (
	"fmt"
	"reflect"

	"github.com/seitarof/gen-wrapper/pkg/protocol"
	"github.com/seitarof/gen-wrapper/pkg/protocol/game"
	"github.com/seitarof/gen-wrapper/pkg/protocol/login"
	"github.com/seitarof/gen-wrapper/pkg/protocol/status"
)

// Catalog is an ordered, read-only set of packet descriptors.
type Catalog struct {
	types  []protocol.PacketType
	byName map[string]int
}

// New builds a catalog. Packet names must be unique.
func New(types ...protocol.PacketType) (*Catalog, error) {
	c := &Catalog{
		types:  make([]protocol.PacketType, 0, len(types)),
		byName: make(map[string]int, len(types)),
	}
	for _, t := range types {
		if t.Name == "" {
			return nil, fmt.Errorf("packet %s has no name", t)
		}
		if _, dup := c.byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate packet name %q", t.Name)
		}
		c.byName[t.Name] = len(c.types)
		c.types = append(c.types, t)
	}
	return c, nil
}

// Values returns every descriptor in registration order.
func (c *Catalog) Values() []protocol.PacketType {
	out := make([]protocol.PacketType, len(c.types))
	copy(out, c.types)
	return out
}

// Lookup finds a descriptor by packet name.
func (c *Catalog) Lookup(name string) (protocol.PacketType, bool) {
	i, ok := c.byName[name]
	if !ok {
		return protocol.PacketType{}, false
	}
	return c.types[i], true
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int { return len(c.types) }

func packet[P any](phase protocol.Phase, sender protocol.Sender, id int32) protocol.PacketType {
	t := reflect.TypeFor[P]()
	return protocol.PacketType{
		Phase:     phase,
		Sender:    sender,
		ID:        id,
		Name:      t.Name(),
		Class:     t,
		Supported: true,
	}
}

func deprecated(p protocol.PacketType) protocol.PacketType {
	p.Deprecated = true
	return p
}

func unsupported(p protocol.PacketType) protocol.PacketType {
	p.Supported = false
	return p
}

// Default returns the catalog of the bundled protocol version.
func Default() *Catalog {
	const (
		client = protocol.SenderClient
		server = protocol.SenderServer
	)
	c, err := New(
		packet[status.ClientIntentionPacket](protocol.PhaseHandshake, client, 0x00),

		packet[status.ClientboundStatusResponsePacket](protocol.PhaseStatus, server, 0x00),
		packet[status.ClientboundPongResponsePacket](protocol.PhaseStatus, server, 0x01),
		packet[status.ServerboundPingRequestPacket](protocol.PhaseStatus, client, 0x01),

		packet[login.ClientboundLoginDisconnectPacket](protocol.PhaseLogin, server, 0x00),
		packet[login.ClientboundHelloPacket](protocol.PhaseLogin, server, 0x01),
		packet[login.ClientboundLoginCompressionPacket](protocol.PhaseLogin, server, 0x03),
		packet[login.ServerboundHelloPacket](protocol.PhaseLogin, client, 0x00),

		unsupported(packet[game.ClientboundBundlePacket](protocol.PhasePlay, server, 0x00)),
		packet[game.ClientboundAddEntityPacket](protocol.PhasePlay, server, 0x01),
		packet[game.ClientboundBlockUpdatePacket](protocol.PhasePlay, server, 0x09),
		packet[game.ClientboundContainerSetSlotPacket](protocol.PhasePlay, server, 0x14),
		packet[game.ClientboundLoginPacket](protocol.PhasePlay, server, 0x2B),
		packet[game.ClientboundPlayerAbilitiesPacket](protocol.PhasePlay, server, 0x38),
		packet[game.ClientboundSetEquipmentPacket](protocol.PhasePlay, server, 0x5B),
		packet[game.ClientboundSetHealthPacket](protocol.PhasePlay, server, 0x5D),
		deprecated(packet[game.ClientboundSetTitlesPacket](protocol.PhasePlay, server, 0x5F)),
		packet[game.ClientboundSystemChatPacket](protocol.PhasePlay, server, 0x6C),
		packet[game.ServerboundChatPacket](protocol.PhasePlay, client, 0x06),
		packet[game.ServerboundMovePlayerPacket](protocol.PhasePlay, client, 0x1A),
		packet[game.ServerboundPlayerActionPacket](protocol.PhasePlay, client, 0x24),
		packet[game.ServerboundUseItemPacket](protocol.PhasePlay, client, 0x39),
	)
	if err != nil {
		panic(err)
	}
	return c
}
