// Package protocol describes the raw network messages of the game server:
// the packet descriptors consumed by tooling and the value types shared by
// packet structs.
package protocol

import (
	"fmt"
	"reflect"
)

// Phase is the connection phase a packet belongs to.
type Phase int

const (
	PhaseHandshake Phase = iota
	PhaseStatus
	PhaseLogin
	PhaseConfiguration
	PhasePlay
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "handshake"
	case PhaseStatus:
		return "status"
	case PhaseLogin:
		return "login"
	case PhaseConfiguration:
		return "configuration"
	case PhasePlay:
		return "play"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Sender is the side of the connection that sends a packet.
type Sender int

const (
	SenderClient Sender = iota
	SenderServer
)

func (s Sender) String() string {
	if s == SenderServer {
		return "SERVER"
	}
	return "CLIENT"
}

// MojangName is the direction name used by the vanilla protocol: packets sent
// by the server are clientbound.
func (s Sender) MojangName() string {
	if s == SenderServer {
		return "Clientbound"
	}
	return "Serverbound"
}

// PacketType describes one raw message type.
type PacketType struct {
	Phase      Phase
	Sender     Sender
	ID         int32
	Name       string
	Class      reflect.Type
	Supported  bool
	Deprecated bool
}

// IsSupported reports whether the packet exists in the running protocol version.
func (p PacketType) IsSupported() bool { return p.Supported && p.Class != nil }

// IsDeprecated reports whether the packet is kept only for compatibility.
func (p PacketType) IsDeprecated() bool { return p.Deprecated }

func (p PacketType) String() string {
	return fmt.Sprintf("%s/%s/0x%02X %s", p.Phase, p.Sender.MojangName(), p.ID, p.Name)
}
