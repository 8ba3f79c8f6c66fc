// Package login holds the raw login-phase packets.
package login

import (
	"github.com/google/uuid"

	"github.com/seitarof/gen-wrapper/pkg/protocol"
)

// ServerboundHelloPacket starts the login sequence.
type ServerboundHelloPacket struct {
	name      string
	profileID uuid.UUID
}

// ClientboundHelloPacket requests encryption.
type ClientboundHelloPacket struct {
	serverID           string
	publicKey          []byte
	challenge          []byte
	shouldAuthenticate bool
}

// ClientboundLoginCompressionPacket enables compression.
type ClientboundLoginCompressionPacket struct {
	compressionThreshold int32
}

// ClientboundLoginDisconnectPacket rejects the login.
type ClientboundLoginDisconnectPacket struct {
	reason protocol.Component
}
