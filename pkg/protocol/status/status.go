// Package status holds the raw status-phase and handshake packets.
package status

// ServerStatus is the server list entry.
type ServerStatus struct {
	Description string
	Online      int32
	Max         int32
}

// ClientboundStatusResponsePacket answers a status request.
type ClientboundStatusResponsePacket struct {
	status ServerStatus
}

// ServerboundPingRequestPacket measures latency.
type ServerboundPingRequestPacket struct {
	time int64
}

// ClientboundPongResponsePacket echoes the ping payload.
type ClientboundPongResponsePacket struct {
	time int64
}

// ClientIntentionPacket opens a connection and selects the next phase.
type ClientIntentionPacket struct {
	protocolVersion int32
	hostName        string
	port            uint16
	intention       int32
}
