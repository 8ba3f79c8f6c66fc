// Package game holds the raw play-phase packets.
package game

import (
	"github.com/google/uuid"

	"github.com/seitarof/gen-wrapper/pkg/protocol"
)

// ClientboundLoginPacket starts the play phase for a joining player.
type ClientboundLoginPacket struct {
	playerID           int32
	hardcore           bool
	levels             []protocol.ResourceLocation
	maxPlayers         int32
	chunkRadius        int32
	simulationDistance int32
	reducedDebugInfo   bool
	showDeathScreen    bool
	gameType           protocol.GameType
	previousGameType   protocol.GameType
	difficulty         protocol.Difficulty
	seed               int64
	dimension          protocol.ResourceLocation
	portalCooldown     int32
	enforcesSecureChat bool
}

// ClientboundSetHealthPacket updates the player's health and food.
type ClientboundSetHealthPacket struct {
	health     float32
	food       int32
	saturation float32
}

// ClientboundBlockUpdatePacket changes a single block.
type ClientboundBlockUpdatePacket struct {
	pos        protocol.BlockPos
	blockState int32
}

// ClientboundSystemChatPacket shows a server message.
type ClientboundSystemChatPacket struct {
	content protocol.Component
	overlay bool
}

// ClientboundAddEntityPacket spawns an entity.
type ClientboundAddEntityPacket struct {
	id         int32
	uuid       uuid.UUID
	entityType protocol.ResourceLocation
	pos        protocol.Vec3
	movement   protocol.Vec3
	xRot       int8
	yRot       int8
	yHeadRot   int8
	data       int32
}

// ClientboundSetEquipmentPacket replaces an entity's equipment.
type ClientboundSetEquipmentPacket struct {
	entity int32
	slots  map[protocol.EquipmentSlot]protocol.ItemID
}

// ClientboundContainerSetSlotPacket sets one slot of an open container.
type ClientboundContainerSetSlotPacket struct {
	containerID int32
	stateID     int32
	slot        int16
	itemStack   protocol.ItemID
}

// ClientboundPlayerAbilitiesPacket sends the player's abilities.
type ClientboundPlayerAbilitiesPacket struct {
	isInvulnerable bool
	isFlying       bool
	canFly         bool
	instabuild     bool
	flyingSpeed    float32
	walkingSpeed   float32
}

// ClientboundSetTitlesPacket is the pre-split title packet.
type ClientboundSetTitlesPacket struct {
	text    protocol.Component
	fadeIn  int32
	stay    int32
	fadeOut int32
}

// ClientboundBundlePacket groups packets that must be applied in one tick.
type ClientboundBundlePacket struct {
	packets []any
}
