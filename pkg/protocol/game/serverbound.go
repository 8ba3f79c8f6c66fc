package game

import "github.com/seitarof/gen-wrapper/pkg/protocol"

// ServerboundChatPacket carries a signed chat message.
type ServerboundChatPacket struct {
	message   string
	timeStamp int64
	salt      int64
	signature []byte
	lastSeen  []int32
}

// ServerboundMovePlayerPacket reports the player's position and rotation.
type ServerboundMovePlayerPacket struct {
	x                   float64
	y                   float64
	z                   float64
	yRot                float32
	xRot                float32
	onGround            bool
	horizontalCollision bool
	hasPos              bool `wrap:"-"`
}

// ServerboundUseItemPacket uses the item held in a hand.
type ServerboundUseItemPacket struct {
	hand     protocol.Hand
	sequence int32
	yRot     float32
	xRot     float32
}

// ServerboundPlayerActionPacket reports digging and item actions.
type ServerboundPlayerActionPacket struct {
	pos       protocol.BlockPos
	direction int8
	sequence  int32
}
