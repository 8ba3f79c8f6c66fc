package protocol

// Enum is implemented by every protocol enumeration.
type Enum interface {
	Ordinal() int32
	String() string
}

// ResourceLocation is a namespaced identifier such as "minecraft:stone".
type ResourceLocation string

// Component is a chat component in its JSON text form.
type Component string

// ItemID is a numeric id in the item registry.
type ItemID int32

// Vec3 is a position or velocity in world space.
type Vec3 struct {
	X, Y, Z float64
}

// BlockPos is a block position packed as x:26, z:26, y:12 bits.
type BlockPos int64

// PackBlockPos packs block coordinates.
func PackBlockPos(x, y, z int32) BlockPos {
	return BlockPos(int64(x&0x3FFFFFF)<<38 | int64(z&0x3FFFFFF)<<12 | int64(y&0xFFF))
}

// Unpack returns the block coordinates.
func (p BlockPos) Unpack() (x, y, z int32) {
	v := int64(p)
	x = int32(v >> 38)
	y = int32(v << 52 >> 52)
	z = int32(v << 26 >> 38)
	return x, y, z
}

// GameType is a player's game mode.
type GameType int32

const (
	GameTypeSurvival GameType = iota
	GameTypeCreative
	GameTypeAdventure
	GameTypeSpectator
)

var gameTypeNames = [...]string{"survival", "creative", "adventure", "spectator"}

func (g GameType) Ordinal() int32 { return int32(g) }

func (g GameType) String() string {
	if g < 0 || int(g) >= len(gameTypeNames) {
		return "unknown"
	}
	return gameTypeNames[g]
}

// Difficulty is the world difficulty.
type Difficulty int32

const (
	DifficultyPeaceful Difficulty = iota
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
)

var difficultyNames = [...]string{"peaceful", "easy", "normal", "hard"}

func (d Difficulty) Ordinal() int32 { return int32(d) }

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return "unknown"
	}
	return difficultyNames[d]
}

// Hand is the hand an interaction was made with.
type Hand int32

const (
	HandMain Hand = iota
	HandOff
)

func (h Hand) Ordinal() int32 { return int32(h) }

func (h Hand) String() string {
	if h == HandOff {
		return "off_hand"
	}
	return "main_hand"
}

// EquipmentSlot is an entity equipment slot.
type EquipmentSlot int32

const (
	SlotMainHand EquipmentSlot = iota
	SlotOffHand
	SlotFeet
	SlotLegs
	SlotChest
	SlotHead
)
