// Package container wraps a raw packet value and exposes its fields through
// typed structure modifiers.
package container

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/seitarof/gen-wrapper/pkg/protocol"
	"github.com/seitarof/gen-wrapper/pkg/structure"
)

// ErrNotStruct is returned when a packet class is not a struct type.
var ErrNotStruct = errors.New("packet class is not a struct")

// Registries resolves registry entries for converters that need them.
type Registries interface {
	Key(registry string, id int32) (string, bool)
	ID(registry string, key string) (int32, bool)
}

// PacketContainer holds one packet value.
type PacketContainer struct {
	packetType protocol.PacketType
	handle     reflect.Value
	registries Registries
}

// New constructs a zero-valued packet of the given type.
func New(pt protocol.PacketType, regs Registries) (*PacketContainer, error) {
	if pt.Class == nil {
		return nil, fmt.Errorf("packet %s has no class", pt.Name)
	}
	if pt.Class.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotStruct, pt.Name, pt.Class.Kind())
	}
	return &PacketContainer{
		packetType: pt,
		handle:     reflect.New(pt.Class),
		registries: regs,
	}, nil
}

// FromPacket wraps an existing packet pointer.
func FromPacket(pt protocol.PacketType, packet any, regs Registries) (*PacketContainer, error) {
	v := reflect.ValueOf(packet)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrNotStruct, packet)
	}
	if pt.Class != nil && v.Elem().Type() != pt.Class {
		return nil, fmt.Errorf("packet %T does not match %s", packet, pt.Name)
	}
	return &PacketContainer{packetType: pt, handle: v, registries: regs}, nil
}

// Type returns the packet descriptor.
func (c *PacketContainer) Type() protocol.PacketType { return c.packetType }

// Handle returns the pointer to the underlying packet.
func (c *PacketContainer) Handle() any { return c.handle.Interface() }

func (c *PacketContainer) target() reflect.Value { return c.handle.Elem() }

func typed[T any](c *PacketContainer) *structure.Modifier[T] {
	return structure.WithType[T](c.target(), reflect.TypeFor[T](), nil)
}

func converted[T any](c *PacketContainer, raw reflect.Type, conv structure.Converter[T]) *structure.Modifier[T] {
	return structure.WithType(c.target(), raw, conv)
}

// Modifier exposes every field of the packet.
func (c *PacketContainer) Modifier() *structure.Modifier[any] {
	return structure.WithType[any](c.target(), reflect.TypeFor[any](), nil)
}

// Structures exposes every struct-valued field.
func (c *PacketContainer) Structures() *structure.Modifier[any] {
	return structure.WithMatcher[any](c.target(), func(t reflect.Type) bool {
		return t.Kind() == reflect.Struct
	}, nil)
}

func (c *PacketContainer) Bytes() *structure.Modifier[int8] { return typed[int8](c) }

func (c *PacketContainer) Shorts() *structure.Modifier[int16] { return typed[int16](c) }

func (c *PacketContainer) Integers() *structure.Modifier[int32] { return typed[int32](c) }

func (c *PacketContainer) Longs() *structure.Modifier[int64] { return typed[int64](c) }

func (c *PacketContainer) Floats() *structure.Modifier[float32] { return typed[float32](c) }

func (c *PacketContainer) Doubles() *structure.Modifier[float64] { return typed[float64](c) }

func (c *PacketContainer) Booleans() *structure.Modifier[bool] { return typed[bool](c) }

func (c *PacketContainer) Strings() *structure.Modifier[string] { return typed[string](c) }

func (c *PacketContainer) ByteArrays() *structure.Modifier[[]byte] { return typed[[]byte](c) }

func (c *PacketContainer) IntegerArrays() *structure.Modifier[[]int32] { return typed[[]int32](c) }

func (c *PacketContainer) UUIDs() *structure.Modifier[uuid.UUID] { return typed[uuid.UUID](c) }

// Enums exposes every field whose type implements protocol.Enum.
func (c *PacketContainer) Enums() *structure.Modifier[protocol.Enum] { return typed[protocol.Enum](c) }

func (c *PacketContainer) BlockPositions() *structure.Modifier[BlockPosition] {
	return converted(c, reflect.TypeFor[protocol.BlockPos](), blockPositionConverter())
}

func (c *PacketContainer) Vectors() *structure.Modifier[Vector] {
	return converted(c, reflect.TypeFor[protocol.Vec3](), vectorConverter())
}

func (c *PacketContainer) ChatComponents() *structure.Modifier[ChatComponent] {
	return converted(c, reflect.TypeFor[protocol.Component](), chatComponentConverter())
}

func (c *PacketContainer) MinecraftKeys() *structure.Modifier[MinecraftKey] {
	return converted(c, reflect.TypeFor[protocol.ResourceLocation](), minecraftKeyConverter())
}

func (c *PacketContainer) GameModes() *structure.Modifier[GameMode] {
	return converted(c, reflect.TypeFor[protocol.GameType](), gameModeConverter())
}

func (c *PacketContainer) Hands() *structure.Modifier[Hand] {
	return converted(c, reflect.TypeFor[protocol.Hand](), handConverter())
}

// Items resolves item ids through the item registry.
func (c *PacketContainer) Items() *structure.Modifier[Material] {
	return converted(c, reflect.TypeFor[protocol.ItemID](), materialConverter(c.registries))
}
