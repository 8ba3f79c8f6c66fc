package container

import (
	"fmt"

	"github.com/seitarof/gen-wrapper/pkg/protocol"
	"github.com/seitarof/gen-wrapper/pkg/structure"
)

// ItemRegistry is the registry consulted by the Items accessor.
const ItemRegistry = "minecraft:item"

func unexpected[T any](raw any) (T, error) {
	var zero T
	return zero, fmt.Errorf("unexpected raw value %T", raw)
}

func blockPositionConverter() structure.Converter[BlockPosition] {
	return structure.NewConverter(
		func(p BlockPosition) (any, error) {
			return protocol.PackBlockPos(p.X, p.Y, p.Z), nil
		},
		func(raw any) (BlockPosition, error) {
			pos, ok := raw.(protocol.BlockPos)
			if !ok {
				return unexpected[BlockPosition](raw)
			}
			x, y, z := pos.Unpack()
			return BlockPosition{X: x, Y: y, Z: z}, nil
		},
	)
}

func vectorConverter() structure.Converter[Vector] {
	return structure.NewConverter(
		func(v Vector) (any, error) {
			return protocol.Vec3{X: v.X, Y: v.Y, Z: v.Z}, nil
		},
		func(raw any) (Vector, error) {
			v, ok := raw.(protocol.Vec3)
			if !ok {
				return unexpected[Vector](raw)
			}
			return Vector{X: v.X, Y: v.Y, Z: v.Z}, nil
		},
	)
}

func chatComponentConverter() structure.Converter[ChatComponent] {
	return structure.NewConverter(
		func(c ChatComponent) (any, error) {
			return protocol.Component(c.JSON()), nil
		},
		func(raw any) (ChatComponent, error) {
			c, ok := raw.(protocol.Component)
			if !ok {
				return unexpected[ChatComponent](raw)
			}
			return ChatComponentFromJSON(string(c))
		},
	)
}

func minecraftKeyConverter() structure.Converter[MinecraftKey] {
	return structure.NewConverter(
		func(k MinecraftKey) (any, error) {
			return protocol.ResourceLocation(k.String()), nil
		},
		func(raw any) (MinecraftKey, error) {
			loc, ok := raw.(protocol.ResourceLocation)
			if !ok {
				return unexpected[MinecraftKey](raw)
			}
			if loc == "" {
				return MinecraftKey{}, nil
			}
			return ParseMinecraftKey(string(loc)), nil
		},
	)
}

func gameModeConverter() structure.Converter[GameMode] {
	return structure.NewConverter(
		func(m GameMode) (any, error) {
			for t, mode := range gameModes {
				if mode == m {
					return t, nil
				}
			}
			return nil, fmt.Errorf("unknown game mode %q", m)
		},
		func(raw any) (GameMode, error) {
			t, ok := raw.(protocol.GameType)
			if !ok {
				return unexpected[GameMode](raw)
			}
			mode, ok := gameModes[t]
			if !ok {
				return "", fmt.Errorf("unknown game type %d", int32(t))
			}
			return mode, nil
		},
	)
}

func handConverter() structure.Converter[Hand] {
	return structure.NewConverter(
		func(h Hand) (any, error) {
			switch h {
			case HandMain:
				return protocol.HandMain, nil
			case HandOff:
				return protocol.HandOff, nil
			}
			return nil, fmt.Errorf("unknown hand %q", h)
		},
		func(raw any) (Hand, error) {
			h, ok := raw.(protocol.Hand)
			if !ok {
				return unexpected[Hand](raw)
			}
			if h == protocol.HandOff {
				return HandOff, nil
			}
			return HandMain, nil
		},
	)
}

func materialConverter(regs Registries) structure.Converter[Material] {
	return structure.NewConverter(
		func(m Material) (any, error) {
			if regs == nil {
				return nil, fmt.Errorf("no registries available")
			}
			id, ok := regs.ID(ItemRegistry, string(m))
			if !ok {
				return nil, fmt.Errorf("unknown item %q", m)
			}
			return protocol.ItemID(id), nil
		},
		func(raw any) (Material, error) {
			id, ok := raw.(protocol.ItemID)
			if !ok {
				return unexpected[Material](raw)
			}
			if regs == nil {
				return "", fmt.Errorf("no registries available")
			}
			key, ok := regs.Key(ItemRegistry, int32(id))
			if !ok {
				return "", fmt.Errorf("unknown item id %d", int32(id))
			}
			return Material(key), nil
		},
	)
}
