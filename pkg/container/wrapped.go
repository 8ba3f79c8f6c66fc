package container

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seitarof/gen-wrapper/pkg/protocol"
)

// BlockPosition is an unpacked block position.
type BlockPosition struct {
	X, Y, Z int32
}

// Vector is a position or velocity.
type Vector struct {
	X, Y, Z float64
}

// MinecraftKey is a namespaced resource key.
type MinecraftKey struct {
	Namespace string
	Key       string
}

// ParseMinecraftKey splits "namespace:key"; a missing namespace defaults to minecraft.
func ParseMinecraftKey(s string) MinecraftKey {
	ns, key, found := strings.Cut(s, ":")
	if !found {
		return MinecraftKey{Namespace: "minecraft", Key: s}
	}
	return MinecraftKey{Namespace: ns, Key: key}
}

func (k MinecraftKey) String() string {
	if k.Key == "" {
		return ""
	}
	return k.Namespace + ":" + k.Key
}

// ChatComponent wraps a JSON chat component.
type ChatComponent struct {
	json string
}

// ChatComponentFromText builds a plain text component.
func ChatComponentFromText(text string) ChatComponent {
	b, _ := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	return ChatComponent{json: string(b)}
}

// ChatComponentFromJSON wraps raw component JSON after validating it.
func ChatComponentFromJSON(raw string) (ChatComponent, error) {
	if raw != "" && !json.Valid([]byte(raw)) {
		return ChatComponent{}, fmt.Errorf("invalid chat component JSON")
	}
	return ChatComponent{json: raw}, nil
}

// JSON returns the component JSON.
func (c ChatComponent) JSON() string { return c.json }

// Text returns the top-level "text" of the component, or "" when absent.
func (c ChatComponent) Text() string {
	var v struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(c.json), &v); err != nil {
		return ""
	}
	return v.Text
}

// GameMode is the wrapper form of protocol.GameType.
type GameMode string

const (
	GameModeSurvival  GameMode = "SURVIVAL"
	GameModeCreative  GameMode = "CREATIVE"
	GameModeAdventure GameMode = "ADVENTURE"
	GameModeSpectator GameMode = "SPECTATOR"
)

var gameModes = map[protocol.GameType]GameMode{
	protocol.GameTypeSurvival:  GameModeSurvival,
	protocol.GameTypeCreative:  GameModeCreative,
	protocol.GameTypeAdventure: GameModeAdventure,
	protocol.GameTypeSpectator: GameModeSpectator,
}

// Hand is the wrapper form of protocol.Hand.
type Hand string

const (
	HandMain Hand = "MAIN_HAND"
	HandOff  Hand = "OFF_HAND"
)

// Material is an item registry key such as "minecraft:stone".
type Material string
