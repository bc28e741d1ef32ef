package game

import "github.com/lguibr/duelpong/utils"

// Key is a raw keyboard code.
type Key int

const (
	KeyW    Key = utils.KeyCodeW
	KeyS    Key = utils.KeyCodeS
	KeyUp   Key = utils.KeyCodeUp
	KeyDown Key = utils.KeyCodeDown
)

// Keyboard answers whether a key is currently held.
type Keyboard interface {
	IsKeyDown(Key) bool
}

// Controls binds a paddle to its up and down keys.
type Controls struct {
	Up   Key
	Down Key
}

// DefaultControls are W/S for the left paddle and Up/Down for the right one.
var DefaultControls = [2]Controls{
	LeftSide:  {Up: KeyW, Down: KeyS},
	RightSide: {Up: KeyUp, Down: KeyDown},
}

// KeySet is a Keyboard backed by the set of held keys.
type KeySet map[Key]bool

func (k KeySet) IsKeyDown(key Key) bool { return k[key] }

// Set records a press (down) or release of key.
func (k KeySet) Set(key Key, down bool) {
	if down {
		k[key] = true
		return
	}
	delete(k, key)
}

// Known reports whether key drives any paddle.
func Known(key Key) bool {
	for _, c := range DefaultControls {
		if key == c.Up || key == c.Down {
			return true
		}
	}
	return false
}

// ClientKeys tracks held keys per client. A key counts as down while any
// client holds it.
type ClientKeys map[string]KeySet

func (c ClientKeys) IsKeyDown(key Key) bool {
	for _, keys := range c {
		if keys.IsKeyDown(key) {
			return true
		}
	}
	return false
}

func (c ClientKeys) Set(clientID string, key Key, down bool) {
	keys, ok := c[clientID]
	if !ok {
		if !down {
			return
		}
		keys = KeySet{}
		c[clientID] = keys
	}
	keys.Set(key, down)
	if len(keys) == 0 {
		delete(c, clientID)
	}
}

// Release drops every key held by clientID.
func (c ClientKeys) Release(clientID string) {
	delete(c, clientID)
}
