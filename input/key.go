package input

// Key is a game-level key, independent of the terminal's key codes
type Key uint8

const (
	KeyNone Key = iota
	KeyLeftUp
	KeyLeftDown
	KeyRightUp
	KeyRightDown
	KeyQuit
	KeyConfirm
	KeyDecline
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:      "none",
	KeyLeftUp:    "left_up",
	KeyLeftDown:  "left_down",
	KeyRightUp:   "right_up",
	KeyRightDown: "right_down",
	KeyQuit:      "quit",
	KeyConfirm:   "confirm",
	KeyDecline:   "decline",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}
