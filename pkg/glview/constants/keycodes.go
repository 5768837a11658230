package constants

// KeyCode is the engine's keyboard key enumeration. Platform keycodes are
// translated into KeyCode before they reach the event dispatcher.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyPause
	KeyScrollLock
	KeyPrint
	KeyEscape
	KeyBack
	KeyBackspace
	KeyTab
	KeyReturn
	KeyCapsLock
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyMenu
	KeyHyper
	KeyInsert
	KeyHome
	KeyPgUp
	KeyDelete
	KeyEnd
	KeyPgDown
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyNumLock
	KeyKPPlus
	KeyKPMinus
	KeyKPMultiply
	KeyKPDivide
	KeyKPEnter
	KeyKPHome
	KeyKPUp
	KeyKPPgUp
	KeyKPLeft
	KeyKPFive
	KeyKPRight
	KeyKPEnd
	KeyKPDown
	KeyKPPgDown
	KeyKPInsert
	KeyKPDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeySpace
	KeyExclam
	KeyQuote
	KeyDollar
	KeyPercent
	KeyAmpersand
	KeyApostrophe
	KeyLeftParenthesis
	KeyRightParenthesis
	KeyAsterisk
	KeyPlus
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyColon
	KeySemicolon
	KeyLessThan
	KeyEqual
	KeyGreaterThan
	KeyQuestion
	KeyAt
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackSlash
	KeyRightBracket
	KeyUnderscore
	KeyGrave
	KeyDpadLeft
	KeyDpadRight
	KeyDpadUp
	KeyDpadDown
	KeyDpadCenter
	KeyEnter
	KeyPlay
	KeyVolumeUp
	KeyVolumeDown
	KeyPower

	keyCodeCount
)

var keyCodeNames = [keyCodeCount]string{
	KeyNone: "none", KeyPause: "pause", KeyScrollLock: "scroll_lock", KeyPrint: "print",
	KeyEscape: "escape", KeyBack: "back", KeyBackspace: "backspace", KeyTab: "tab",
	KeyReturn: "return", KeyCapsLock: "caps_lock",
	KeyLeftShift: "left_shift", KeyRightShift: "right_shift",
	KeyLeftCtrl: "left_ctrl", KeyRightCtrl: "right_ctrl",
	KeyLeftAlt: "left_alt", KeyRightAlt: "right_alt",
	KeyMenu: "menu", KeyHyper: "hyper", KeyInsert: "insert", KeyHome: "home",
	KeyPgUp: "pg_up", KeyDelete: "delete", KeyEnd: "end", KeyPgDown: "pg_down",
	KeyLeftArrow: "left_arrow", KeyRightArrow: "right_arrow",
	KeyUpArrow: "up_arrow", KeyDownArrow: "down_arrow",
	KeyNumLock: "num_lock", KeyKPPlus: "kp_plus", KeyKPMinus: "kp_minus",
	KeyKPMultiply: "kp_multiply", KeyKPDivide: "kp_divide", KeyKPEnter: "kp_enter",
	KeyKPHome: "kp_home", KeyKPUp: "kp_up", KeyKPPgUp: "kp_pg_up", KeyKPLeft: "kp_left",
	KeyKPFive: "kp_five", KeyKPRight: "kp_right", KeyKPEnd: "kp_end", KeyKPDown: "kp_down",
	KeyKPPgDown: "kp_pg_down", KeyKPInsert: "kp_insert", KeyKPDelete: "kp_delete",
	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5", KeyF6: "f6",
	KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
	KeySpace: "space", KeyExclam: "exclam", KeyQuote: "quote", KeyDollar: "dollar",
	KeyPercent: "percent", KeyAmpersand: "ampersand", KeyApostrophe: "apostrophe",
	KeyLeftParenthesis: "left_parenthesis", KeyRightParenthesis: "right_parenthesis",
	KeyAsterisk: "asterisk", KeyPlus: "plus", KeyComma: "comma", KeyMinus: "minus",
	KeyPeriod: "period", KeySlash: "slash",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyColon: "colon", KeySemicolon: "semicolon", KeyLessThan: "less_than",
	KeyEqual: "equal", KeyGreaterThan: "greater_than", KeyQuestion: "question", KeyAt: "at",
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l", KeyM: "m", KeyN: "n",
	KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyU: "u",
	KeyV: "v", KeyW: "w", KeyX: "x", KeyY: "y", KeyZ: "z",
	KeyLeftBracket: "left_bracket", KeyBackSlash: "back_slash",
	KeyRightBracket: "right_bracket", KeyUnderscore: "underscore", KeyGrave: "grave",
	KeyDpadLeft: "dpad_left", KeyDpadRight: "dpad_right", KeyDpadUp: "dpad_up",
	KeyDpadDown: "dpad_down", KeyDpadCenter: "dpad_center",
	KeyEnter: "enter", KeyPlay: "play",
	KeyVolumeUp: "volume_up", KeyVolumeDown: "volume_down", KeyPower: "power",
}

// String returns the snake_case name of the key, as used in configuration files.
func (k KeyCode) String() string {
	if k < 0 || k >= keyCodeCount {
		return "unknown"
	}
	return keyCodeNames[k]
}

// KeyCodeCount is the number of defined key codes, KeyNone included.
func KeyCodeCount() int {
	return int(keyCodeCount)
}

// ParseKeyCode looks up a key by its String() name.
func ParseKeyCode(name string) (KeyCode, bool) {
	for i, n := range keyCodeNames {
		if n == name {
			return KeyCode(i), true
		}
	}
	return KeyNone, false
}
