package internal

import (
	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlKeyCodeMap translates SDL keycodes into engine key codes.
// Some entries are approximations kept for compatibility with existing
// games: '#' reports KeyThree, '^' reports KeySix, and both GUI keys are
// mapped to menu/hyper.
var sdlKeyCodeMap = map[sdl.Keycode]constants.KeyCode{
	sdl.K_UNKNOWN: constants.KeyNone,

	sdl.K_RETURN:     constants.KeyReturn,
	sdl.K_ESCAPE:     constants.KeyEscape,
	sdl.K_BACKSPACE:  constants.KeyBackspace,
	sdl.K_TAB:        constants.KeyTab,
	sdl.K_SPACE:      constants.KeySpace,
	sdl.K_EXCLAIM:    constants.KeyExclam,
	sdl.K_QUOTEDBL:   constants.KeyQuote,
	sdl.K_HASH:       constants.Key3,
	sdl.K_PERCENT:    constants.KeyPercent,
	sdl.K_DOLLAR:     constants.KeyDollar,
	sdl.K_AMPERSAND:  constants.KeyAmpersand,
	sdl.K_QUOTE:      constants.KeyApostrophe,
	sdl.K_LEFTPAREN:  constants.KeyLeftParenthesis,
	sdl.K_RIGHTPAREN: constants.KeyRightParenthesis,
	sdl.K_ASTERISK:   constants.KeyAsterisk,
	sdl.K_PLUS:       constants.KeyPlus,
	sdl.K_COMMA:      constants.KeyComma,
	sdl.K_MINUS:      constants.KeyMinus,
	sdl.K_PERIOD:     constants.KeyPeriod,
	sdl.K_SLASH:      constants.KeySlash,
	sdl.K_0:          constants.Key0,
	sdl.K_1:          constants.Key1,
	sdl.K_2:          constants.Key2,
	sdl.K_3:          constants.Key3,
	sdl.K_4:          constants.Key4,
	sdl.K_5:          constants.Key5,
	sdl.K_6:          constants.Key6,
	sdl.K_7:          constants.Key7,
	sdl.K_8:          constants.Key8,
	sdl.K_9:          constants.Key9,

	sdl.K_COLON:        constants.KeyColon,
	sdl.K_SEMICOLON:    constants.KeySemicolon,
	sdl.K_LESS:         constants.KeyLessThan,
	sdl.K_EQUALS:       constants.KeyEqual,
	sdl.K_GREATER:      constants.KeyGreaterThan,
	sdl.K_QUESTION:     constants.KeyQuestion,
	sdl.K_AT:           constants.KeyAt,
	sdl.K_LEFTBRACKET:  constants.KeyLeftBracket,
	sdl.K_BACKSLASH:    constants.KeyBackSlash,
	sdl.K_RIGHTBRACKET: constants.KeyRightBracket,
	sdl.K_CARET:        constants.Key6,
	sdl.K_UNDERSCORE:   constants.KeyUnderscore,
	sdl.K_BACKQUOTE:    constants.KeyGrave,

	sdl.K_a: constants.KeyA,
	sdl.K_b: constants.KeyB,
	sdl.K_c: constants.KeyC,
	sdl.K_d: constants.KeyD,
	sdl.K_e: constants.KeyE,
	sdl.K_f: constants.KeyF,
	sdl.K_g: constants.KeyG,
	sdl.K_h: constants.KeyH,
	sdl.K_i: constants.KeyI,
	sdl.K_j: constants.KeyJ,
	sdl.K_k: constants.KeyK,
	sdl.K_l: constants.KeyL,
	sdl.K_m: constants.KeyM,
	sdl.K_n: constants.KeyN,
	sdl.K_o: constants.KeyO,
	sdl.K_p: constants.KeyP,
	sdl.K_q: constants.KeyQ,
	sdl.K_r: constants.KeyR,
	sdl.K_s: constants.KeyS,
	sdl.K_t: constants.KeyT,
	sdl.K_u: constants.KeyU,
	sdl.K_v: constants.KeyV,
	sdl.K_w: constants.KeyW,
	sdl.K_x: constants.KeyX,
	sdl.K_y: constants.KeyY,
	sdl.K_z: constants.KeyZ,

	sdl.K_CAPSLOCK: constants.KeyCapsLock,

	sdl.K_F1:  constants.KeyF1,
	sdl.K_F2:  constants.KeyF2,
	sdl.K_F3:  constants.KeyF3,
	sdl.K_F4:  constants.KeyF4,
	sdl.K_F5:  constants.KeyF5,
	sdl.K_F6:  constants.KeyF6,
	sdl.K_F7:  constants.KeyF7,
	sdl.K_F8:  constants.KeyF8,
	sdl.K_F9:  constants.KeyF9,
	sdl.K_F10: constants.KeyF10,
	sdl.K_F11: constants.KeyF11,
	sdl.K_F12: constants.KeyF12,

	sdl.K_PRINTSCREEN: constants.KeyPrint,
	sdl.K_SCROLLLOCK:  constants.KeyScrollLock,
	sdl.K_PAUSE:       constants.KeyPause,
	sdl.K_INSERT:      constants.KeyInsert,
	sdl.K_HOME:        constants.KeyHome,
	sdl.K_PAGEUP:      constants.KeyPgUp,
	sdl.K_DELETE:      constants.KeyDelete,
	sdl.K_END:         constants.KeyEnd,
	sdl.K_PAGEDOWN:    constants.KeyPgDown,
	sdl.K_RIGHT:       constants.KeyRightArrow,
	sdl.K_LEFT:        constants.KeyLeftArrow,
	sdl.K_DOWN:        constants.KeyDownArrow,
	sdl.K_UP:          constants.KeyUpArrow,

	sdl.K_NUMLOCKCLEAR: constants.KeyNumLock,
	sdl.K_KP_DIVIDE:    constants.KeyKPDivide,
	sdl.K_KP_MULTIPLY:  constants.KeyKPMultiply,
	sdl.K_KP_MINUS:     constants.KeyKPMinus,
	sdl.K_KP_PLUS:      constants.KeyKPPlus,
	sdl.K_KP_ENTER:     constants.KeyKPEnter,
	sdl.K_KP_1:         constants.KeyKPEnd,
	sdl.K_KP_2:         constants.KeyKPDown,
	sdl.K_KP_3:         constants.KeyKPPgDown,
	sdl.K_KP_4:         constants.KeyKPLeft,
	sdl.K_KP_5:         constants.KeyKPFive,
	sdl.K_KP_6:         constants.KeyKPRight,
	sdl.K_KP_7:         constants.KeyKPHome,
	sdl.K_KP_8:         constants.KeyKPUp,
	sdl.K_KP_9:         constants.KeyKPPgUp,
	sdl.K_KP_0:         constants.KeyKPInsert,
	sdl.K_KP_PERIOD:    constants.KeyKPDelete,

	sdl.K_APPLICATION: constants.KeyMenu,
	sdl.K_MENU:        constants.KeyMenu,

	sdl.K_LCTRL:  constants.KeyLeftCtrl,
	sdl.K_LSHIFT: constants.KeyLeftShift,
	sdl.K_LALT:   constants.KeyLeftAlt,
	sdl.K_LGUI:   constants.KeyMenu,
	sdl.K_RCTRL:  constants.KeyRightCtrl,
	sdl.K_RSHIFT: constants.KeyRightShift,
	sdl.K_RALT:   constants.KeyRightAlt,
	sdl.K_RGUI:   constants.KeyHyper,
}

// TranslateKeycode returns the engine key for an SDL keycode, or KeyNone
// if the keycode has no mapping.
func TranslateKeycode(sym sdl.Keycode) constants.KeyCode {
	if code, ok := sdlKeyCodeMap[sym]; ok {
		return code
	}
	return constants.KeyNone
}

// isIMEControlKey reports whether a pressed key should also be forwarded
// to the text-input dispatcher as a control key.
func isIMEControlKey(code constants.KeyCode) bool {
	switch code {
	case constants.KeyHome, constants.KeyKPHome,
		constants.KeyDelete, constants.KeyKPDelete,
		constants.KeyEnd,
		constants.KeyLeftArrow, constants.KeyRightArrow,
		constants.KeyEscape:
		return true
	}
	return false
}
