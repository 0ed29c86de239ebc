package backend

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"ggui/input"
)

// Decode parses one chunk of raw terminal bytes into zero or more decoded
// Input events: SGR mouse reports, arrow/function-key CSI/SS3 sequences,
// modifier-prefixed control bytes, and plain printable bytes as KeyPress.
func Decode(raw []byte) []input.Input {
	var out []input.Input
	i := 0
	for i < len(raw) {
		b := raw[i]
		if b == 0x1b {
			consumed, ev, ok := decodeEscape(raw[i:])
			if ok {
				out = append(out, ev)
			}
			if consumed == 0 {
				consumed = 1
			}
			i += consumed
			continue
		}
		ev, consumed := decodeByte(raw[i:])
		out = append(out, ev)
		i += consumed
	}
	return out
}

func decodeByte(raw []byte) (input.Input, int) {
	b := raw[0]
	switch {
	case b == 0x0d:
		return input.Input{Kind: input.Enter}, 1
	case b == 0x09:
		return input.Input{Kind: input.Tab}, 1
	case b == 0x08, b == 0x7f:
		return input.Input{Kind: input.Backspace}, 1
	case b <= 0x1f:
		return input.Input{Kind: input.KeyPress, Rune: rune(b + 0x60)}, 1
	default:
		r, n := decodeRune(raw)
		return input.Input{Kind: input.KeyPress, Rune: r}, n
	}
}

func decodeRune(raw []byte) (rune, int) {
	// Fixed-width cells, no grapheme-cluster handling: decode exactly one
	// UTF-8 rune, however many bytes that rune occupies.
	r, n := utf8.DecodeRune(raw)
	if r == utf8.RuneError && n <= 1 {
		return rune(raw[0]), 1
	}
	return r, n
}

// decodeEscape handles a buffer starting with ESC, returning how many bytes
// were consumed and the decoded event (if any).
func decodeEscape(raw []byte) (int, input.Input, bool) {
	if len(raw) < 2 {
		return 1, input.Input{}, false
	}
	switch raw[1] {
	case '[':
		return decodeCSI(raw)
	case 'O':
		return decodeSS3(raw)
	default:
		return 2, input.Input{Kind: input.KeyPress, Rune: rune(raw[1])}, true
	}
}

func decodeCSI(raw []byte) (int, input.Input, bool) {
	i := 2
	for i < len(raw) && !(raw[i] >= 0x40 && raw[i] <= 0x7e) {
		i++
	}
	if i >= len(raw) {
		return len(raw), input.Input{}, false
	}
	final := raw[i]
	params := string(raw[2:i])
	consumed := i + 1

	if strings.HasPrefix(params, "<") && (final == 'M' || final == 'm') {
		ev, ok := decodeSGRMouse(params[1:], final == 'm')
		return consumed, ev, ok
	}

	switch final {
	case 'A':
		return consumed, input.Input{Kind: input.ArrowUp}, true
	case 'B':
		return consumed, input.Input{Kind: input.ArrowDown}, true
	case 'C':
		return consumed, input.Input{Kind: input.ArrowRight}, true
	case 'D':
		return consumed, input.Input{Kind: input.ArrowLeft}, true
	case 'H':
		return consumed, input.Input{Kind: input.Home}, true
	case 'F':
		return consumed, input.Input{Kind: input.End}, true
	case '~':
		return consumed, decodeTilde(params), true
	}
	return consumed, input.Input{}, false
}

func decodeTilde(params string) input.Input {
	key := params
	if idx := strings.IndexByte(params, ';'); idx >= 0 {
		key = params[:idx]
	}
	kind, ok := tildeKinds[key]
	if !ok {
		return input.Input{}
	}
	return input.Input{Kind: kind}
}

var tildeKinds = map[string]input.Kind{
	"1": input.Home, "2": input.Insert, "3": input.Delete, "4": input.End,
	"5": input.PageUp, "6": input.PageDown,
	"11": input.F1, "12": input.F2, "13": input.F3, "14": input.F4,
	"15": input.F5, "17": input.F6, "18": input.F7, "19": input.F8,
	"20": input.F9, "21": input.F10, "23": input.F11, "24": input.F12,
}

func decodeSS3(raw []byte) (int, input.Input, bool) {
	if len(raw) < 3 {
		return len(raw), input.Input{}, false
	}
	kind, ok := ss3Kinds[raw[2]]
	return 3, input.Input{Kind: kind}, ok
}

var ss3Kinds = map[byte]input.Kind{
	'A': input.ArrowUp, 'B': input.ArrowDown, 'C': input.ArrowRight, 'D': input.ArrowLeft,
	'P': input.F1, 'Q': input.F2, 'R': input.F3, 'S': input.F4,
	'H': input.Home, 'F': input.End,
}

// decodeSGRMouse parses "Cb;Cx;Cy" (the body of CSI < Cb;Cx;Cy M|m) into a
// mouse Input. released is true for the 'm' final byte.
func decodeSGRMouse(body string, released bool) (input.Input, bool) {
	parts := strings.SplitN(body, ";", 3)
	if len(parts) != 3 {
		return input.Input{}, false
	}
	cb, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return input.Input{}, false
	}

	button := cb & 0x43
	kind := mouseKind(button, released, cb&0x40 != 0)
	if kind == 0 {
		return input.Input{}, false
	}
	return input.Input{Kind: kind, X: x - 1, Y: y - 1}, true
}

func mouseKind(button int, released, wheel bool) input.Kind {
	if wheel {
		if button&1 != 0 {
			return input.MouseMiddleScrollDown
		}
		return input.MouseMiddleScrollUp
	}
	switch button & 3 {
	case 0:
		if released {
			return input.MouseLeftClicked
		}
		return input.MouseLeftPressed
	case 1:
		if released {
			return input.MouseMiddleClicked
		}
		return input.MouseMiddlePressed
	case 2:
		if released {
			return input.MouseRightClicked
		}
		return input.MouseRightPressed
	}
	return 0
}
