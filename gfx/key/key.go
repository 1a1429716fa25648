// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines platform independent keyboard key codes.
//
// The numbering follows GLFW's key tokens: printable keys use their US
// layout ASCII value (letters are upper case) and the remaining keys start
// at 256. Backends translate their native codes into these values.
package key

import "strconv"

// Key identifies a physical keyboard key.
type Key int32

// Unknown is reported for keys without a mapping.
const Unknown Key = -1

// Printable keys.
const (
	Space        Key = 32
	Apostrophe   Key = 39 // '
	Comma        Key = 44 // ,
	Minus        Key = 45 // -
	Period       Key = 46 // .
	Slash        Key = 47 // /
	Num0         Key = 48
	Num1         Key = 49
	Num2         Key = 50
	Num3         Key = 51
	Num4         Key = 52
	Num5         Key = 53
	Num6         Key = 54
	Num7         Key = 55
	Num8         Key = 56
	Num9         Key = 57
	Semicolon    Key = 59 // ;
	Equal        Key = 61 // =
	A            Key = 65
	B            Key = 66
	C            Key = 67
	D            Key = 68
	E            Key = 69
	F            Key = 70
	G            Key = 71
	H            Key = 72
	I            Key = 73
	J            Key = 74
	K            Key = 75
	L            Key = 76
	M            Key = 77
	N            Key = 78
	O            Key = 79
	P            Key = 80
	Q            Key = 81
	R            Key = 82
	S            Key = 83
	T            Key = 84
	U            Key = 85
	V            Key = 86
	W            Key = 87
	X            Key = 88
	Y            Key = 89
	Z            Key = 90
	LeftBracket  Key = 91 // [
	Backslash    Key = 92 // \
	RightBracket Key = 93 // ]
	GraveAccent  Key = 96 // `
)

// Function and navigation keys.
const (
	Escape       Key = 256
	Enter        Key = 257
	Tab          Key = 258
	Backspace    Key = 259
	Insert       Key = 260
	Delete       Key = 261
	Right        Key = 262
	Left         Key = 263
	Down         Key = 264
	Up           Key = 265
	PageUp       Key = 266
	PageDown     Key = 267
	Home         Key = 268
	End          Key = 269
	CapsLock     Key = 280
	ScrollLock   Key = 281
	NumLock      Key = 282
	PrintScreen  Key = 283
	Pause        Key = 284
	F1           Key = 290
	F2           Key = 291
	F3           Key = 292
	F4           Key = 293
	F5           Key = 294
	F6           Key = 295
	F7           Key = 296
	F8           Key = 297
	F9           Key = 298
	F10          Key = 299
	F11          Key = 300
	F12          Key = 301
	LeftShift    Key = 340
	LeftControl  Key = 341
	LeftAlt      Key = 342
	LeftSuper    Key = 343
	RightShift   Key = 344
	RightControl Key = 345
	RightAlt     Key = 346
	RightSuper   Key = 347
	Menu         Key = 348
)

var names = map[Key]string{
	Unknown:      "Unknown",
	Space:        "Space",
	Apostrophe:   "Apostrophe",
	Comma:        "Comma",
	Minus:        "Minus",
	Period:       "Period",
	Slash:        "Slash",
	Semicolon:    "Semicolon",
	Equal:        "Equal",
	LeftBracket:  "LeftBracket",
	Backslash:    "Backslash",
	RightBracket: "RightBracket",
	GraveAccent:  "GraveAccent",
	Escape:       "Escape",
	Enter:        "Enter",
	Tab:          "Tab",
	Backspace:    "Backspace",
	Insert:       "Insert",
	Delete:       "Delete",
	Right:        "Right",
	Left:         "Left",
	Down:         "Down",
	Up:           "Up",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	Home:         "Home",
	End:          "End",
	CapsLock:     "CapsLock",
	ScrollLock:   "ScrollLock",
	NumLock:      "NumLock",
	PrintScreen:  "PrintScreen",
	Pause:        "Pause",
	LeftShift:    "LeftShift",
	LeftControl:  "LeftControl",
	LeftAlt:      "LeftAlt",
	LeftSuper:    "LeftSuper",
	RightShift:   "RightShift",
	RightControl: "RightControl",
	RightAlt:     "RightAlt",
	RightSuper:   "RightSuper",
	Menu:         "Menu",
}

// String returns a readable name for k, e.g. "A", "Num7", "F4" or "Escape".
// Keys without a name are printed as "Key(<code>)".
func (k Key) String() string {
	switch {
	case k >= A && k <= Z:
		return string(rune(k))
	case k >= Num0 && k <= Num9:
		return "Num" + string(rune(k))
	case k >= F1 && k <= F12:
		return "F" + strconv.Itoa(int(k-F1)+1)
	}
	if n, ok := names[k]; ok {
		return n
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Printable reports whether k produces a character on a US layout. The
// value of a printable key is that character.
func (k Key) Printable() bool {
	switch k {
	case Space, Apostrophe, Comma, Minus, Period, Slash,
		Semicolon, Equal, LeftBracket, Backslash, RightBracket, GraveAccent:
		return true
	}
	return (k >= A && k <= Z) || (k >= Num0 && k <= Num9)
}
