// seehuhn.de/go/tinyvec - vector graphics for small displays
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tinyvec

// utf8Decoder decodes UTF-8 one byte at a time.  The zero value is ready
// to start a new sequence.
//
// The state is the number of continuation bytes still expected (0 to 5),
// or utf8Error after invalid input.  Unlike [unicode/utf8], the decoder
// accepts the historic 5 and 6 byte forms and does not reject overlong
// encodings or surrogates; fonts simply have no glyphs for them.
type utf8Decoder struct {
	state int
	cp    rune
}

const utf8Error = 6

// decode consumes one byte and returns the new state.  A return value
// of 0 means that d.cp holds a complete code point.
func (d *utf8Decoder) decode(b byte) int {
	if d.state == 0 || d.state == utf8Error {
		d.start(b)
		return d.state
	}

	if b&0xC0 != 0x80 {
		d.state = utf8Error
		d.cp = 0
		return d.state
	}
	d.cp = d.cp<<6 | rune(b&0x3F)
	d.state--
	return d.state
}

// start begins a new sequence with the lead byte b.
func (d *utf8Decoder) start(b byte) {
	switch {
	case b < 0x80:
		d.cp, d.state = rune(b), 0
	case b < 0xC0: // stray continuation byte
		d.cp, d.state = 0, utf8Error
	case b < 0xE0:
		d.cp, d.state = rune(b&0x1F), 1
	case b < 0xF0:
		d.cp, d.state = rune(b&0x0F), 2
	case b < 0xF8:
		d.cp, d.state = rune(b&0x07), 3
	case b < 0xFC:
		d.cp, d.state = rune(b&0x03), 4
	case b < 0xFE:
		d.cp, d.state = rune(b&0x01), 5
	default:
		d.cp, d.state = 0, utf8Error
	}
}
