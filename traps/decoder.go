// This file is part of Romshift.
//
// Romshift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romshift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romshift.  If not, see <https://www.gnu.org/licenses/>.

package traps

import (
	"encoding/binary"

	"github.com/jetsetilly/romshift/curated"
)

// TableOffset is the position in the ROM header of the 32bit big-endian
// offset of the trap table.
const TableOffset = 0x22

// Config specifies the addresses used when decoding the table.
type Config struct {
	// the load address of the ROM. absolute entries in the table are relative
	// to this address and the running pointer starts here
	Base uint32

	// the address of the "unimplemented" function. every 0x80 entry in the
	// table decodes to this address
	Unimplemented uint32
}

// DefaultConfig is the configuration for the unrelocated ROM.
var DefaultConfig = Config{
	Base:          0x400000,
	Unimplemented: 0x400768,
}

// MalformedTable is returned when the table cannot be decoded. Decoding
// cannot continue once this error has been returned.
const MalformedTable = "traps: malformed table: %s (offset 0x%04x)"

// table entry values.
const (
	unimplementedEntry = 0x80
	absoluteEntry      = 0xff
	shortEntryFlag     = 0x80
	shortEntryMask     = 0x7f
	longEntrySign      = 0x4000
)

// TableStart reads the offset of the trap table from the ROM header.
func TableStart(mem []byte) (int, error) {
	if len(mem) < TableOffset+4 {
		return 0, curated.Errorf(MalformedTable, "header is truncated", TableOffset)
	}
	start := int(binary.BigEndian.Uint32(mem[TableOffset:]))
	if start >= len(mem) {
		return 0, curated.Errorf(MalformedTable, "table starts outside of image", start)
	}
	return start, nil
}

// State is the decoding state between steps. Cursor is an offset into the
// image buffer and Pointer is an absolute address.
type State struct {
	Cursor  int
	Pointer uint32

	// the terminating entry has been reached
	Done bool
}

// NewState returns the initial decoding state for a table beginning at the
// start offset.
func NewState(start int, cfg Config) State {
	return State{
		Cursor:  start,
		Pointer: cfg.Base,
	}
}

// Step decodes the entry at the state's cursor. It returns the state after
// the entry and the decoded address. The boolean return value is false if the
// table has ended, in which case the address is meaningless. Once the table
// has ended every subsequent call returns false.
//
// On error the returned state is the same as the state passed to the
// function.
func Step(mem []byte, cfg Config, s State) (State, uint32, bool, error) {
	if s.Done {
		return s, 0, false, nil
	}

	if s.Cursor < 0 || s.Cursor >= len(mem) {
		return s, 0, false, curated.Errorf(MalformedTable, "cursor outside of image", s.Cursor)
	}

	b := mem[s.Cursor]

	switch {
	case b == unimplementedEntry:
		s.Cursor++
		return s, cfg.Unimplemented, true, nil

	case b == absoluteEntry:
		if s.Cursor+5 > len(mem) {
			return s, 0, false, curated.Errorf(MalformedTable, "truncated absolute entry", s.Cursor)
		}
		s.Pointer = binary.BigEndian.Uint32(mem[s.Cursor+1:]) + cfg.Base
		s.Cursor += 5
		return s, s.Pointer, true, nil

	case b&shortEntryFlag == shortEntryFlag:
		s.Pointer += uint32(b&shortEntryMask) * 2
		s.Cursor++
		return s, s.Pointer, true, nil
	}

	if s.Cursor+2 > len(mem) {
		return s, 0, false, curated.Errorf(MalformedTable, "truncated relative entry", s.Cursor)
	}

	v := binary.BigEndian.Uint16(mem[s.Cursor:])
	s.Cursor += 2

	if v == 0 {
		s.Done = true
		return s, 0, false, nil
	}

	// the word count is biased. with the sign bit set the result of the
	// addition is 0x10000 bytes too large
	s.Pointer += uint32(v) * 2
	if v&longEntrySign == longEntrySign {
		s.Pointer -= 0x10000
	}

	return s, s.Pointer, true, nil
}

// Entry is a single decoded table entry.
type Entry struct {
	Index   int
	Address uint32
}

// Trap returns the trap number for the entry.
func (e Entry) Trap() uint16 {
	return IndexToTrap(e.Index)
}

// Decoder provides the entries of a trap table as a lazy sequence. The
// sequence cannot be restarted.
type Decoder struct {
	mem   []byte
	cfg   Config
	state State

	entry Entry
	next  int
	err   error
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The start of the table is read from the ROM header.
func NewDecoder(mem []byte, cfg Config) (*Decoder, error) {
	start, err := TableStart(mem)
	if err != nil {
		return nil, err
	}
	return NewDecoderAt(mem, start, cfg), nil
}

// NewDecoderAt creates a Decoder for a table starting at the specified offset.
func NewDecoderAt(mem []byte, start int, cfg Config) *Decoder {
	return &Decoder{
		mem:   mem,
		cfg:   cfg,
		state: NewState(start, cfg),
	}
}

// Next advances the decoder to the next entry, which is then available
// through the Entry() function. It returns false when the table has ended or
// when an error has occurred. Err() should be checked to differentiate between
// the two.
func (d *Decoder) Next() bool {
	if d.err != nil {
		return false
	}

	s, addr, ok, err := Step(d.mem, d.cfg, d.state)
	if err != nil {
		d.err = err
		return false
	}

	d.state = s
	if !ok {
		return false
	}

	d.entry = Entry{Index: d.next, Address: addr}
	d.next++

	return true
}

// Entry returns the most recent entry decoded by Next().
func (d *Decoder) Entry() Entry {
	return d.entry
}

// Err returns the error that stopped decoding. Returns nil if decoding
// stopped because the table ended normally.
func (d *Decoder) Err() error {
	return d.err
}

// Exhausted returns true if Next() will never return another entry.
func (d *Decoder) Exhausted() bool {
	return d.state.Done || d.err != nil
}

// Cursor returns the offset of the next entry to be decoded. Once the table
// has ended this is the offset immediately after the terminating entry.
func (d *Decoder) Cursor() int {
	return d.state.Cursor
}

// Pointer returns the value of the entry pointer. Unimplemented entries do not
// change the pointer.
func (d *Decoder) Pointer() uint32 {
	return d.state.Pointer
}

// Count returns the number of entries decoded so far.
func (d *Decoder) Count() int {
	return d.next
}
