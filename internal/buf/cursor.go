package buf

import "fmt"

// Cursor reads a little-endian stream sequentially. The first short read
// latches an error; later reads return zero values so decoders can check
// Err once per record instead of after every field.
type Cursor struct {
	data []byte
	off  int
	err  error
}

// NewCursor starts reading data at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.off }

// Err returns the first error encountered, if any.
func (c *Cursor) Err() error { return c.err }

// Bytes returns the next n bytes without copying.
func (c *Cursor) Bytes(n int) []byte {
	if c.err != nil {
		return nil
	}
	b, ok := Slice(c.data, c.off, n)
	if !ok {
		c.err = fmt.Errorf("bounds: need %d bytes at offset %d, have %d", n, c.off, c.Remaining())
		return nil
	}
	c.off += n
	return b
}

// U8 reads one byte.
func (c *Cursor) U8() uint8 {
	b := c.Bytes(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() uint16 { return U16LE(c.Bytes(2)) }

// I16 reads a little-endian int16.
func (c *Cursor) I16() int16 { return I16LE(c.Bytes(2)) }

// U32 reads a little-endian uint32.
func (c *Cursor) U32() uint32 { return U32LE(c.Bytes(4)) }

// I32 reads a little-endian int32.
func (c *Cursor) I32() int32 { return I32LE(c.Bytes(4)) }
