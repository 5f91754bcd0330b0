// Package dump reads and writes binary schema dumps (.schm).
//
// A dump is a snapshot of the host's schema tables for one host build:
// every class with its chain anchor and every member with its offset and
// networked flag. See package format for the layout.
package dump

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/schemakit/internal/buf"
	"github.com/joshuapare/schemakit/internal/format"
	"github.com/joshuapare/schemakit/internal/mmfile"
	"github.com/joshuapare/schemakit/pkg/types"
	"github.com/joshuapare/schemakit/schema/index"
)

// Open maps the dump at path and decodes it into a table.
func Open(path string) (*index.Table, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("dump: open %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("dump: %s: %w", path, err)
	}
	return t, nil
}

// Write encodes t and writes it to path.
func Write(path string, t *index.Table) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dump: write %s: %w", path, err)
	}
	return nil
}

// Decode parses a dump. Names are copied out of data, so data may be
// released once Decode returns.
func Decode(data []byte) (*index.Table, error) {
	t, err := decode(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "dump: decode", Err: err}
	}
	return t, nil
}

func decode(data []byte) (*index.Table, error) {
	if len(data) < format.HeaderSize {
		return nil, fmt.Errorf("header: %w", format.ErrTruncated)
	}
	if string(data[:len(format.Signature)]) != format.Signature {
		return nil, format.ErrSignatureMismatch
	}
	if v := buf.U16LE(data[format.HeaderVersionOffset:]); v != format.Version {
		return nil, fmt.Errorf("%w: %d", format.ErrUnsupportedVersion, v)
	}
	classCount := int(buf.U32LE(data[format.HeaderClassCount:]))

	c := buf.NewCursor(data[format.HeaderSize:])
	// Every class costs at least its fixed part; reject absurd counts before allocating.
	if classCount > c.Remaining()/(format.NameLenSize+format.ClassFixedSize) {
		return nil, fmt.Errorf("class count %d: %w", classCount, format.ErrTruncated)
	}

	dec := charmap.Windows1252.NewDecoder()
	t := index.NewTable(classCount, 0)

	for i := 0; i < classCount; i++ {
		className, err := readName(c, dec)
		if err != nil {
			return nil, fmt.Errorf("class %d name: %w", i, err)
		}
		chain := c.I16()
		hasChain := c.U8() != 0
		c.U8() // pad
		memberCount := int(c.U32())
		if c.Err() != nil {
			return nil, fmt.Errorf("class %q: %w", className, format.ErrTruncated)
		}
		if memberCount > c.Remaining()/(format.NameLenSize+format.MemberFixedSize) {
			return nil, fmt.Errorf("class %q member count %d: %w", className, memberCount, format.ErrTruncated)
		}

		t.AddClass(className, chain, hasChain)

		for j := 0; j < memberCount; j++ {
			memberName, err := readName(c, dec)
			if err != nil {
				return nil, fmt.Errorf("class %q member %d name: %w", className, j, err)
			}
			off := c.I32()
			flags := c.U8()
			c.U8() // pad
			if c.Err() != nil {
				return nil, fmt.Errorf("%s::%s: %w", className, memberName, format.ErrTruncated)
			}
			t.AddMember(className, memberName, types.SchemaKey{
				Offset:    off,
				Networked: flags&format.MemberFlagNetworked != 0,
			})
		}
	}

	if c.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", format.ErrTrailingData, c.Remaining())
	}
	return t, nil
}

type byteTransformer interface {
	Bytes([]byte) ([]byte, error)
}

func readName(c *buf.Cursor, dec byteTransformer) (string, error) {
	n := int(c.U16())
	raw := c.Bytes(n)
	if c.Err() != nil {
		return "", format.ErrTruncated
	}
	decoded, err := dec.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Encode serializes t. Classes are written sorted by name and members by
// offset, so equal tables produce identical bytes.
func Encode(t *index.Table) ([]byte, error) {
	enc := charmap.Windows1252.NewEncoder()
	classes := t.Classes()

	out := make([]byte, format.HeaderSize, format.HeaderSize+64*len(classes))
	copy(out[format.HeaderSignatureOffset:], format.Signature)
	buf.PutU16LE(out[format.HeaderVersionOffset:], format.Version)
	buf.PutU32LE(out[format.HeaderClassCount:], uint32(len(classes)))

	for _, cls := range classes {
		var err error
		if out, err = appendName(out, enc, cls.Name); err != nil {
			return nil, encodeErr(cls.Name, err)
		}
		var hasChain byte
		if cls.HasChain {
			hasChain = 1
		}
		members := t.Members(cls.Name)
		out = appendU16(out, uint16(cls.ChainOffset))
		out = append(out, hasChain, 0)
		out = appendU32(out, uint32(len(members)))

		for _, m := range members {
			if out, err = appendName(out, enc, m.Member); err != nil {
				return nil, encodeErr(cls.Name+"::"+m.Member, err)
			}
			var flags byte
			if m.Key.Networked {
				flags |= format.MemberFlagNetworked
			}
			out = appendU32(out, uint32(m.Key.Offset))
			out = append(out, flags, 0)
		}
	}
	return out, nil
}

func encodeErr(what string, err error) error {
	return &types.Error{Kind: types.ErrKindFormat, Msg: "dump: encode " + what, Err: err}
}

func appendName(out []byte, enc byteTransformer, name string) ([]byte, error) {
	raw, err := enc.Bytes([]byte(name))
	if err != nil {
		return nil, err
	}
	if len(raw) > format.MaxNameLen {
		return nil, format.ErrNameTooLong
	}
	out = appendU16(out, uint16(len(raw)))
	return append(out, raw...), nil
}

func appendU16(out []byte, v uint16) []byte {
	return append(out, byte(v), byte(v>>8))
}

func appendU32(out []byte, v uint32) []byte {
	return append(out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// IsFormatError reports whether err came from a malformed dump.
func IsFormatError(err error) bool {
	var te *types.Error
	return errors.As(err, &te) && te.Kind == types.ErrKindFormat
}
