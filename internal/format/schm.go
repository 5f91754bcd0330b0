// Package format defines the on-disk layout of binary schema dumps (.schm).
//
// All integers are little-endian.
//
//	Header (16 bytes)
//	  0x00 [4]  signature "SCHM"
//	  0x04 u16  version
//	  0x06 u16  flags (reserved, 0)
//	  0x08 u32  class count
//	  0x0C u32  reserved
//
//	Class record
//	  u16 name length, name bytes (Windows-1252)
//	  i16 chain offset
//	  u8  has chain (0/1)
//	  u8  pad
//	  u32 member count
//	  member records...
//
//	Member record
//	  u16 name length, name bytes (Windows-1252)
//	  i32 offset
//	  u8  flags (bit 0: networked)
//	  u8  pad
package format

// Signature is the magic at offset 0 of every dump.
const Signature = "SCHM"

// Version is the only layout version this package reads and writes.
const Version uint16 = 1

// Header layout.
const (
	HeaderSize            = 0x10
	HeaderSignatureOffset = 0x00
	HeaderVersionOffset   = 0x04
	HeaderFlagsOffset     = 0x06
	HeaderClassCount      = 0x08
	HeaderReservedOffset  = 0x0C
)

// Fixed record sizes (excluding the variable-length name).
const (
	NameLenSize         = 2
	ClassFixedSize      = 2 + 1 + 1 + 4 // chain, has-chain, pad, member count
	MemberFixedSize     = 4 + 1 + 1     // offset, flags, pad
	MaxNameLen          = 0xFFFF
	MemberFlagNetworked = 0x01
)
