// Package fingerprint computes the FNV-1a name fingerprints the host uses as
// lookup keys into its schema tables.
//
// The host hashes NUL-terminated C strings, so hashing stops at the first NUL
// byte. Results must match the host bit for bit: a wrong fingerprint does not
// fail loudly, it just misses (or hits the wrong) table entry.
package fingerprint

// FNV-1a constants.
const (
	Basis32 uint32 = 0x811c9dc5
	Prime32 uint32 = 0x1000193
	Basis64 uint64 = 0xcbf29ce484222325
	Prime64 uint64 = 0x100000001b3
)

// Fingerprint is the pair of keys derived from one name.
type Fingerprint struct {
	Name  string
	Key32 uint32
	Key64 uint64
}

// Of computes both fingerprints for name.
func Of(name string) Fingerprint {
	return Fingerprint{
		Name:  name,
		Key32: Fingerprint32(name),
		Key64: Fingerprint64(name),
	}
}

// Fingerprint32 returns the 32-bit FNV-1a hash of name, up to the first NUL.
func Fingerprint32(name string) uint32 {
	h := Basis32
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == 0 {
			break
		}
		h ^= uint32(c)
		h *= Prime32
	}
	return h
}

// Fingerprint64 returns the 64-bit FNV-1a hash of name, up to the first NUL.
func Fingerprint64(name string) uint64 {
	h := Basis64
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == 0 {
			break
		}
		h ^= uint64(c)
		h *= Prime64
	}
	return h
}

// Bytes32 hashes a name held as bytes without converting it to a string.
// The bytes must be the UTF-8 name: table keys are fingerprints of UTF-8
// names, not of the host's code-page bytes.
func Bytes32(data []byte) uint32 {
	h := Basis32
	for _, b := range data {
		if b == 0 {
			break
		}
		h ^= uint32(b)
		h *= Prime32
	}
	return h
}

// Bytes64 is the 64-bit counterpart of Bytes32.
func Bytes64(data []byte) uint64 {
	h := Basis64
	for _, b := range data {
		if b == 0 {
			break
		}
		h ^= uint64(b)
		h *= Prime64
	}
	return h
}
