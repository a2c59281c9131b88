package form

// Bytes is an immutable block of bytes that compares and hashes by content.
// The zero value is an empty block.
type Bytes struct {
	s string
}

// NewBytes copies b into a new block.
func NewBytes(b []byte) Bytes {
	return Bytes{s: string(b)}
}

// Bytes returns a copy of the block's content.
func (b Bytes) Bytes() []byte {
	return []byte(b.s)
}

// Len reports the size of the block in bytes.
func (b Bytes) Len() int {
	return len(b.s)
}

// String returns the content as a string without copying.
func (b Bytes) String() string {
	return b.s
}
