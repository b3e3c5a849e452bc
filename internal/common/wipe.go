package common

// WipeByteArray overwrites b with zeros so a password read from the
// terminal does not linger in memory longer than needed. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
