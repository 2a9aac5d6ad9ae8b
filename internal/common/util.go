package common

// WipeByteArray overwrites b in place with zeroes. Used to scrub
// credential material as soon as it is no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
