package common

// WipeByteArray overwrites b with zeros. It is used to drop passwords read
// from the terminal as soon as they have been handed to a service.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
