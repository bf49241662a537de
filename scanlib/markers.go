// Package scanlib provides the byte-level scanning primitives used to locate
// embedded resources in texture containers.
package scanlib

import "bytes"

// Log is used to log debugging messages.
var Log = func(format string, a ...interface{}) {}

// DDSMagic is the marker at the start of every embedded DDS texture.
var DDSMagic = []byte("DDS ")

// POFMagic is the marker which ends the texture data in AFB containers.
var POFMagic = []byte("POF")

// FindMarkers returns the offset of every occurrence of magic in buf in
// increasing order. Every byte offset is tested, so overlapping occurrences are
// all reported. It returns nil if there are none.
func FindMarkers(buf, magic []byte) []int {
	if len(magic) == 0 || len(magic) > len(buf) {
		return nil
	}
	var offsets []int
	for i := 0; i <= len(buf)-len(magic); {
		j := bytes.Index(buf[i:], magic)
		if j < 0 {
			break
		}
		offsets = append(offsets, i+j)
		i += j + 1 // not len(magic): overlapping matches count
	}
	return offsets
}
