package scanlib

import "bytes"

// Chunk is the half-open byte range [Start, End) of an embedded resource.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of bytes in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Bytes returns the chunk's bytes from buf without copying.
func (c Chunk) Bytes(buf []byte) []byte {
	return buf[c.Start:c.End]
}

// ResolveChunks computes the extent of the chunk starting at each marker. A
// chunk ends at the next marker, or at the end of buf for the last one. If
// terminator is not empty, the first occurrence of it between a marker and the
// next one ends the chunk early (this may produce an empty chunk if it occurs
// right at the marker).
//
// The markers must be increasing offsets within buf, as returned by
// FindMarkers.
func ResolveChunks(markers []int, buf, terminator []byte) []Chunk {
	chunks := make([]Chunk, 0, len(markers))
	for i, start := range markers {
		next := len(buf)
		if i+1 < len(markers) {
			next = markers[i+1]
		}
		end := next
		if len(terminator) != 0 {
			if t := bytes.Index(buf[start:next], terminator); t >= 0 {
				end = start + t
			}
		}
		chunks = append(chunks, Chunk{start, end})
	}
	return chunks
}
