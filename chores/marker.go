package chores

const (
	PACKET_MARKER_SIZE  = 4  // Distinct characters in a start-of-packet marker.
	MESSAGE_MARKER_SIZE = 14 // Distinct characters in a start-of-message marker.
)

// Marker returns the number of characters processed when the first window
// of size distinct characters ends.
func Marker(stream string, size int) (index int, err error) {
	var seen [256]int // Count of each byte in the window.
	distinct := 0

	for n := range len(stream) {
		if seen[stream[n]] == 0 {
			distinct++
		}
		seen[stream[n]]++

		if n >= size {
			old := stream[n-size]
			seen[old]--
			if seen[old] == 0 {
				distinct--
			}
		}

		if size > 0 && distinct == size {
			index = n + 1
			return
		}
	}

	err = ErrNoMarker

	return
}
