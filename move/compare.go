package move

// Compare returns a negative number, zero or a positive number as a is more
// optimal than, as optimal as, or less optimal than b.
//
// Sequences are ranked by length, then by number of jumps, then by the
// cumulative position at the first tick where the two differ, further ahead
// being better.
func Compare(a, b []Move) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}

	if ja, jb := Jumps(a), Jumps(b); ja != jb {
		return ja - jb
	}

	pa, pb := 0, 0
	for i := range a {
		pa += int(a[i])
		pb += int(b[i])
		if pa != pb {
			return pb - pa
		}
	}
	return 0
}
