package huffman

// FrequencyTable holds the number of occurrences of each byte value.
type FrequencyTable [256]uint64

// CountFrequencies tallies the bytes of data into a new FrequencyTable.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// Add tallies the bytes of data into this FrequencyTable.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		ft[b]++
	}
}

// Total returns the sum of all counts, i.e. the number of bytes tallied.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range ft {
		sum += n
	}
	return sum
}

// Distinct returns the number of byte values with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}
