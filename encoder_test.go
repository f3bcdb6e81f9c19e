package huffman

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyTable {
	var ft FrequencyTable
	for i, freq := range []uint64{5, 9, 12, 13, 16, 45} {
		ft['a'+i] = freq
	}
	return ft
}

func TestEncoder(t *testing.T) {
	ft := makeTestFrequencies()
	e := NewEncoder(BuildTree(&ft))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 5\n",
		"\tEncode('a') = \"11001\"\n",
		"\tEncode('b') = \"1101\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('f') = \"0\"\n",
		"\tEncode(EOS) = \"11000\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	sizes := e.SizeBySymbol()
	if len(sizes) != NumSymbols {
		t.Fatalf("wrong number of sizes: expect %d, actual %d", NumSymbols, len(sizes))
	}
	expectSizes := map[Symbol]int{'a': 5, 'b': 4, 'c': 3, 'd': 3, 'e': 3, 'f': 1, EndOfStream: 5}
	for symbol, size := range sizes {
		if expect := expectSizes[Symbol(symbol)]; expect != size {
			t.Errorf("wrong size for %v: expect %d, actual %d", Symbol(symbol), expect, size)
		}
	}

	// 5×5 + 9×4 + 12×3 + 13×3 + 16×3 + 45×1 + 1×5 bits
	if expect, actual := uint64(234), e.EncodedBits(&ft); expect != actual {
		t.Errorf("wrong EncodedBits: expect %d, actual %d", expect, actual)
	}
	if expect, actual := uint64(30), e.EncodedSize(&ft); expect != actual {
		t.Errorf("wrong EncodedSize: expect %d, actual %d", expect, actual)
	}
}

func TestEncoder_EncodeBytes(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect []byte
	}

	testData := [...]testRow{
		{name: "empty", input: "", expect: []byte{0x00}},
		{name: "single", input: "aaaa", expect: []byte{0xf0}},
		{name: "aaab", input: "aaab", expect: []byte{0xe8}},
		{name: "two-bytes", input: "aaaaaaab", expect: []byte{0xfe, 0x80}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			ft := CountFrequencies([]byte(row.input))
			e := NewEncoder(BuildTree(&ft))
			actual := e.EncodeBytes([]byte(row.input))
			if string(row.expect) != string(actual) {
				t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", row.expect, actual)
			}
			if expect := e.EncodedSize(&ft); expect != uint64(len(actual)) {
				t.Errorf("EncodedSize disagrees: expect %d, actual %d", expect, len(actual))
			}
		})
	}
}

func TestEncoder_EncodePanicsOnMissingSymbol(t *testing.T) {
	ft := CountFrequencies([]byte("aaab"))
	e := NewEncoder(BuildTree(&ft))

	if e.Has('z') {
		t.Fatalf("expected no code for 'z'")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected Encode('z') to panic")
		}
	}()
	e.Encode('z')
}

func randomFrequencies(rng *rand.Rand) FrequencyTable {
	var ft FrequencyTable
	n := 1 + rng.Intn(256)
	for i := 0; i < n; i++ {
		ft[rng.Intn(256)] += uint64(1 + rng.Intn(1000))
	}
	return ft
}

func TestEncoder_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 20; iter++ {
		ft := randomFrequencies(rng)
		e := NewEncoder(BuildTree(&ft))

		var symbols []Symbol
		for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
			if e.Has(symbol) {
				symbols = append(symbols, symbol)
			}
		}
		if expect := ft.Distinct() + 1; expect != len(symbols) {
			t.Fatalf("wrong number of codes: expect %d, actual %d", expect, len(symbols))
		}

		for _, x := range symbols {
			for _, y := range symbols {
				if x != y && e.Encode(x).HasPrefix(e.Encode(y)) {
					t.Fatalf("code %s for %v has prefix %s for %v", e.Encode(x), x, e.Encode(y), y)
				}
			}
		}
	}
}

func TestEncoder_LengthOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 20; iter++ {
		ft := randomFrequencies(rng)
		e := NewEncoder(BuildTree(&ft))

		weight := func(symbol Symbol) uint64 {
			if symbol == EndOfStream {
				return 0
			}
			return ft[symbol]
		}

		for x := Symbol(0); x <= MaxSymbol; x++ {
			for y := Symbol(0); y <= MaxSymbol; y++ {
				if !e.Has(x) || !e.Has(y) || weight(x) <= weight(y) {
					continue
				}
				if e.Encode(x).Size > e.Encode(y).Size {
					t.Fatalf("%v (weight %d) has a longer code than %v (weight %d): %s vs %s",
						x, weight(x), y, weight(y), e.Encode(x), e.Encode(y))
				}
			}
		}
	}
}

// optimalCost computes the weighted path length of an optimal prefix code
// as the sum of the weights of all internal nodes.
func optimalCost(weights []uint64) uint64 {
	weights = append([]uint64(nil), weights...)
	var cost uint64
	for len(weights) > 1 {
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
		sum := weights[0] + weights[1]
		cost += sum
		weights = append(weights[2:], sum)
	}
	return cost
}

func TestEncoder_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 20; iter++ {
		ft := randomFrequencies(rng)
		e := NewEncoder(BuildTree(&ft))

		weights := []uint64{0}
		for _, freq := range ft {
			if freq != 0 {
				weights = append(weights, freq)
			}
		}

		// EncodedBits counts one EndOfStream code on top of the weighted
		// path length.
		expect := optimalCost(weights)
		actual := e.EncodedBits(&ft) - uint64(e.Encode(EndOfStream).Size)
		if expect != actual {
			t.Errorf("not optimal: expect %d bits, actual %d bits", expect, actual)
		}
	}
}
