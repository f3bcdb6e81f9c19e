package huffman

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// caterpillarTree returns the serialized form of a tree in which byte i has
// the code "1"×i + "0", and the deepest branch holds EndOfStream and byte n.
func caterpillarTree(n int) []byte {
	var buf []byte
	for i := 0; i < n; i++ {
		buf = append(buf, tagBranch, tagByte, byte(i))
	}
	return append(buf, tagBranch, tagEndOfStream, tagByte, byte(n))
}

func TestTree_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for iter := 0; iter < 20; iter++ {
		ft := randomFrequencies(rng)
		tree := BuildTree(&ft)

		buf := tree.Serialize()
		if expect, actual := tree.SerializedSize(), len(buf); expect != actual {
			t.Errorf("wrong SerializedSize: expect %d, actual %d", expect, actual)
		}

		clone, err := DeserializeTree(buf)
		if err != nil {
			t.Fatalf("DeserializeTree failed: %v", err)
		}
		if !tree.Equal(clone) {
			t.Fatalf("trees differ after round trip")
		}

		e1, e2 := NewEncoder(tree), NewEncoder(clone)
		for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
			if e1.Has(symbol) != e2.Has(symbol) {
				t.Fatalf("symbol %v present in only one tree", symbol)
			}
			if e1.Has(symbol) && e1.Encode(symbol) != e2.Encode(symbol) {
				t.Fatalf("symbol %v: %s vs %s", symbol, e1.Encode(symbol), e2.Encode(symbol))
			}
		}

		if again := clone.Serialize(); string(buf) != string(again) {
			t.Fatalf("re-serialization differs:\n\texpect: %v\n\tactual: %v", buf, again)
		}
	}
}

func TestTree_Deep(t *testing.T) {
	const n = 200
	tree, err := DeserializeTree(caterpillarTree(n))
	if err != nil {
		t.Fatalf("DeserializeTree failed: %v", err)
	}
	if expect, actual := n+1, tree.Depth(); expect != actual {
		t.Fatalf("wrong depth: expect %d, actual %d", expect, actual)
	}

	e := NewEncoder(tree)
	if expect, actual := 150, e.Encode(149).Size; expect != actual {
		t.Errorf("wrong code size for byte 149: expect %d, actual %d", expect, actual)
	}

	input := []byte{0, 199, 200, 17, 150, 150, 3}
	encoded := e.EncodeBytes(input)
	actual, err := NewDecoder(tree).DecodeBytes(encoded)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if string(input) != string(actual) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", input, actual)
	}
}

func TestTree_BinaryMarshaler(t *testing.T) {
	ft := makeTestFrequencies()
	tree := BuildTree(&ft)

	raw, err := tree.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	expect := []byte{1, 2, 'f', 1, 1, 2, 'c', 2, 'd', 1, 1, 1, 3, 2, 'a', 2, 'b', 2, 'e'}
	if string(expect) != string(raw) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", expect, raw)
	}

	var clone Tree
	if err := clone.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !tree.Equal(&clone) {
		t.Errorf("trees differ after UnmarshalBinary")
	}

	expectString := "(Huffman tree with 7 leaves, with code lengths up to 5 bits)"
	if actual := clone.String(); expectString != actual {
		t.Errorf("wrong string:\n\texpect: %s\n\tactual: %s", expectString, actual)
	}
}

func TestDeserializeTree_Malformed(t *testing.T) {
	type testRow struct {
		name   string
		input  []byte
		expect string
	}

	tooMany := make([]byte, maxNodes+1)
	for i := range tooMany {
		tooMany[i] = tagBranch
	}

	testData := [...]testRow{
		{name: "empty", input: nil, expect: "empty tree"},
		{name: "leaf-root", input: []byte{2, 'a'}, expect: "not a branch"},
		{name: "incomplete", input: []byte{1, 3}, expect: "incomplete"},
		{name: "nested-incomplete", input: []byte{1, 1, 3, 2, 'a'}, expect: "incomplete"},
		{name: "missing-byte", input: []byte{1, 3, 2}, expect: "missing byte value"},
		{name: "trailing", input: []byte{1, 3, 2, 'a', 3}, expect: "trailing"},
		{name: "unknown-tag", input: []byte{1, 3, 9}, expect: "unknown tag 9"},
		{name: "duplicate-byte", input: []byte{1, 2, 'a', 2, 'a'}, expect: "duplicate leaf"},
		{name: "duplicate-eos", input: []byte{1, 3, 3}, expect: "duplicate leaf"},
		{name: "no-eos", input: []byte{1, 2, 'a', 2, 'b'}, expect: "no end-of-stream"},
		{name: "too-many-nodes", input: tooMany, expect: "more than"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, err := DeserializeTree(row.input)
			if err == nil {
				t.Fatalf("expected error, got %v", tree)
			}
			if !errors.Is(err, ErrMalformedTree) {
				t.Errorf("expected ErrMalformedTree, got %v", err)
			}
			if !strings.Contains(err.Error(), row.expect) {
				t.Errorf("wrong error:\n\texpect: ...%s...\n\tactual: %v", row.expect, err)
			}
		})
	}
}
