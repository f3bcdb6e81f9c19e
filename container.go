package huffman

import (
	"bytes"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Container is a parsed compressed buffer.  Tree and Payload alias the
// buffer they were parsed from.
type Container struct {
	// HeaderLength is the declared length of Tree.
	HeaderLength int

	// Tree holds the serialized code tree.
	Tree []byte

	// Payload holds the packed bitstream.
	Payload []byte
}

// Compress returns the compressed form of data.
func Compress(data []byte) []byte {
	var buf bytes.Buffer
	err := CompressTo(&buf, data)
	assert.Assertf(err == nil, "bytes.Buffer write failed: %v", err)
	return buf.Bytes()
}

// CompressTo writes the compressed form of data to w:
//
//     <decimal length of tree> 0x00 <serialized tree> <packed bitstream>
//
func CompressTo(w io.Writer, data []byte) error {
	ft := CountFrequencies(data)
	t := BuildTree(&ft)

	var e Encoder
	e.Init(t)

	tree := t.Serialize()
	header := make([]byte, 0, 4+len(tree))
	header = strconv.AppendUint(header, uint64(len(tree)), 10)
	header = append(header, 0)
	header = append(header, tree...)
	if _, err := w.Write(header); err != nil {
		return err
	}
	return e.EncodeTo(w, data)
}

// ParseContainer splits a compressed buffer into its parts.  Errors are
// *DecodeError values of kind KindMalformedContainer.
func ParseContainer(buf []byte) (Container, error) {
	sep := bytes.IndexByte(buf, 0)
	if sep < 0 {
		return Container{}, malformedContainer("missing null separator after header length")
	}

	digits := buf[:sep]
	if len(digits) == 0 {
		return Container{}, malformedContainer("empty header length")
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return Container{}, malformedContainer("header length %q is not a decimal number", digits)
		}
	}

	rest := buf[sep+1:]
	n, err := strconv.ParseUint(string(digits), 10, strconv.IntSize-1)
	if err != nil {
		return Container{}, &DecodeError{Kind: KindMalformedContainer, Err: err}
	}
	if n > uint64(len(rest)) {
		return Container{}, malformedContainer("header length %d exceeds the %d bytes remaining", n, len(rest))
	}

	return Container{
		HeaderLength: int(n),
		Tree:         rest[:n],
		Payload:      rest[n:],
	}, nil
}

// Decompress reconstructs the original data from a compressed buffer.  Any
// failure is reported as a *DecodeError, and no data is returned with it.
func Decompress(buf []byte) ([]byte, error) {
	c, err := ParseContainer(buf)
	if err != nil {
		return nil, err
	}

	t, err := DeserializeTree(c.Tree)
	if err != nil {
		return nil, err
	}

	var d Decoder
	d.Init(t)

	out, err := d.DecodeBytes(c.Payload)
	if err != nil {
		return nil, err
	}
	return out, nil
}
