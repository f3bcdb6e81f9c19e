package huffman

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the ways a compressed buffer can fail to decode.
type ErrorKind byte

const (
	// KindMalformedContainer: missing separator, bad or oversized header
	// length.
	KindMalformedContainer ErrorKind = iota + 1

	// KindMalformedTree: the serialized tree does not describe a complete
	// code tree.
	KindMalformedTree

	// KindTruncatedBitstream: the bitstream ended before EndOfStream.
	KindTruncatedBitstream
)

var (
	ErrMalformedContainer = errors.New("huffman: malformed container")
	ErrMalformedTree      = errors.New("huffman: malformed tree")
	ErrTruncatedBitstream = errors.New("huffman: truncated bitstream")
)

var kindData = [...]struct {
	name     string
	sentinel error
}{
	KindMalformedContainer: {"MalformedContainer", ErrMalformedContainer},
	KindMalformedTree:      {"MalformedTree", ErrMalformedTree},
	KindTruncatedBitstream: {"TruncatedBitstream", ErrTruncatedBitstream},
}

func (kind ErrorKind) isValid() bool {
	return kind > 0 && int(kind) < len(kindData)
}

// String returns the name of this ErrorKind.
func (kind ErrorKind) String() string {
	if kind.isValid() {
		return kindData[kind].name
	}
	return fmt.Sprintf("ErrorKind(%d)", byte(kind))
}

// Sentinel returns the sentinel error matched by errors.Is for this kind.
func (kind ErrorKind) Sentinel() error {
	if kind.isValid() {
		return kindData[kind].sentinel
	}
	return nil
}

var _ fmt.Stringer = ErrorKind(0)

// DecodeError is returned for every compressed buffer that cannot be
// decoded.  Err holds the underlying cause.
type DecodeError struct {
	Kind ErrorKind
	Err  error
}

// Error fulfills the error interface.
func (err *DecodeError) Error() string {
	var prefix string
	if sentinel := err.Kind.Sentinel(); sentinel != nil {
		prefix = sentinel.Error()
	} else {
		prefix = "huffman: " + err.Kind.String()
	}
	if err.Err == nil {
		return prefix
	}
	return prefix + ": " + err.Err.Error()
}

// Unwrap returns the underlying cause.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

// Is matches the sentinel error for this error's Kind.
func (err *DecodeError) Is(target error) bool {
	sentinel := err.Kind.Sentinel()
	return sentinel != nil && target == sentinel
}

var _ error = (*DecodeError)(nil)

func malformedContainer(format string, args ...interface{}) error {
	return &DecodeError{Kind: KindMalformedContainer, Err: fmt.Errorf(format, args...)}
}

func malformedTree(format string, args ...interface{}) error {
	return &DecodeError{Kind: KindMalformedTree, Err: fmt.Errorf(format, args...)}
}
