// Package huffman implements a static Huffman byte-stream compressor.
//
// The input's byte frequencies drive construction of a code tree over a
// 257-symbol alphabet: the 256 byte values plus an EndOfStream marker.  The
// tree is serialized alongside the coded payload, so a compressed buffer is
// self-describing:
//
//     <decimal header length> 0x00 <serialized tree> <packed bitstream>
//
// The tree is serialized in pre-order, one tag byte per node: 1 for a branch
// (left subtree then right subtree follow), 2 followed by the byte value for
// a byte leaf, and 3 for the EndOfStream leaf.  The bitstream is packed most
// significant bit first and ends with the code for EndOfStream; any padding
// bits in the final byte are ignored.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
