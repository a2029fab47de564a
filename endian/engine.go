// Package endian provides byte order utilities for the bca wire format.
//
// This package combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary into a single EndianEngine interface and adds helpers for
// the 24-bit integers used by the stream header.
//
// The wire format has one fixed byte order, big-endian, independent of the
// host. There is no runtime detection of the host byte order:
//
//	engine := endian.GetWireEngine()
//	length := endian.Uint24(engine, header[:3])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// MaxUint24 is the largest value representable in 24 bits.
const MaxUint24 = 1<<24 - 1

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetWireEngine returns the engine matching the byte order of the bca wire format.
func GetWireEngine() EndianEngine {
	return binary.BigEndian
}

// Uint24 decodes a 24-bit unsigned integer from the first three bytes of b.
// Panics if len(b) < 3.
func Uint24(engine EndianEngine, b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler

	var tmp [4]byte
	if engine == binary.BigEndian {
		copy(tmp[1:], b[:3])
	} else {
		copy(tmp[:3], b[:3])
	}

	return engine.Uint32(tmp[:])
}

// AppendUint24 appends the low 24 bits of v to b in the byte order of engine.
func AppendUint24(engine EndianEngine, b []byte, v uint32) []byte {
	var tmp [4]byte
	engine.PutUint32(tmp[:], v&MaxUint24)

	if engine == binary.BigEndian {
		return append(b, tmp[1:]...)
	}

	return append(b, tmp[:3]...)
}
