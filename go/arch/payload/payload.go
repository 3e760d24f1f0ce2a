// Package payload reads typed values out of the raw operand unions copied
// from the engine. The unions are host-native byte images, so every read
// uses the native byte order and is bounds-checked: a short buffer reports
// ok == false (or an error) instead of panicking.
package payload

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// Order is the byte order of engine memory.
var Order binary.ByteOrder = binary.NativeEndian

func span(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off+n > len(b) {
		return nil, false
	}
	return b[off : off+n], true
}

func Uint8(b []byte, off int) (uint8, bool) {
	s, ok := span(b, off, 1)
	if !ok {
		return 0, false
	}
	return s[0], true
}

func Uint32(b []byte, off int) (uint32, bool) {
	s, ok := span(b, off, 4)
	if !ok {
		return 0, false
	}
	return Order.Uint32(s), true
}

func Int32(b []byte, off int) (int32, bool) {
	v, ok := Uint32(b, off)
	return int32(v), ok
}

func Uint64(b []byte, off int) (uint64, bool) {
	s, ok := span(b, off, 8)
	if !ok {
		return 0, false
	}
	return Order.Uint64(s), true
}

func Int64(b []byte, off int) (int64, bool) {
	v, ok := Uint64(b, off)
	return int64(v), ok
}

func Float64(b []byte, off int) (float64, bool) {
	v, ok := Uint64(b, off)
	return math.Float64frombits(v), ok
}

// Unpack decodes the fixed layout described by the struct pointed to by v
// from the start of b. Fields are read in declaration order with no
// implicit padding, so v must spell out the C layout exactly.
func Unpack(b []byte, v interface{}) error {
	size, err := struc.Sizeof(v)
	if err != nil {
		return errors.Wrap(err, "struc.Sizeof() failed")
	}
	if len(b) < size {
		return errors.Errorf("payload too short: have %d bytes, layout needs %d", len(b), size)
	}
	if err := struc.UnpackWithOrder(bytes.NewReader(b[:size]), v, Order); err != nil {
		return errors.Wrap(err, "struc.UnpackWithOrder() failed")
	}
	return nil
}

// Put is the inverse of Unpack, used to build payload images.
func Put(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := struc.PackWithOrder(&buf, v, Order); err != nil {
		return nil, errors.Wrap(err, "struc.PackWithOrder() failed")
	}
	return buf.Bytes(), nil
}
