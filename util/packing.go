// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// AppendUint64 - append a varint64 encoded value
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendInt64 - append a signed value using zig-zag encoding
func AppendInt64(buffer []byte, value int64) []byte {
	return AppendUint64(buffer, uint64(value<<1)^uint64(value>>63))
}

// AppendBytes - append a length prefixed byte slice
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendUint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendString - append a length prefixed string
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// ReadUint64 - fetch a varint64 from the start of the buffer
//
// returns the value and the remaining buffer; ok is false if truncated
func ReadUint64(buffer []byte) (uint64, []byte, bool) {
	value, n := FromVarint64(buffer)
	if 0 == n {
		return 0, nil, false
	}
	return value, buffer[n:], true
}

// ReadInt64 - fetch a zig-zag encoded signed value
func ReadInt64(buffer []byte) (int64, []byte, bool) {
	u, rest, ok := ReadUint64(buffer)
	if !ok {
		return 0, nil, false
	}
	return int64(u>>1) ^ -int64(u&1), rest, true
}

// ReadBytes - fetch a length prefixed byte slice of at most maximum bytes
//
// an empty field is returned as nil
func ReadBytes(buffer []byte, maximum int) ([]byte, []byte, bool) {
	length, n := ClippedVarint64(buffer, 0, maximum)
	if 0 == n || len(buffer) < n+length {
		return nil, nil, false
	}
	if 0 == length {
		return nil, buffer[n:], true
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, buffer[n+length:], true
}

// ReadString - fetch a length prefixed string of at most maximum bytes
func ReadString(buffer []byte, maximum int) (string, []byte, bool) {
	data, rest, ok := ReadBytes(buffer, maximum)
	if !ok {
		return "", nil, false
	}
	return string(data), rest, true
}
