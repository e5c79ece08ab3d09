package sqlpager

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var _encoder = base64.RawURLEncoding

// cursorBufferSize fits the decimal form of any uint64 with room to spare.
const cursorBufferSize = 32

// EncodeCursor converts an offset into an opaque, URL-safe token.
//
// The token is the base64 (URL alphabet, no padding) encoding of the decimal
// representation of offset:
//
//	EncodeCursor(10) == "MTA"
func EncodeCursor(offset uint64) string {
	return _encoder.EncodeToString([]byte(strconv.FormatUint(offset, 10)))
}

// DecodeCursor parses a token produced by EncodeCursor back into an offset.
//
// Returns *Base64DecodeError, ErrInvalidUTF8 or *InvalidNumberError depending
// on the stage that failed.
func DecodeCursor(token string) (uint64, error) {
	var buf [cursorBufferSize]byte

	if _encoder.DecodedLen(len(token)) > len(buf) {
		return 0, &Base64DecodeError{
			Token: token,
			Err:   fmt.Errorf("decoded cursor exceeds %d bytes", len(buf)),
		}
	}

	n, err := _encoder.Decode(buf[:], []byte(token))
	if err != nil {
		return 0, &Base64DecodeError{Token: token, Err: err}
	}

	if !utf8.Valid(buf[:n]) {
		return 0, ErrInvalidUTF8
	}

	text := string(buf[:n])
	offset, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, &InvalidNumberError{Text: text, Err: err}
	}

	return offset, nil
}
