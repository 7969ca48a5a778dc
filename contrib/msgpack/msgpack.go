// Package msgpack serializes scribe enums as msgpack strings.
//
// Generated EncodeMsgpack/DecodeMsgpack methods delegate here, so an
// enum with the codec/msgpack feature satisfies msgpack.CustomEncoder
// and msgpack.CustomDecoder and travels by its text form instead of its
// backing value.
package msgpack

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/scribegen/scribe"
)

// Encode writes the text form of v to the encoder. Values without a text
// form (ignored or out of set) yield an UnscribableError.
func Encode(enc *msgpack.Encoder, typeName string, v scribe.TryScriber) error {
	s, ok := v.TryScribe()
	if !ok {
		return scribe.NewUnscribableError(typeName, v)
	}
	return enc.EncodeString(s)
}

// Decode reads a msgpack string from the decoder and converts it through
// the reverse conversion. Unmatched text yields an UnknownTextError
// carrying the input and, when given, the expected texts.
func Decode[T any](dec *msgpack.Decoder, typeName string, reverse scribe.TryUnscriber[T], expected ...string) (T, error) {
	var zero T
	s, err := dec.DecodeString()
	if err != nil {
		return zero, fmt.Errorf("scribe: decode %s: %w", typeName, err)
	}
	v, ok := reverse(s)
	if !ok {
		return zero, scribe.NewUnknownTextError(typeName, s, expected)
	}
	return v, nil
}
