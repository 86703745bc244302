package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// Collection value codecs for the module's value types. Values are stored as
// JSON; math.Int and math.LegacyDec marshal to their canonical decimal string,
// so the encoding is deterministic across nodes.
var (
	StakePositionValue = newJSONValueCodec[StakePosition]("lockstake.StakePosition")
	ParamsValue        = newJSONValueCodec[Params]("lockstake.Params")
)

type jsonValueCodec[T any] struct {
	name string
}

func newJSONValueCodec[T any](name string) collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{name: name}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.name
}
