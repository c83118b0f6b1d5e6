package bigint

import (
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

func (i Int) MarshalText() ([]byte, error) {
	return i.appendDecimal(nil), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes i as a quoted decimal string, so that values outside
// the range of a float64 survive JSON decoders that use one.
func (i Int) MarshalJSON() ([]byte, error) {
	b := append(make([]byte, 0, 16), '"')
	b = i.appendDecimal(b)
	return append(b, '"'), nil
}

// UnmarshalJSON accepts both a quoted decimal string and a bare JSON integer.
func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("bigint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// GetBSON implements bson.Getter. Values that fit are stored as a BSON int64,
// anything larger as a decimal string.
func (i Int) GetBSON() (interface{}, error) {
	if i.IsInt64() {
		return i.AsInt64(), nil
	}
	return i.String(), nil
}

// SetBSON implements bson.Setter. It accepts int32, int64, string and
// integral Decimal128 elements.
func (i *Int) SetBSON(raw bson.Raw) error {
	var v interface{}
	if err := raw.Unmarshal(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case int:
		*i = IntFromInt(v)
	case int64:
		*i = IntFrom64(v)
	case string:
		return i.UnmarshalText([]byte(v))
	case bson.Decimal128:
		n, err := IntFromString(v.String())
		if err != nil {
			return errors.Wrap(err, "bigint: decimal128 is not an integer")
		}
		*i = n
	default:
		return errors.Errorf("bigint: cannot decode BSON kind 0x%02x", raw.Kind)
	}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder, using the same int64 or
// decimal string split as GetBSON.
func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if i.IsInt64() {
		return enc.EncodeInt(i.AsInt64())
	}
	return enc.EncodeString(i.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder. Any msgpack integer or a
// decimal string is accepted.
func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case int64:
		*i = IntFrom64(v)
	case uint64:
		*i = IntFromU64(v)
	case string:
		return i.UnmarshalText([]byte(v))
	default:
		return errors.Errorf("bigint: cannot decode msgpack %T", v)
	}
	return nil
}
