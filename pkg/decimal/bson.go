package decimal

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MarshalBSONValue implements bson.ValueMarshaler. Values that fit a BSON
// Decimal128 exactly are stored as one; longer values are stored as strings.
func (d Decimal) MarshalBSONValue() (byte, []byte, error) {
	if d128, err := bson.ParseDecimal128(d.String()); err == nil {
		if back, err := Parse(d128.String()); err == nil && back == d {
			typ, data, err := bson.MarshalValue(d128)
			return byte(typ), data, err
		}
	}
	typ, data, err := bson.MarshalValue(d.String())
	return byte(typ), data, err
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. It accepts Decimal128,
// string, int32, int64 and double values. A BSON null leaves d unchanged.
func (d *Decimal) UnmarshalBSONValue(typ byte, data []byte) error {
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}
	switch rv.Type {
	case bson.TypeNull:
		return nil
	case bson.TypeDecimal128:
		if v, ok := rv.Decimal128OK(); ok {
			return d.UnmarshalText([]byte(v.String()))
		}
	case bson.TypeString:
		if v, ok := rv.StringValueOK(); ok {
			return d.UnmarshalText([]byte(v))
		}
	case bson.TypeInt32:
		if v, ok := rv.Int32OK(); ok {
			*d = NewFromInt(int64(v))
			return nil
		}
	case bson.TypeInt64:
		if v, ok := rv.Int64OK(); ok {
			*d = NewFromInt(v)
			return nil
		}
	case bson.TypeDouble:
		if v, ok := rv.DoubleOK(); ok {
			f, err := NewFromFloat(v)
			if err != nil {
				return err
			}
			*d = f
			return nil
		}
	}
	return fmt.Errorf("%w: bson type %v", ErrUnsupportedType, rv.Type)
}
