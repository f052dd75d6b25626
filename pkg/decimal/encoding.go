package decimal

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"strconv"
)

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Also see Parse.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON encodes d as a JSON string so that no consumer reads it back
// through a binary float.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts a JSON string or a JSON number. A JSON null leaves d unchanged.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFormat, text)
		}
		text = s
	}
	return d.UnmarshalText([]byte(text))
}

// Scan implements sql.Scanner.
func (d *Decimal) Scan(src any) error {
	var err error
	switch v := src.(type) {
	case string:
		*d, err = Parse(v)
	case []byte:
		*d, err = Parse(string(v))
	case int64:
		*d = NewFromInt(v)
	case float64:
		*d, err = NewFromFloat(v)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
	return err
}

// Value implements driver.Valuer. Decimals are sent as text.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// LogValue implements slog.LogValuer.
func (d Decimal) LogValue() slog.Value {
	return slog.StringValue(d.String())
}

// NullDecimal is a decimal that may be NULL in a database.
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements sql.Scanner.
func (n *NullDecimal) Scan(src any) error {
	if src == nil {
		n.Decimal, n.Valid = Decimal{}, false
		return nil
	}
	if err := n.Decimal.Scan(src); err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}
