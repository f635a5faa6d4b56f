package ormfeat

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"gorm.io/gorm/schema"
)

func init() {
	schema.RegisterSerializer("msgpack", MsgpackSerializer{})
}

// MsgpackSerializer persists a struct field as a single msgpack blob column.
// Fields opt in with `gorm:"serializer:msgpack"`.
type MsgpackSerializer struct{}

// Scan decodes the blob column into the destination field.
// A NULL or empty column leaves the field at its zero value.
func (MsgpackSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue any) error {
	fieldValue := reflect.New(field.FieldType)

	if dbValue != nil {
		var raw []byte
		switch v := dbValue.(type) {
		case []byte:
			raw = v
		case string:
			raw = []byte(v)
		default:
			return fmt.Errorf("msgpack serializer: unsupported column type %T for %s", dbValue, field.Name)
		}
		if len(raw) > 0 {
			if err := msgpack.Unmarshal(raw, fieldValue.Interface()); err != nil {
				return fmt.Errorf("msgpack serializer: decode %s: %w", field.Name, err)
			}
		}
	}

	field.ReflectValueOf(ctx, dst).Set(fieldValue.Elem())
	return nil
}

// Value encodes the field value into the blob column.
func (MsgpackSerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue any) (any, error) {
	raw, err := msgpack.Marshal(fieldValue)
	if err != nil {
		return nil, fmt.Errorf("msgpack serializer: encode %s: %w", field.Name, err)
	}
	return raw, nil
}
