package entities

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

// decodeMap checks that every required key is present in data and then
// decodes data into out. Presence is checked before any field validation.
func decodeMap(data map[string]any, required []string, out any) error {
	for _, key := range required {
		if _, ok := data[key]; !ok {
			return &MissingFieldError{Field: key}
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			integralFloatHook,
			decimalHook,
		),
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(data); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	return nil
}

// 2^63, the first float64 above math.MaxInt64.
const maxInt64Float = 1 << 63

// integralFloatHook rejects fractional floats bound for integer fields.
// JSON numbers arrive as float64.
func integralFloatHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	if f >= maxInt64Float || f < -maxInt64Float {
		return nil, fmt.Errorf("%v is out of integer range", f)
	}
	return int64(f), nil
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func decimalHook(from, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return nil, fmt.Errorf("cannot convert %s to decimal", from)
	}
}
