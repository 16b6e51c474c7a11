package primitive

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		from, to KindEnum
		expected CategoryEnum
	}{
		{KindInt8, KindInt64, CategorySafeNumber},
		{KindInt, KindInt64, CategorySafeNumber},
		{KindInt64, KindInt, CategorySafeNumber},
		{KindUint8, KindInt16, CategorySafeNumber},
		{KindUint16, KindInt16, CategoryUnsafeNumber},
		{KindInt8, KindUint64, CategoryUnsafeNumber},
		{KindInt16, KindFloat32, CategorySafeNumber},
		{KindInt32, KindFloat32, CategoryUnsafeNumber},
		{KindInt32, KindFloat64, CategorySafeNumber},
		{KindInt64, KindFloat64, CategoryUnsafeNumber},
		{KindFloat32, KindFloat64, CategorySafeNumber},
		{KindFloat64, KindFloat32, CategoryUnsafeNumber},
		{KindFloat64, KindInt, CategoryUnsafeNumber},
		{KindString, KindString, CategoryText},
		{KindBool, KindBool, CategoryBool},
		{KindString, KindInt, CategoryNone},
		{KindBool, KindInt, CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(ConversionPair{tt.from, tt.to}))
		})
	}
}

func TestConvert(t *testing.T) {
	type Status string

	tests := []struct {
		name     string
		value    any
		to       reflect.Type
		allowed  CategoryEnum
		expected any
		ok       bool
	}{
		{"widen", int8(3), reflect.TypeOf(0), CategoryAll, 3, true},
		{"narrow fits", 3, reflect.TypeOf(int8(0)), CategoryAll, int8(3), true},
		{"narrow overflows", 300, reflect.TypeOf(int8(0)), CategoryAll, nil, false},
		{"negative to unsigned", -1, reflect.TypeOf(uint(0)), CategoryAll, nil, false},
		{"whole float to int", 2.0, reflect.TypeOf(0), CategoryAll, 2, true},
		{"fractional float to int", 2.5, reflect.TypeOf(0), CategoryAll, nil, false},
		{"int beyond float precision", int64(1<<53 + 1), reflect.TypeOf(0.0), CategoryAll, nil, false},
		{"int within float precision", int64(1 << 53), reflect.TypeOf(0.0), CategoryAll, float64(1 << 53), true},
		{"float beyond float32 range", 1e300, reflect.TypeOf(float32(0)), CategoryAll, nil, false},
		{"unsafe not allowed", 3, reflect.TypeOf(int8(0)), CategorySafeNumber, nil, false},
		{"named string", "ok", reflect.TypeOf(Status("")), CategoryAll, Status("ok"), true},
		{"string to int", "3", reflect.TypeOf(0), CategoryAll, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := Convert(reflect.ValueOf(tt.value), tt.to, tt.allowed)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.expected, out.Interface())
			}
		})
	}

	_, ok := Convert(reflect.Value{}, reflect.TypeOf(0), CategoryAll)
	assert.False(t, ok)
}
