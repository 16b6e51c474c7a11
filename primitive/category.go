package primitive

import "reflect"

// CategoryEnum classifies a conversion between two scalar kinds.
type CategoryEnum int

// ConversionPair is a source and destination kind.
type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // number to number without precision loss
	CategoryUnsafeNumber                          // number to number that may lose precision
	CategoryText                                  // string to string, e.g. into a named string type
	CategoryBool                                  // bool to bool

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // no categories selected
)

// Categorize returns the category of a conversion, or CategoryNone when the
// kinds cannot be converted into each other.
func Categorize(p ConversionPair) CategoryEnum {
	switch {
	case p.From.IsNumber() && p.To.IsNumber():
		if safeNumber(p.From, p.To) {
			return CategorySafeNumber
		}

		return CategoryUnsafeNumber
	case p.From == KindString && p.To == KindString:
		return CategoryText
	case p.From == KindBool && p.To == KindBool:
		return CategoryBool
	default:
		return CategoryNone
	}
}

// Convert converts v to type to when their kinds fall into one of the allowed
// categories. Unsafe number conversions succeed only when the value survives
// the round trip, so int(300) does not convert to int8 but int(3) does.
func Convert(v reflect.Value, to reflect.Type, allowed CategoryEnum) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Value{}, false
	}

	cat := Categorize(ConversionPair{FromReflectType(v.Type()), FromReflectType(to)})
	if cat == CategoryNone || cat&allowed == 0 {
		return reflect.Value{}, false
	}

	out := v.Convert(to)

	if cat == CategoryUnsafeNumber && !preserved(v, out) {
		return reflect.Value{}, false
	}

	return out, true
}

// preserved reports whether out holds the same number as v. The sign is
// checked by value and precision by converting out back to the type of v, so
// int64(1<<53+1) does not survive a trip through float64.
func preserved(v, out reflect.Value) bool {
	orig, _ := OfValue(v)
	conv, _ := OfValue(out)

	if !Equal(orig, conv) {
		return false
	}

	back, _ := OfValue(out.Convert(v.Type()))

	return Equal(orig, back)
}

// bits is the value width of a number kind; int and uint count as 64.
func bits(k KindEnum) int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	default:
		return 64
	}
}

// mantissa is the number of integer bits a float kind represents exactly.
func mantissa(k KindEnum) int {
	if k == KindFloat32 {
		return 24
	}

	return 53
}

func safeNumber(from, to KindEnum) bool {
	switch {
	case from == to:
		return true
	case to.IsFloat():
		if from.IsFloat() {
			return bits(from) <= bits(to)
		}

		return bits(from) <= mantissa(to)
	case from.IsFloat():
		return false
	case from.IsSigned() && to.IsUnsigned():
		return false
	case from.IsUnsigned() && to.IsSigned():
		return bits(from) < bits(to)
	default:
		return bits(from) <= bits(to)
	}
}
