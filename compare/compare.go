// Package compare provides total-order comparators for the container
// packages: natural ordering, reversal, locale-aware string collation and
// reflection-based default resolution.
package compare

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Func is a total-order comparator. It returns a negative number when a
// sorts before b, zero when they are equal and a positive number when a
// sorts after b. A Func must stay transitive, antisymmetric and stable
// under repeated calls for as long as it backs a sort-order invariant.
type Func[T any] func(a, b T) int

// Natural returns the comparator for T's natural ordering.
func Natural[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// Reverse returns a comparator that inverts f's ordering.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Collated returns a locale-aware string comparator for the given language
// tag, as opposed to raw code-unit ordering.
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	c := collate.New(tag, opts...)
	return func(a, b string) int {
		return c.CompareString(a, b)
	}
}

// ConfigurationError indicates that no comparator can be derived for a type.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Default resolves the default comparator for T: natural ordering for
// numeric kinds, raw or collated ordering for string kinds. Passing a
// non-nil collator switches string comparison from code-unit order to the
// collator's locale order. Types with neither numeric nor string nature
// yield a *ConfigurationError.
func Default[T any](collator *collate.Collator) (Func[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case reflect.String:
		if collator != nil {
			return func(a, b T) int {
				return collator.CompareString(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
			}, nil
		}
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("no default comparator for type %s", t)}
	}
}
