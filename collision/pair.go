package collision

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnclassifiable is returned when an instance pair cannot be sorted into
// the slots of a TypePair.
var ErrUnclassifiable = errors.New("collision: instances do not match type pair")

// TypePair names the two participant types of a collision test. Equality is
// order-independent: (A, B) equals (B, A). The declared order is kept so that
// instance pairs can be handed to listeners in the order they asked for.
type TypePair struct {
	first  reflect.Type
	second reflect.Type
}

// PairOf returns the TypePair declared as (A, B).
func PairOf[A, B any]() TypePair {
	return NewTypePair(reflect.TypeFor[A](), reflect.TypeFor[B]())
}

// NewTypePair builds a TypePair from two runtime types.
// Panics if either type is nil, an interface type, or if both are the same
// type; such a pair could not classify an instance unambiguously.
func NewTypePair(first, second reflect.Type) TypePair {
	if first == nil || second == nil {
		panic("collision: type pair requires two non-nil types")
	}
	if first.Kind() == reflect.Interface || second.Kind() == reflect.Interface {
		panic(fmt.Sprintf("collision: type pair (%v, %v) must name concrete types", first, second))
	}
	if first == second {
		panic(fmt.Sprintf("collision: type pair (%v, %v) is ambiguous", first, second))
	}
	return TypePair{first: first, second: second}
}

// First returns the type declared in the first slot.
func (p TypePair) First() reflect.Type { return p.first }

// Second returns the type declared in the second slot.
func (p TypePair) Second() reflect.Type { return p.second }

// Swap returns the same pair declared in the opposite order.
func (p TypePair) Swap() TypePair {
	return TypePair{first: p.second, second: p.first}
}

// IsBackwardsTo reports whether other names the same two types in the
// opposite order.
func (p TypePair) IsBackwardsTo(other TypePair) bool {
	return p.first == other.second && p.second == other.first
}

// Equal reports whether p and other name the same two types in either order.
func (p TypePair) Equal(other TypePair) bool {
	return (p.first == other.first && p.second == other.second) || p.IsBackwardsTo(other)
}

// Matches reports whether the runtime types of a and b, in either order, are
// the two types of this pair.
func (p TypePair) Matches(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	return (ta == p.first && tb == p.second) || (ta == p.second && tb == p.first)
}

// Classify orders a and b so that First holds the instance of the first
// declared type. Exact runtime type equality is required.
func (p TypePair) Classify(a, b any) (InstancePair, error) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	switch {
	case ta == p.first && tb == p.second:
		return InstancePair{First: a, Second: b, Pair: p}, nil
	case tb == p.first && ta == p.second:
		return InstancePair{First: b, Second: a, Pair: p}, nil
	default:
		return InstancePair{}, fmt.Errorf("classify (%v, %v) against %v: %w", ta, tb, p, ErrUnclassifiable)
	}
}

func (p TypePair) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// InstancePair holds two instances classified against Pair: First is of
// Pair.First() and Second of Pair.Second().
type InstancePair struct {
	First  any
	Second any
	Pair   TypePair
}

// pairKey is the ordered map key used to index buckets.
type pairKey struct {
	a, b reflect.Type
}
