// Package test contains helper functions for the unit tests of the other
// packages in the module.
package test

import "testing"

// ExpectEquality compares value with expected and fails the test if they
// differ. Both arguments must be of the same comparable type.
func ExpectEquality[T comparable](t *testing.T, value T, expected T) bool {
	t.Helper()
	if value != expected {
		t.Errorf("equality test of type %T failed: %v does not equal %v", value, value, expected)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, value T, unexpected T) bool {
	t.Helper()
	if value == unexpected {
		t.Errorf("inequality test of type %T failed: %v equals %v", value, value, unexpected)
		return false
	}
	return true
}

// ExpectSliceEquality compares two slices element by element.
func ExpectSliceEquality[T comparable](t *testing.T, value []T, expected []T) bool {
	t.Helper()
	if len(value) != len(expected) {
		t.Errorf("slice length %d does not equal %d (%v vs %v)", len(value), len(expected), value, expected)
		return false
	}
	for i := range value {
		if value[i] != expected[i] {
			t.Errorf("slice element %d: %v does not equal %v (%v vs %v)", i, value[i], expected[i], value, expected)
			return false
		}
	}
	return true
}

// ExpectedFailure tests argument v for a failure condition suitable for its
// type:
//
//	bool  -> bool == false
//	error -> error != nil
//
// If v is nil then the test will fail.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}

	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}

	case nil:
		t.Errorf("expected failure (nil)")
		return false

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectedSuccess tests argument v for a success condition suitable for its
// type:
//
//	bool  -> bool == true
//	error -> error == nil
//
// If v is nil then the test will succeed.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}

	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}
