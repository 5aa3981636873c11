// Package test contains helper functions for test functions. The helpers
// keep the tests themselves brief and uniform in how they report failure.
package test

import "testing"

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: %v does not equal %v", value, value, expectedValue)
	}
}

// ExpectInequality is used to test that one value is different to another.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: %v does equal %v", value, value, expectedValue)
	}
}

// ExpectSuccess is used to test that the value is true.
func ExpectSuccess(t *testing.T, value bool) {
	t.Helper()
	if !value {
		t.Errorf("expected success, got failure")
	}
}

// ExpectFailure is used to test that the value is false.
func ExpectFailure(t *testing.T, value bool) {
	t.Helper()
	if value {
		t.Errorf("expected failure, got success")
	}
}
