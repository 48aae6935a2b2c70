package util

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func AssertExpected(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("error, expected: %v, got: %v (-expected +got):\n%s", expected, got, diff)
		return false
	}
	return true
}

func AssertTrue(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

func AssertNoError(t *testing.T, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("error, expected no error, got: %v", err)
		return false
	}
	return true
}

// AssertErrorIs checks that err wraps target
func AssertErrorIs(t *testing.T, target, err error) bool {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error, expected error wrapping %v, got: %v", target, err)
		return false
	}
	return true
}

func AssertNil(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, nil, got)
}

func AssertNotNil(t *testing.T, got interface{}) bool {
	t.Helper()
	if got == nil {
		t.Errorf("error, expected non-nil value")
		return false
	}
	return true
}
