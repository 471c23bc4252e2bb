package common

import (
	"errors"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	all := []error{ErrorNotFound, ErrNotLoggedIn, ErrSessionExpired, ErrInvalidTokenExp, ErrPasswordMismatch, ErrNotOwner}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("errors %d and %d must not match: %v / %v", i, j, a, b)
			}
		}
	}
}
