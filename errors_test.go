package swr

import "testing"

func TestErrors_AreDistinctSentinels(t *testing.T) {
	if ErrInvalidDimensions == nil || ErrNoFrame == nil {
		t.Fatal("sentinel errors must not be nil")
	}
	if ErrInvalidDimensions == ErrNoFrame {
		t.Fatal("sentinel errors must be distinct")
	}
}
