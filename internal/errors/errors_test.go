package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestProcessError_Error(t *testing.T) {
	bare := NewConfigError("width must be positive", nil)
	if bare.Error() != "config: width must be positive" {
		t.Errorf("Error() = %q", bare.Error())
	}

	wrapped := NewDecodeError("opening photo.jpg", stderrors.New("no such file"))
	if wrapped.Error() != "decode: opening photo.jpg: no such file" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := NewEncodeError("writing out.png", stderrors.New("disk full"))

	if !IsKind(err, KindEncode) {
		t.Error("IsKind(err, KindEncode) = false, want true")
	}
	if IsKind(err, KindDecode) {
		t.Error("IsKind(err, KindDecode) = true, want false")
	}
	if IsKind(nil, KindEncode) {
		t.Error("IsKind(nil, ...) = true, want false")
	}
	if IsKind(stderrors.New("plain"), KindEncode) {
		t.Error("IsKind(plain error, ...) = true, want false")
	}
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	inner := NewDimensionsError("zero-width source", nil)
	outer := fmt.Errorf("processing a.jpg: %w", inner)

	if !IsKind(outer, KindDimensions) {
		t.Error("kind not found through fmt.Errorf wrapping")
	}
	if KindOf(outer) != KindDimensions {
		t.Errorf("KindOf = %q, want %q", KindOf(outer), KindDimensions)
	}
}

func TestKindOf_Untagged(t *testing.T) {
	if got := KindOf(stderrors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
	if got := KindOf(nil); got != "" {
		t.Errorf("KindOf(nil) = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := NewCompositionError("placement exceeds canvas", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}
}
