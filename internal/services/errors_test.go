package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	err := Wrap(ErrExternalTool, "transcribe", "run whisperx", "process exited", errors.New("exit status 1"))
	if !errors.Is(err, ErrExternalTool) {
		t.Fatal("expected ErrExternalTool marker")
	}
	want := "external tool error: transcribe: run whisperx: process exited: exit status 1"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "sync", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatal("expected ErrTransient fallback")
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrValidation, "", "", "", nil)
	if err.Error() != "validation error: service failure" {
		t.Errorf("error = %q", err.Error())
	}
}
