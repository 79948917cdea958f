package audio

import "testing"

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayChime()
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Initialized() = true without Initialize")
	}
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization fails on machines without an audio device
	if err := sm.Initialize(); err != nil {
		t.Logf("sound initialization failed: %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize = %v, want no-op", err)
	}
	sm.PlayChime()
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Initialized() = true after Cleanup")
	}

	// Cues after cleanup are dropped
	sm.PlayChime()
}
