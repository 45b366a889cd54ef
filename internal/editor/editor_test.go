package editor

import "testing"

func TestDetect(t *testing.T) {
	t.Run("EDITOR takes precedence", func(t *testing.T) {
		t.Setenv("EDITOR", "my-editor")
		t.Setenv("VISUAL", "my-visual")

		if got := Detect(); got != "my-editor" {
			t.Errorf("Detect() = %q, want %q", got, "my-editor")
		}
	})

	t.Run("VISUAL is the fallback", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "my-visual")

		if got := Detect(); got != "my-visual" {
			t.Errorf("Detect() = %q, want %q", got, "my-visual")
		}
	})

	t.Run("defaults when environment is empty", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "")

		got := Detect()
		if got != "nano" && got != "vi" {
			t.Errorf("Detect() = %q, want nano or vi", got)
		}
	})
}
