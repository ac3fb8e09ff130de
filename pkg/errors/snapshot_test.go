package errors

import "testing"

func TestSnapshot_StringRendersEachFrame(t *testing.T) {
	snap := Snapshot{Frames: []FrameSnapshot{
		{NextInstruction: 1, InstructionLen: 3, OperandStack: []string{"id-1"}, Locals: map[string]string{"x": "id-2"}, Resume: []string{"exception"}},
		{NextInstruction: 0, InstructionLen: 0},
	}}
	got := snap.String()
	if got == "" {
		t.Fatal("expected a non-empty rendering")
	}
	if !contains(got, "frame stack (2 frames)") {
		t.Errorf("expected the frame count header, got %q", got)
	}
	if !contains(got, "#0") || !contains(got, "#1") {
		t.Errorf("expected both frames to be indexed, got %q", got)
	}
}

func TestSnapshot_StringEmpty(t *testing.T) {
	snap := Snapshot{}
	got := snap.String()
	if !contains(got, "0 frames") {
		t.Errorf("expected an empty snapshot to report 0 frames, got %q", got)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
