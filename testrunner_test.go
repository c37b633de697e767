package overlay

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`nope`, "parse frame script"},
		{`{"steps": []}`, "no steps"},
		{`{"steps": [{"action": "click"}]}`, "unknown action"},
	}
	for _, tt := range tests {
		if _, err := LoadScript([]byte(tt.json)); err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("LoadScript(%s) err = %v, want containing %q", tt.json, err, tt.want)
		}
	}
}

func TestRunScript(t *testing.T) {
	l, _ := newTestLoop(t, DefaultConfig())
	l.ScreenshotDir = t.TempDir()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "caption", "text": "上传成功"},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after wait"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	drawn, err := l.RunScript(r, 100)
	if err != nil {
		t.Fatal(err)
	}
	if drawn != 5 {
		t.Errorf("drawn = %d, want 5", drawn)
	}
	if l.Caption().Text() != "上传成功" {
		t.Errorf("caption = %q", l.Caption().Text())
	}
	shots := l.Screenshots()
	if len(shots) != 1 || !strings.HasSuffix(shots[0], "_after_wait.png") {
		t.Errorf("screenshots = %v", shots)
	}
}

func TestRunScriptUnfinished(t *testing.T) {
	l, _ := newTestLoop(t, DefaultConfig())
	r, _ := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 50}]}`))
	if _, err := l.RunScript(r, 10); err == nil {
		t.Error("RunScript returned nil for an unfinished script")
	}
}
