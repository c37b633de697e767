package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/overlay"
)

func TestRunHeadlessWritesScreenshot(t *testing.T) {
	out := t.TempDir()
	if err := runHeadless(overlay.DefaultConfig(), "", 3, out, 1); err != nil {
		t.Fatal(err)
	}
	files, _ := filepath.Glob(filepath.Join(out, "*_final.png"))
	if len(files) != 1 {
		t.Errorf("screenshots = %v, want one *_final.png", files)
	}
}

func TestRunHeadlessScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "script.json")
	data := `{"steps": [{"action": "wait", "frames": 2}, {"action": "screenshot", "label": "two"}]}`
	if err := os.WriteFile(script, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runHeadless(overlay.DefaultConfig(), script, 10, dir, 2); err != nil {
		t.Fatal(err)
	}
	files, _ := filepath.Glob(filepath.Join(dir, "*_two.png"))
	if len(files) != 1 {
		t.Errorf("screenshots = %v", files)
	}
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "star.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 0, 255})
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	dst := filepath.Join(dir, "star_gen.go")
	if err := runImport(src, "", "art", 4, dst); err != nil {
		t.Fatal(err)
	}
	gen, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(gen), "var starPix = []uint16{") {
		t.Errorf("generated source:\n%s", gen)
	}
}

func TestEnsureHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := ensureHostKey(path); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(path)
	if !strings.Contains(string(first), "PRIVATE KEY") {
		t.Error("host key is not a PEM private key")
	}
	if err := ensureHostKey(path); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)
	if string(first) != string(second) {
		t.Error("existing host key was replaced")
	}
}
