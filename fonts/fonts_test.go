package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Bold, Popup, Title} {
		if name.Get() == nil {
			t.Fatalf("expected face for %s", name)
		}
	}
	if Width(Bold.Get(), "100") <= 0 {
		t.Fatal("expected a positive text width")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("junk", []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
