package makequote

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

// TestLetterAvatarRender tests the generated letter avatar end to end.
func TestLetterAvatarRender(t *testing.T) {
	p := newTestProducer(t, WithOutputSize(960, 540), WithFontScale(60))
	cfg := mustQuoteConfig(t, "somebody", "generated avatar", LetterAvatar(13, "ksyx"))

	data, err := p.MakeImage(cfg)
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}
	imgCfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if imgCfg.Width != 960 || imgCfg.Height != 540 {
		t.Errorf("output %dx%d, want 960x540", imgCfg.Width, imgCfg.Height)
	}
}

// TestLetterAvatarDeterministic tests that the same id and name always
// produce the same image, and a different id a different one.
func TestLetterAvatarDeterministic(t *testing.T) {
	p := newTestProducer(t, WithOutputSize(480, 270), WithFontScale(30))

	render := func(id uint64) []byte {
		t.Helper()
		cfg := mustQuoteConfig(t, "somebody", "", LetterAvatar(id, "ksyx"))
		data, err := p.MakeImage(cfg)
		if err != nil {
			t.Fatalf("MakeImage: %v", err)
		}
		return data
	}

	if !bytes.Equal(render(3), render(3)) {
		t.Error("same id rendered differently")
	}
	if bytes.Equal(render(3), render(4)) {
		t.Error("different ids rendered identically; palette not applied")
	}
}

// TestLetterAvatarPaletteWraps tests that ids beyond the palette length
// reuse colors cyclically.
func TestLetterAvatarPaletteWraps(t *testing.T) {
	a := LetterAvatar(2, "n").(*letterAvatar)
	b := LetterAvatar(2+uint64(len(letterPalette)), "n").(*letterAvatar)
	if letterPalette[a.id%uint64(len(letterPalette))] != letterPalette[b.id%uint64(len(letterPalette))] {
		t.Error("palette did not wrap")
	}
}

// TestLetterAvatarEmptyName tests rejection of a name with no letters.
func TestLetterAvatarEmptyName(t *testing.T) {
	p := newTestProducer(t, WithOutputSize(480, 270))
	cfg := mustQuoteConfig(t, "somebody", "quote", LetterAvatar(1, ""))

	if _, err := p.MakeImage(cfg); !errors.Is(err, ErrInvalidAvatar) {
		t.Errorf("got %v, want ErrInvalidAvatar", err)
	}
}

// TestDecodeAvatarFormats tests decoding across registered formats.
func TestDecodeAvatarFormats(t *testing.T) {
	img, err := decodeAvatar(bytes.NewReader(testAvatarPNG(t)))
	if err != nil {
		t.Fatalf("decodeAvatar: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("decoded %dx%d, want 64x64", b.Dx(), b.Dy())
	}

	if _, err := decodeAvatar(bytes.NewReader([]byte{0x00, 0x01})); !errors.Is(err, ErrInvalidAvatar) {
		t.Errorf("garbage input: got %v, want ErrInvalidAvatar", err)
	}
}
