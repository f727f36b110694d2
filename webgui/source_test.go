package webgui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLocateAsset(t *testing.T) {
	src := "const uint32_t GUI_HTML_SIZE = 4;\nconst uint8_t GUI_HTML[] PROGMEM = {31,139,\n8,0};\n"
	asset, err := LocateAsset(src)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if asset.Literal != "31,139,\n8,0" {
		t.Fatalf("unexpected literal: %q", asset.Literal)
	}
	if asset.DeclaredSize != 4 {
		t.Fatalf("unexpected declared size: %d", asset.DeclaredSize)
	}
}

func TestLocateAssetWithoutSize(t *testing.T) {
	asset, err := LocateAsset("const uint8_t GUI_HTML[] PROGMEM = {1,2};")
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if asset.DeclaredSize != -1 {
		t.Fatalf("expected unknown declared size, got %d", asset.DeclaredSize)
	}
}

func TestLocateAssetMissing(t *testing.T) {
	for _, src := range []string{"", "int main() { return 0; }", "const uint8_t OTHER[] PROGMEM = {1,2};"} {
		if _, err := LocateAsset(src); !errors.Is(err, ErrMissingAsset) {
			t.Fatalf("%q: expected ErrMissingAsset, got %v", src, err)
		}
	}
}

func TestRenderSourceRoundTrip(t *testing.T) {
	data := make([]byte, 75)
	for i := range data {
		data[i] = byte(255 - i)
	}
	src := RenderSource(data)
	if !strings.Contains(src, "const uint32_t GUI_HTML_SIZE = 75;") {
		t.Fatalf("size constant missing:\n%s", src)
	}
	if !strings.Contains(src, `response->addHeader("Content-Encoding", "gzip");`) {
		t.Fatalf("gzip header missing:\n%s", src)
	}

	asset, err := LocateAsset(src)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	got, err := DecodeByteArray(asset.Literal)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(got, data) || asset.DeclaredSize != len(data) {
		t.Fatalf("rendered source does not round trip: size=%d", asset.DeclaredSize)
	}
}
