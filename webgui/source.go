package webgui

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultSourcePath is the generated file the firmware build compiles.
const DefaultSourcePath = "src/webgui.cpp"

var (
	assetArrayPattern = regexp.MustCompile(`GUI_HTML\[\] PROGMEM = \{([^}]+)\}`)
	assetSizePattern  = regexp.MustCompile(`GUI_HTML_SIZE = (\d+);`)
)

// Asset is the GUI_HTML declaration found in a source file.
type Asset struct {
	Literal string
	// DeclaredSize is -1 when GUI_HTML_SIZE is absent or unparsable.
	DeclaredSize int
}

func LocateAsset(src string) (*Asset, error) {
	m := assetArrayPattern.FindStringSubmatch(src)
	if m == nil {
		return nil, ErrMissingAsset
	}
	asset := &Asset{Literal: m[1], DeclaredSize: -1}
	if sm := assetSizePattern.FindStringSubmatch(src); sm != nil {
		if n, err := strconv.Atoi(sm[1]); err == nil {
			asset.DeclaredSize = n
		}
	}
	return asset, nil
}

// RenderSource returns the complete webgui.cpp for the compressed asset.
func RenderSource(data []byte) string {
	return fmt.Sprintf(sourceTemplate, len(data), EncodeByteArray(data, DefaultLineWidth))
}

const sourceTemplate = `#include "webgui.h"

#ifdef ENABLE_SERVER

#include <ESPAsyncWebServer.h>

const uint32_t GUI_HTML_SIZE = %d;
const uint8_t GUI_HTML[] PROGMEM = {%s};

void startGui(AsyncWebServerRequest *request)
{
  AsyncWebServerResponse *response = request->beginResponse(200, "text/html", GUI_HTML, GUI_HTML_SIZE);
  response->addHeader("Content-Encoding", "gzip");
  request->send(response);
}

#endif
`
