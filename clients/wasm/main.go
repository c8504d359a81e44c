//go:build js && wasm

// GoChalk WASM — Client-side texture renderer.
// Compiled with: GOOS=js GOARCH=wasm go build -o gochalk.wasm ./clients/wasm/
package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/xob0t/GoChalk/pkg/chalkboard"
	"github.com/xob0t/GoChalk/pkg/generator"
	"github.com/xob0t/GoChalk/pkg/preset"
)

// JS callbacks may re-enter; generation runs one call at a time.
var renderMu sync.Mutex

func main() {
	fmt.Println("GoChalk WASM loaded")

	// Register JS-callable functions.
	js.Global().Set("goGenerateChalkboard", js.FuncOf(generateChalkboard))
	js.Global().Set("goDefaults", js.FuncOf(defaults))
	js.Global().Set("goPreset", js.FuncOf(presetSettings))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// goDefaults(): settings and slider limits as JSON.
func defaults(this js.Value, args []js.Value) interface{} {
	out, err := json.Marshal(map[string]any{
		"settings": chalkboard.DefaultSettings(),
		"limits":   chalkboard.DefaultLimits,
	})
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(string(out))
}

// goPreset(name): resolved settings of a built-in preset as JSON.
func presetSettings(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need preset name")
	}
	p, ok := preset.Lookup(args[0].String())
	if !ok {
		return js.ValueOf("error: unknown preset " + args[0].String())
	}
	out, err := json.Marshal(p.Resolve())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(string(out))
}

// goGenerateChalkboard(settingsJSON, size): render and return base64 PNG.
// size <= 0 renders at the preview size.
func generateChalkboard(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need settingsJSON")
	}

	settings := chalkboard.DefaultSettings()
	if s := args[0].String(); s != "" && s != "null" {
		if err := json.Unmarshal([]byte(s), &settings); err != nil {
			return js.ValueOf("error: parse settings: " + err.Error())
		}
	}

	size := settings.PreviewSize
	if len(args) > 1 && args[1].Type() == js.TypeNumber && args[1].Int() > 0 {
		size = args[1].Int()
	}
	if size <= 0 {
		return js.ValueOf(fmt.Sprintf("error: size %d must be positive", size))
	}

	renderMu.Lock()
	defer renderMu.Unlock()

	var buf bytes.Buffer
	cfg := generator.Config{Settings: settings, Width: size, Height: size}
	if err := generator.GenerateToWriter(&buf, ".png", cfg); err != nil {
		return js.ValueOf("error: render: " + err.Error())
	}

	return js.ValueOf(base64.StdEncoding.EncodeToString(buf.Bytes()))
}
