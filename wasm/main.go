//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("ScribeNewChecker", js.FuncOf(newChecker))
	js.Global().Set("ScribeCheck", js.FuncOf(check))
	js.Global().Set("ScribeSuggest", js.FuncOf(suggest))
	js.Global().Set("ScribeAddWord", js.FuncOf(addWord))
	js.Global().Set("ScribeWords", js.FuncOf(listWords))
	js.Global().Set("ScribeCloseChecker", js.FuncOf(closeChecker))
	js.Global().Set("ScribeGetIgnoreRules", js.FuncOf(getIgnoreRules))

	// Keep WASM running
	<-make(chan struct{})
}
