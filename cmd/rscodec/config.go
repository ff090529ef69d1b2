package main

import (
	"encoding/json"
	"os"
)

// CodecOptions describes a codec parameter set loadable from a JSON file via
// the "-c" flag, overriding whatever the command-line flags set — the same
// override relationship server/config.go's parseJSONConfig gives kcptun's
// session options.
type CodecOptions struct {
	N       int    `json:"n"`
	K       int    `json:"k"`
	Symsize int    `json:"symsize"`
	Gfpoly  int    `json:"gfpoly"`
	FCR     int    `json:"fcr"`
	Prim    int    `json:"prim"`
	Variant string `json:"variant"`
}

func parseJSONConfig(config *CodecOptions, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}
