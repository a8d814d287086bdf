package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	pixmaskVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	pixmask := NewAppBuild("pixmask", "cmd/pixmask", pixmaskVersion)
	pixmask.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", pixmaskVersion).
			CgoEnabled(false)
	})
	for _, variant := range [][2]string{
		{"windows", "amd64"},
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
	} {
		pixmask.Variant(variant[0], variant[1])
	}
	b.ImportApp(pixmask)

	b.Execute()
}
