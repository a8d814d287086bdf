package batch

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Direction labels which way a batch is run. Both directions apply the same transform.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Suffix is appended to the base name of output files.
func (d Direction) Suffix() string {
	switch d {
	case Decrypt:
		return "_decrypted"
	default:
		return "_encrypted"
	}
}

// OutputPath derives the output file for input, placed in outDir.
// If outDir is empty, the output is placed next to the input.
func OutputPath(outDir, input string, d Direction) string {
	dir, name := filepath.Split(input)
	if len(outDir) > 0 {
		dir = outDir
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return filepath.Join(dir, base+d.Suffix()+ext)
}

// AlreadyProcessed reports whether input looks like the output of a previous run in the same Direction.
func AlreadyProcessed(input string, d Direction) bool {
	name := filepath.Base(input)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(base, d.Suffix())
}
