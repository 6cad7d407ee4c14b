//go:build mage

// Package main contains Mage build targets for paperwatch developer tooling.
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "paperwatch"
	cmdPkg  = "./cmd/paperwatch"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binDir, binName), cmdPkg)
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Generate builds the binary and runs one digest pass, writing index.html
// into the repository root.
func Generate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "run")
}

// Clean removes build artifacts and the generated page.
func Clean() error {
	if err := os.RemoveAll(binDir); err != nil {
		return err
	}
	if err := os.Remove("index.html"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
