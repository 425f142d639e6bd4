//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the phoneword binary
func Build() error {
	return sh.RunV("go", "build", "-o", "phoneword", "./cmd/phoneword")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs phoneword into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/phoneword")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("phoneword")
}
