//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "totaltranslate"

// Default target to run when none is specified
var Default = Build

// Build compiles the command line binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/totaltranslate")
}

// Lambda compiles the function for the provided.al2023 runtime
func Lambda() error {
	env := map[string]string{"GOOS": "linux", "GOARCH": "arm64", "CGO_ENABLED": "0"}
	return sh.RunWithV(env, "go", "build", "-tags", "lambda.norpc", "-o", "bootstrap", "./cmd/lambda")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install puts the binary into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/totaltranslate")
}

// Clean removes build artifacts
func Clean() error {
	for _, f := range []string{binary, "bootstrap"} {
		if err := os.RemoveAll(f); err != nil {
			return err
		}
	}
	return nil
}
