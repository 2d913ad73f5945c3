// Package integration_test provides end-to-end tests for aura CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated AURA_HOME and a fake build service.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/aura-ide/aura/test/integration/harness"
)

func TestMain(m *testing.M) {
	// Build binary once before all tests
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}
