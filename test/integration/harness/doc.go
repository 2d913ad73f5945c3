// Package harness provides utilities for integration testing the aura CLI.
// It handles binary compilation, environment isolation, command execution
// and a fake build service.
//
// Environment variables managed:
//   - AURA_HOME: Isolated per test (temp directory)
//   - AURA_DEBUG: Disabled to reduce noise
//   - AURA_API_URL: Points at the fake build service when one is attached
package harness
