package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

// CaptureOutput returns everything fn writes to stdout.
// Commands print through fmt and the OutputFormatter, both of which write to os.Stdout.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	outC := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()
	_ = w.Close()

	return <-outC
}

// ExecuteCommand runs root with args under ctx and returns its stdout.
// Usage and error printing are silenced so tests assert on the returned error.
func ExecuteCommand(t *testing.T, ctx context.Context, root *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var executeErr error
	output := CaptureOutput(t, func() {
		executeErr = root.ExecuteContext(ctx)
	})
	return output, executeErr
}

// ParseJSON decodes the {"success": ..., "data"|"error": ...} envelope printed with --json
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// JSONData returns the "data" object of a successful --json response
func JSONData(t *testing.T, output string) map[string]any {
	t.Helper()

	result := ParseJSON(t, output)
	if success, _ := result["success"].(bool); !success {
		t.Fatalf("Expected a successful response, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected an object in data, got: %s", output)
	}
	return data
}
