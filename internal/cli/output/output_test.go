package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	oldStdout, oldStderr := Stdout, Stderr
	Stdout, Stderr = stdout, stderr
	t.Cleanup(func() { Stdout, Stderr = oldStdout, oldStderr })
	return stdout, stderr
}

func TestColorsDisabledByNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	assert.False(t, ColorsEnabled())
	assert.Equal(t, "done", Success("done"))
	assert.Equal(t, "title", Header("title"))
}

func TestPrintFunctions(t *testing.T) {
	stdout, stderr := captureOutput(t)

	PrintHeader("Deploying myapp")
	PrintStep("Applying service app-myapp")
	PrintSuccess("Service app-myapp deployed")
	PrintInfo("No images given")
	PrintWarning("Image not found in the registry")
	PrintError("failed")

	assert.Equal(t, "Deploying myapp\n"+
		"  -> Applying service app-myapp\n"+
		"+ Service app-myapp deployed\n"+
		"* No images given\n", stdout.String())
	assert.Equal(t, "! Image not found in the registry\n"+
		"x failed\n", stderr.String())
}

func TestPlural(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{count: 0, expected: "images"},
		{count: 1, expected: "image"},
		{count: 2, expected: "images"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Plural(tt.count, "image", "images"))
	}
}
