package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	origOut, origErr := Stdout, Stderr
	origNoColor := color.NoColor
	color.NoColor = true
	Stdout, Stderr = outBuf, errBuf
	t.Cleanup(func() {
		Stdout, Stderr = origOut, origErr
		color.NoColor = origNoColor
	})
	return outBuf, errBuf
}

func TestPrintln_GoesToStdout(t *testing.T) {
	out, errOut := captureOutput(t)

	Println("https://console.aws.amazon.com/ec2/home")

	assert.Equal(t, "https://console.aws.amazon.com/ec2/home\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestDecoratedMessages_GoToStderr(t *testing.T) {
	out, errOut := captureOutput(t)

	Successf("resolved %d links", 3)
	Infof("reading from stdin")
	Errorf("bad ARN: %s", "foo")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "✓ resolved 3 links")
	assert.Contains(t, errOut.String(), "→ reading from stdin")
	assert.Contains(t, errOut.String(), "✗ bad ARN: foo")
}

func TestKeyValue(t *testing.T) {
	out, _ := captureOutput(t)

	KeyValue("Service", "s3")

	assert.Equal(t, "  Service: s3\n", out.String())
}
