package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	data := struct {
		Target string `json:"target"`
		Count  int    `json:"count"`
	}{Target: "/mnt/a&b", Count: 2}

	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, data))

	output := buf.String()
	assert.Contains(t, output, `"target": "/mnt/a&b"`)
	assert.Contains(t, output, `"count": 2`)
}

func TestPrintJSONValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, &Values{Header: "TARGET", Items: []string{"/run", "/"}}))
	assert.JSONEq(t, `["/run", "/"]`, buf.String())

	buf.Reset()
	require.NoError(t, PrintJSON(&buf, &Values{Header: "TARGET"}))
	assert.JSONEq(t, `[]`, buf.String())
}
