package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"indicators/internal/indicator"
)

func TestPrintResponse_Success(t *testing.T) {
	var buf bytes.Buffer
	err := printResponse(&buf, indicator.Response{
		StatusCode: 200,
		Headers:    map[string]string{"Access-Control-Allow-Origin": "*"},
		Body:       `[]`,
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, float64(200), got["statusCode"])
	require.Equal(t, "[]", got["body"])
	require.Equal(t, map[string]any{"Access-Control-Allow-Origin": "*"}, got["headers"])
}

func TestPrintResponse_FailureStatus(t *testing.T) {
	var buf bytes.Buffer
	err := printResponse(&buf, indicator.Response{StatusCode: 500, Body: `{"error":"boom"}`})
	require.ErrorIs(t, err, errInvocationFailed)
	require.Contains(t, buf.String(), `"statusCode": 500`)
}

func TestInvokeCmd_RejectsUnknownOperation(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"invoke", "euro"})
	root.SetOut(new(bytes.Buffer))
	require.Error(t, root.Execute())
}

func TestInvokeCmd_RequiresOneArg(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"invoke"})
	root.SetOut(new(bytes.Buffer))
	require.Error(t, root.Execute())
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "invoke", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}
}
