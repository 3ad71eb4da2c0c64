// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cellmul/matrix"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cellmul.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestRun_PrintsOperandsAndProduct(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-seed", "1", "-strategy", "per-cell"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	s := out.String()
	iA := strings.Index(s, "Matrix A")
	iB := strings.Index(s, "Matrix B")
	iC := strings.Index(s, "Matrix C (A x B = C)")
	require.True(t, iA >= 0 && iA < iB && iB < iC, s)
}

func TestRun_FixedOperands(t *testing.T) {
	path := writeConfig(t, `
dims: {min: 1, max: 1}
values: {min: 3, max: 3}
log: {level: error}
`)
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"-config", path}, &out, &errOut), errOut.String())

	green := matrix.Style{Color: matrix.ColorGreen}
	require.Contains(t, out.String(), green.Paint("9"))
	require.Contains(t, out.String(), matrix.Style{Color: matrix.ColorCyan}.Paint("Matrix A"))
	require.Empty(t, errOut.String())
}

func TestRun_Deterministic(t *testing.T) {
	var first, second, errOut bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"-seed", "99", "-workers", "2"}, &first, &errOut))
	require.Equal(t, 0, run(context.Background(), []string{"-seed", "99", "-strategy", "per-cell"}, &second, &errOut))
	require.Equal(t, first.String(), second.String())
}

func TestRun_DebugLogsStates(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"-seed", "5", "-debug"}, &out, &errOut))
	require.Contains(t, errOut.String(), "state=AwaitingCompletion")
	require.Contains(t, errOut.String(), "multiplication complete")
}

func TestRun_UsageErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 2, run(context.Background(), []string{"-nope"}, &out, &errOut))
	require.Equal(t, 2, run(context.Background(), []string{"-strategy", "tiles"}, &out, &errOut))
	require.Equal(t, 2, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out, &errOut))
	require.Equal(t, 2, run(context.Background(), []string{"-config", writeConfig(t, "dims: {min: 3, max: 1}")}, &out, &errOut))
}

func TestRun_ProfileStepFailure(t *testing.T) {
	path := writeConfig(t, "profile: {policy: other, priority: 9}\n")
	var out, errOut bytes.Buffer
	require.Equal(t, 1, run(context.Background(), []string{"-config", path}, &out, &errOut))
	require.Contains(t, errOut.String(), "priority step")
	require.Empty(t, out.String())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	require.Equal(t, 1, run(ctx, []string{"-seed", "3"}, &out, &errOut))
	require.Contains(t, errOut.String(), "context canceled")
}
