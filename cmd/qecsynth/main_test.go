package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squid2010/qecsynth/circuit"
)

func executeSplit(args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	out, _, err := executeSplit(append(args, "--log-level", "disabled")...)
	return out, err
}

func TestTable(t *testing.T) {
	out, err := execute(t, "table", "--code", "five")
	require.NoError(t, err)
	assert.Contains(t, out, "five-qubit: k=4\n")
	assert.Contains(t, out, "g0 XZZXI\n")
	assert.Contains(t, out, " 13 1101 Y stab[0]\n")
	assert.Contains(t, out, "  2 0010 Z log_qubit[0]\n")
}

func TestSynthQASM(t *testing.T) {
	out, err := execute(t, "synth", "--code", "steane", "--shape", "ghz", "--n", "3", "--format", "qasm")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "OPENQASM 2.0;\n"))
	assert.Contains(t, out, "creg measured_output[3];\n")
}

func TestSynthGobFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.gob")
	_, err := execute(t, "synth", "--code", "shor", "--format", "gob", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	c, err := circuit.Deserialize(data)
	require.NoError(t, err)
	_, ok := c.Register("measured_output")
	assert.True(t, ok)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code: steane\nshape: one-qubit\nformat: cbor\n"), 0644))
	out, err := execute(t, "synth", "--config", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "stab_0")
	assert.NotContains(t, out, "log_qubit_1")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--code", "five", "--shape", "bell", "--shots", "16", "--workers", "2")
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasPrefix(line, "00 ") || strings.HasPrefix(line, "11 "), line)
	}
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, "synth", "--shape", "ghz", "--n", "11")
	assert.Error(t, err)
	_, err = execute(t, "synth", "--code", "surface")
	assert.Error(t, err)
	_, err = execute(t, "synth", "--shape", "w")
	assert.Error(t, err)
	_, err = execute(t, "run", "--code", "shor", "--shape", "ghz", "--n", "4")
	assert.Error(t, err)
}

func TestLogsGoToStderr(t *testing.T) {
	out, logs, err := executeSplit("synth", "--code", "five", "--format", "qasm", "--log-level", "info")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "OPENQASM 2.0;\n"))
	assert.NotContains(t, out, "synthesized")
	assert.Contains(t, logs, "synthesized")

	_, logs, err = executeSplit("synth", "--code", "five", "--log-level", "warn")
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, _, err = executeSplit("synth", "--log-level", "loud")
	assert.Error(t, err)
}

func TestUnencodedShape(t *testing.T) {
	out, err := execute(t, "synth", "--shape", "unencoded", "--n", "4", "--format", "qasm")
	require.NoError(t, err)
	assert.Contains(t, out, "qreg q[4];\n")
	assert.NotContains(t, out, "if(")

	out, err = execute(t, "run", "--shape", "unencoded-ghz", "--n", "3", "--shots", "16")
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasPrefix(line, "000 ") || strings.HasPrefix(line, "111 "), line)
	}
}
