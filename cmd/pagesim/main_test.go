package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"page-replacement-simulator/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const belady = "1 2 3 4 1 2 5 1 2 3 4 5"

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(strings.NewReader(stdin), &out).Run(append([]string{"pagesim"}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := runApp(t, "", "run", "--policy", "fifo", "--frames", "3", "--refs", belady)
	require.NoError(t, err)

	assert.Contains(t, out, "FIFO Simulation:")
	assert.Contains(t, out, "Step 1: [1]\n")
	assert.Contains(t, out, "Step 4: [2, 3, 4]\n")
	assert.Contains(t, out, "Step 12: [5, 3, 4]\n")
	assert.Contains(t, out, "Total Page Faults: 9")
}

func TestRun_ReferenceSources(t *testing.T) {
	fromArgs, err := runApp(t, "", "run", "-p", "3", "-f", "3", "1", "2", "3", "4", "1", "2", "5", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	assert.Contains(t, fromArgs, "Optimal Simulation:")
	assert.Contains(t, fromArgs, "Total Page Faults: 7")

	fromStdin, err := runApp(t, belady+"\n", "run", "--policy", "lru", "--frames", "3")
	require.NoError(t, err)
	assert.Contains(t, fromStdin, "Total Page Faults: 10")
}

func TestRun_DefaultsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frames: 4\npolicy: lru\n"), 0o600))

	out, err := runApp(t, "", "--config", path, "run", "--refs", "1 2 3 4 1 2 5 1 2 3 4 5")
	require.NoError(t, err)
	assert.Contains(t, out, "LRU Simulation:")
	assert.Contains(t, out, "Total Page Faults: 8")
}

func TestRun_Verbose(t *testing.T) {
	out, err := runApp(t, "", "run", "--policy", "lru", "--frames", "2", "--refs", "1,2,1,3", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, "Step 3: [1, 2]  page 1: hit\n")
	assert.Contains(t, out, "Step 4: [1, 3]  page 3: fault, evicted 2\n")
}

func TestRun_Errors(t *testing.T) {
	_, err := runApp(t, "", "run", "--frames", "0", "--refs", "1 2")
	assert.ErrorIs(t, err, engine.ErrInvalidConfiguration)

	_, err = runApp(t, "", "run", "--policy", "clock", "--frames", "2", "--refs", "1 2")
	assert.ErrorIs(t, err, engine.ErrInvalidConfiguration)

	_, err = runApp(t, "", "run", "--frames", "2", "--refs", "1 two")
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestCompare(t *testing.T) {
	out, err := runApp(t, "", "compare", "--frames", "3", "--refs", belady)
	require.NoError(t, err)

	assert.Contains(t, out, "FIFO       9  #########\n")
	assert.Contains(t, out, "LRU       10  ##########\n")
	assert.Contains(t, out, "Optimal    7  #######\n")
	assert.Contains(t, out, "Fewest faults: Optimal")
}

func TestCompare_SelectedPolicies(t *testing.T) {
	out, err := runApp(t, "", "compare", "--frames", "4", "--policies", "lfu,random", "--refs", "1 2 3 4")
	require.NoError(t, err)
	assert.Contains(t, out, "LFU")
	assert.Contains(t, out, "RANDOM")
	assert.NotContains(t, out, "FIFO")
}

func TestExplain(t *testing.T) {
	out, err := runApp(t, "", "explain", "lru")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "LRU (Least Recently Used)"))

	all, err := runApp(t, "", "explain")
	require.NoError(t, err)
	assert.Contains(t, all, "FIFO (First-In-First-Out)")
	assert.Contains(t, all, "Optimal Page Replacement")
}

func TestInteractive(t *testing.T) {
	out, err := runApp(t, belady+"\n3\n2\n", "interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter reference string (space separated): ")
	assert.Contains(t, out, "2. LRU\n")
	assert.Contains(t, out, "LRU Simulation:")
	assert.Contains(t, out, "Total Page Faults: 10")
}

func TestInteractive_InvalidChoice(t *testing.T) {
	_, err := runApp(t, "1 2\n2\n9\n", "interactive")
	assert.ErrorIs(t, err, engine.ErrInvalidConfiguration)

	_, err = runApp(t, "1 2\n", "interactive")
	assert.Error(t, err)
}

func TestCompare_RepeatedPolicyPrintedOnce(t *testing.T) {
	out, err := runApp(t, "", "compare", "--frames", "3", "--policies", "FIFO,fifo,1", "--refs", belady)
	require.NoError(t, err)
	// One chart row; the summary line names it again.
	assert.Equal(t, 1, strings.Count(out, "FIFO "))
	assert.Contains(t, out, "Fewest faults: FIFO\n")
}
