package classify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/cxxstd/pkg/classify"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunnerBatch(t *testing.T) {
	dir := t.TempDir()
	grid := writeFile(t, dir, "grid.cpp", `int operator[](int row, int col) const { return row*10+col; }`)
	plain := writeFile(t, dir, "plain.cpp", `int x = 0;`)
	missing := filepath.Join(dir, "missing.cpp")

	c := newClassifier(t, nil)
	runner := classify.NewRunner(c, 4)

	batch, err := runner.Run(context.Background(), []string{grid, plain, missing})
	require.NoError(t, err)

	assert.NotEmpty(t, batch.RunID)
	require.Len(t, batch.Files, 2)
	assert.Equal(t, grid, batch.Files[0].File)
	assert.Equal(t, plain, batch.Files[1].File)

	assert.Equal(t, 23, batch.Files[0].RequiredStandard)
	assert.Equal(t, c.Floor(), batch.Files[1].RequiredStandard)
	assert.Equal(t, 23, batch.RequiredStandard)
	assert.True(t, batch.Violates(20))
	assert.False(t, batch.Violates(23))

	require.Len(t, batch.Failures, 1)
	assert.Equal(t, missing, batch.Failures[0].File)
	assert.ErrorContains(t, batch.Failures[0].Err, "input unreadable")
}

func TestRunnerInputOrderOnlyAffectsBatchOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.cpp", `union U { int a = 42; float b; };`)
	b := writeFile(t, dir, "b.cpp", `struct S { static void operator()() {} };`)

	runner := classify.NewRunner(newClassifier(t, nil), 2)

	fwd, err := runner.Run(context.Background(), []string{a, b})
	require.NoError(t, err)
	rev, err := runner.Run(context.Background(), []string{b, a})
	require.NoError(t, err)

	require.Len(t, fwd.Files, 2)
	require.Len(t, rev.Files, 2)
	assert.Equal(t, fwd.Files[0].Findings, rev.Files[1].Findings)
	assert.Equal(t, fwd.Files[1].Findings, rev.Files[0].Findings)
	assert.Equal(t, fwd.RequiredStandard, rev.RequiredStandard)
}

func TestRunnerEmptyBatch(t *testing.T) {
	runner := classify.NewRunner(newClassifier(t, nil), 1)
	batch, err := runner.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, batch.Files)
	assert.Empty(t, batch.Failures)
	assert.Equal(t, 23, batch.RequiredStandard)
	assert.False(t, batch.Violates(23))
}

func TestRunnerCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.cpp", `int x;`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := classify.NewRunner(newClassifier(t, nil), 1)
	_, err := runner.Run(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerDefaultWorkerCount(t *testing.T) {
	runner := classify.NewRunner(newClassifier(t, nil), 0)
	batch, err := runner.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, batch)
}
