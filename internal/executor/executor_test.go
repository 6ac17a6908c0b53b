package executor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/protocol"
)

func TestExecuteWhitelistedCommand(t *testing.T) {
	root := t.TempDir()
	assert.NilError(t, os.WriteFile(filepath.Join(root, "hello.txt"), []byte("hello\nworld\n"), 0o644))
	e := newTestExecutor(t, root)

	res := e.Execute(context.Background(), []string{"cat", filepath.Join(e.Root(), "hello.txt")})
	assert.Equal(t, res.Success, true)
	assert.Equal(t, res.ReturnCode, 0)
	assert.Equal(t, res.Stdout, "hello\nworld\n")
	assert.Equal(t, res.Error, "")
}

func TestExecuteRejectsNonWhitelisted(t *testing.T) {
	e := newTestExecutor(t, t.TempDir())

	for _, argv := range [][]string{
		{"rm", "-rf", "/"},
		{"chmod", "777", "x"},
		{"curl", "http://example.com"},
		{"bash", "-c", "ls"},
		{},
		{""},
	} {
		res := e.Execute(context.Background(), argv)
		assert.Equal(t, res.Success, false)
		assert.Equal(t, res.Error, protocol.TagCommandNotAllowed)
		assert.Equal(t, res.ReturnCode, -1)
	}
}

func TestExecuteNonZeroExit(t *testing.T) {
	e := newTestExecutor(t, t.TempDir())

	res := e.Execute(context.Background(), []string{"cat", filepath.Join(e.Root(), "absent.txt")})
	assert.Equal(t, res.Success, false)
	assert.Equal(t, res.Error, protocol.TagExecutionFailure)
	assert.Assert(t, res.ReturnCode != 0)
	assert.Assert(t, res.Stderr != "")
}

func TestExecuteTimeout(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "watched.txt")
	assert.NilError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	e, err := New(root, 100*time.Millisecond, 1<<20, nil)
	assert.NilError(t, err)

	start := time.Now()
	res := e.Execute(context.Background(), []string{"tail", "-f", path})
	assert.Assert(t, time.Since(start) < 5*time.Second)
	assert.Equal(t, res.Success, false)
	assert.Equal(t, res.Error, protocol.TagCommandTimeout)
}

func TestExecuteOutputCap(t *testing.T) {
	root := t.TempDir()
	big := strings.Repeat("0123456789\n", 1000)
	path := filepath.Join(root, "big.txt")
	assert.NilError(t, os.WriteFile(path, []byte(big), 0o644))

	e, err := New(root, 5*time.Second, 128, nil)
	assert.NilError(t, err)

	res := e.Execute(context.Background(), []string{"cat", path})
	assert.Equal(t, len(res.Stdout), 128)
	assert.Equal(t, res.Success, false)
	assert.Equal(t, res.Error, protocol.TagOutputTooLarge)
}

func TestNewRejectsBadRoot(t *testing.T) {
	_, err := New("", time.Second, 1024, nil)
	assert.ErrorContains(t, err, "root is empty")

	_, err = New(filepath.Join(t.TempDir(), "missing"), time.Second, 1024, nil)
	assert.ErrorContains(t, err, "resolve root")

	file := filepath.Join(t.TempDir(), "file")
	assert.NilError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = New(file, time.Second, 1024, nil)
	assert.ErrorContains(t, err, "not a directory")
}

func TestValidateCommand(t *testing.T) {
	e := newTestExecutor(t, t.TempDir())
	assert.NilError(t, e.ValidateCommand([]string{"ls", "-la"}))
	assert.NilError(t, e.ValidateCommand([]string{"grep", "-rn", "x", "."}))
	assert.ErrorIs(t, e.ValidateCommand([]string{"mv", "a", "b"}), ErrCommandNotAllowed)
	assert.ErrorIs(t, e.ValidateCommand(nil), ErrCommandNotAllowed)
}
