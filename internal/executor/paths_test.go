package executor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func newTestExecutor(t *testing.T, root string) *Executor {
	t.Helper()
	e, err := New(root, 5*time.Second, 1<<20, nil)
	assert.NilError(t, err)
	return e
}

func TestValidatePathAccepts(t *testing.T) {
	root := t.TempDir()
	assert.NilError(t, os.MkdirAll(filepath.Join(root, "sub", "dir"), 0o755))
	assert.NilError(t, os.WriteFile(filepath.Join(root, "sub", "file.txt"), []byte("x"), 0o644))
	e := newTestExecutor(t, root)

	resolved, err := e.ValidatePath("sub/file.txt")
	assert.NilError(t, err)
	assert.Equal(t, resolved, filepath.Join(e.Root(), "sub", "file.txt"))

	resolved, err = e.ValidatePath(".")
	assert.NilError(t, err)
	assert.Equal(t, resolved, e.Root())

	resolved, err = e.ValidatePath("sub/dir")
	assert.NilError(t, err)
	assert.Equal(t, resolved, filepath.Join(e.Root(), "sub", "dir"))
}

func TestValidatePathRejectsTraversal(t *testing.T) {
	e := newTestExecutor(t, t.TempDir())

	for _, input := range []string{
		"..",
		"../etc/passwd",
		"sub/../../escape",
		"a/../../../b",
	} {
		_, err := e.ValidatePath(input)
		assert.ErrorIs(t, err, ErrPathTraversal)
	}
}

func TestValidatePathRejectsAbsolute(t *testing.T) {
	e := newTestExecutor(t, t.TempDir())
	_, err := e.ValidatePath("/etc/passwd")
	assert.ErrorIs(t, err, ErrPathTraversal)
}

func TestValidatePathRejectsEmpty(t *testing.T) {
	e := newTestExecutor(t, t.TempDir())
	_, err := e.ValidatePath("  ")
	assert.ErrorIs(t, err, ErrPathTraversal)
}

func TestValidatePathRejectsSymlinkEscape(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "root")
	outside := filepath.Join(base, "outside")
	assert.NilError(t, os.MkdirAll(root, 0o755))
	assert.NilError(t, os.MkdirAll(outside, 0o755))
	assert.NilError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("s"), 0o644))
	assert.NilError(t, os.Symlink(outside, filepath.Join(root, "link")))

	e := newTestExecutor(t, root)
	_, err := e.ValidatePath("link/secret.txt")
	assert.ErrorIs(t, err, ErrPathTraversal)
}

func TestValidatePathNonexistentLeafStaysInside(t *testing.T) {
	e := newTestExecutor(t, t.TempDir())
	resolved, err := e.ValidatePath("missing.txt")
	assert.NilError(t, err)
	assert.Equal(t, resolved, filepath.Join(e.Root(), "missing.txt"))
}
