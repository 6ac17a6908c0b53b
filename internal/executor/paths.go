package executor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathTraversal indicates a path argument escapes the sandbox root.
var ErrPathTraversal = errors.New("path escapes sandbox root")

// ValidatePath resolves relative against the sandbox root and returns the
// canonical absolute path. Absolute inputs and inputs with ".." segments are
// rejected outright; the resolved result must be a descendant of the root.
func (e *Executor) ValidatePath(relative string) (string, error) {
	if strings.TrimSpace(relative) == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathTraversal)
	}
	if filepath.IsAbs(relative) {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relative)
	}
	for _, segment := range strings.Split(filepath.ToSlash(relative), "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: parent segment in %q", ErrPathTraversal, relative)
		}
	}

	joined := filepath.Clean(filepath.Join(e.root, relative))

	resolved, err := resolveExisting(joined)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", relative, err)
	}
	if !isDescendant(resolved, e.root) {
		return "", fmt.Errorf("%w: %q resolves outside root", ErrPathTraversal, relative)
	}
	return resolved, nil
}

// resolveExisting follows symlinks for the path, or for its nearest existing
// parent when the leaf does not exist yet.
func resolveExisting(path string) (string, error) {
	real, err := filepath.EvalSymlinks(path)
	if err == nil {
		return filepath.Clean(real), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	dir := filepath.Dir(path)
	for {
		realDir, dirErr := filepath.EvalSymlinks(dir)
		if dirErr == nil {
			leaf := strings.TrimPrefix(path, dir)
			leaf = strings.TrimPrefix(leaf, string(filepath.Separator))
			return filepath.Clean(filepath.Join(realDir, leaf)), nil
		}
		if !errors.Is(dirErr, os.ErrNotExist) {
			return "", dirErr
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no existing parent for %q", path)
		}
		dir = parent
	}
}

func isDescendant(path, root string) bool {
	path = filepath.Clean(path)
	root = filepath.Clean(root)
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}
