package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
)

// Fingerprint summarizes the state of the directory subtree rooted at scope:
// a hash over every entry's path, size, and modification time. Two subtrees
// with identical fingerprints are treated as unchanged for cached searches.
func Fingerprint(scope string) (string, error) {
	hasher := sha256.New()
	err := filepath.WalkDir(scope, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries still contribute their path so that
			// permission flips invalidate the fingerprint.
			fmt.Fprintf(hasher, "!%s\n", path)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			fmt.Fprintf(hasher, "!%s\n", path)
			return nil
		}
		hasher.Write([]byte(path))
		hasher.Write([]byte{0})
		hasher.Write([]byte(strconv.FormatInt(info.Size(), 10)))
		hasher.Write([]byte{0})
		hasher.Write([]byte(strconv.FormatInt(info.ModTime().UnixNano(), 10)))
		hasher.Write([]byte{'\n'})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint %q: %w", scope, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
