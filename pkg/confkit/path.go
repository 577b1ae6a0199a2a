package confkit

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// projectRoot walks upwards from this source file until it finds a directory
// containing go.mod or .git. Falls back to the current working directory.
func projectRoot() (string, error) {
	if _, file, _, ok := runtime.Caller(0); ok {
		dir := filepath.Dir(file)
		for i := 0; i < 8; i++ {
			if fileExists(filepath.Join(dir, "go.mod")) || fileExists(filepath.Join(dir, ".git")) {
				return dir, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return ".", fmt.Errorf("getwd: %w", err)
	}
	return wd, nil
}

// MustProjectPath joins the repository root with rel, panicking when the root
// cannot be resolved.
func MustProjectPath(rel string) string {
	root, err := projectRoot()
	if err != nil {
		panic(err)
	}
	return filepath.Join(root, rel)
}
