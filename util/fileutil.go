package util

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

// FileExists returns true if the file or directory at path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExpandTilde expands a leading ~ to the current user's home dir.
func ExpandTilde(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, filePath[1:]), nil
}

// LooksSafeToDelete returns true if path is at least minLength
// characters long and contains at least minSeparators path
// separators. This keeps us from deleting things like "/" or "/usr".
func LooksSafeToDelete(path string, minLength, minSeparators int) bool {
	separators := strings.Count(path, string(os.PathSeparator))
	return len(path) >= minLength && separators >= minSeparators
}

// ProjectRoot returns the root directory of this project's source.
func ProjectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(thisFile))
}
