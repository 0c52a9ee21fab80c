package schemas

import (
	"os"
	"path/filepath"
)

// executable is swapped out in tests
var executable = os.Executable

// InstallDir returns the directory containing the running binary with symlinks
// resolved, or "" when it cannot be determined.
func InstallDir() string {
	exe, err := executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Candidates lists the locations searched for relativePath, in order:
// next to the binary, one level above it (binaries installed under bin/),
// then the working directory and up to two levels above it.
func Candidates(relativePath string) []string {
	if filepath.IsAbs(relativePath) {
		return []string{relativePath}
	}

	var candidates []string
	if dir := InstallDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, relativePath),
			filepath.Join(dir, "..", relativePath),
		)
	}
	candidates = append(candidates,
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	)
	return candidates
}

// ResolveSchemaPath returns the first candidate location of relativePath that
// exists as an absolute path, or "" if none is found.
func ResolveSchemaPath(relativePath string) string {
	for _, candidate := range Candidates(relativePath) {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}
