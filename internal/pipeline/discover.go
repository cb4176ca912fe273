package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/andresmejia3/matte/internal/types"
)

// Supported source image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Discover lists candidate image files directly inside inputDir. The scan is
// deliberately non-recursive, skips subdirectories, and keeps ReadDir's
// name order so processing order is deterministic.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(inputDir, entry.Name()))
		}
	}
	return files, nil
}

// BuildTasks pairs each candidate with its output path: the configured
// prefix concatenated with the original filename, inside outputDir. The
// extension is never rewritten, so the output codec always matches the
// input format.
func BuildTasks(files []string, outputDir, prefix string) []types.ImageTask {
	tasks := make([]types.ImageTask, 0, len(files))
	for _, path := range files {
		tasks = append(tasks, types.ImageTask{
			InputPath:  path,
			OutputPath: filepath.Join(outputDir, prefix+filepath.Base(path)),
		})
	}
	return tasks
}
