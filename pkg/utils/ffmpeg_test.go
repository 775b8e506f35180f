package utils

import (
	"path/filepath"
	"strings"
	"testing"
)

// Concurrent uploads each need their own extraction target; a shared name
// would let one upload serve or delete another's frame.
func TestThumbnailOutputPathUnique(t *testing.T) {
	dir := t.TempDir()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		path := thumbnailOutputPath(dir)
		if seen[path] {
			t.Fatalf("duplicate thumbnail path %s", path)
		}
		seen[path] = true
		if filepath.Dir(path) != dir {
			t.Errorf("path %s not under %s", path, dir)
		}
		if !strings.HasSuffix(path, ".jpg") {
			t.Errorf("path %s missing .jpg suffix", path)
		}
	}
}
