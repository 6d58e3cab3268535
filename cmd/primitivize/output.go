package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// outputPNGPath derives a sibling ".png" path next to the SVG output,
// used for the raw-canvas snapshot written alongside the vector
// result.
func outputPNGPath(svgPath string) string {
	ext := filepath.Ext(svgPath)
	return strings.TrimSuffix(svgPath, ext) + ".png"
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
