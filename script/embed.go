package script

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed samples/*.tengo
var samplesFS embed.FS

// Load reads a generator script. A matching file on disk wins over the
// embedded samples, so users can copy a sample out and edit it live.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return samplesFS.ReadFile(cleanSamplePath(name))
}

// SampleNames lists the embedded generator scripts.
func SampleNames() []string {
	entries, err := samplesFS.ReadDir("samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, "samples/"+e.Name())
	}
	return names
}

func cleanSamplePath(path string) string {
	s := filepath.ToSlash(path)
	if i := strings.LastIndex(s, "samples/"); i >= 0 {
		return s[i:]
	}
	return "samples/" + s
}
