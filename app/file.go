package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NoName is shown for a buffer without a file
const NoName = "[No Name]"

// LoadFile reads path into the initial text. An empty path or a file that
// does not exist yet yields empty content. Invalid UTF-8 is replaced.
func LoadFile(path string) (content, name string, err error) {
	if path == "" {
		return "", NoName, nil
	}
	name = filepath.Base(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", name, nil
	}
	if err != nil {
		return "", "", fmt.Errorf("load %s: %w", path, err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), name, nil
}
