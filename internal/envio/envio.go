package envio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/envtools/envctl/internal/errors"
)

// ReadFile reads a text file and normalizes CRLF line endings to LF before
// the text reaches the grammar parser. A missing file is reported with the
// typed file-not-found error so commands can map it to the right exit code.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.FileNotFound(path)
		}
		return "", errors.IOError("read", path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.IOError("create directory for", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.IOError("write", path, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Backup copies path to path+".bak" and returns the backup path. The source
// must exist; write failures surface as I/O errors.
func Backup(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	bak := path + ".bak"
	if err := WriteFile(bak, content); err != nil {
		return "", err
	}
	return bak, nil
}
