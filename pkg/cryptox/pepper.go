package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	// Pepper is loaded lazily from a file, or generated on first use.
	pepper     string
	pepperFile = "pepper"
)

// SetPepperPath sets the file the pepper is loaded from or written to.
// Call this once at startup before any hashing happens.
func SetPepperPath(file string) {
	pepperFile = file
}

// GetPepper returns the process-wide pepper appended to every password before
// hashing. A missing pepper file is created with fresh random contents;
// losing the file invalidates every stored hash.
func GetPepper() string {
	if pepper != "" {
		return pepper
	}

	var err error
	pepper, err = loadOrGeneratePepper()
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}

	return pepper
}

func loadOrGeneratePepper() (string, error) {
	pepperFile = filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(pepperFile), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(pepperFile); os.IsNotExist(err) {
		buf := make([]byte, keyLength)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		generated := base64.RawURLEncoding.EncodeToString(buf)
		if err := os.WriteFile(pepperFile, []byte(generated), 0600); err != nil {
			return "", err
		}
		return generated, nil
	}

	data, err := os.ReadFile(pepperFile)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
