package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"strings"
)

// HashLength is the number of hex digits a fingerprint carries.
const HashLength = 8

// Fingerprint returns name with a content hash inserted before the
// extension: "css/site.css" becomes "css/site.1a2b3c4d.css".
func Fingerprint(name string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])[:HashLength]

	dir, base := path.Split(name)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return dir + stem + "." + hash + ext
}

// Fingerprintable reports whether files like name are renamed by the
// export. Only stylesheets and scripts are, since pages link them through
// the resolver.
func Fingerprintable(name string) bool {
	switch path.Ext(name) {
	case ".css", ".js":
		return true
	}
	return false
}

// IsFingerprinted checks if a file path appears to be fingerprinted.
// Fingerprinted files have a hash in their name, e.g., "app.a1b2c3d4.css"
func IsFingerprinted(filePath string) bool {
	base := path.Base(filePath)

	// Split by dots: ["app", "a1b2c3d4", "css"]
	parts := strings.Split(base, ".")
	if len(parts) < 3 {
		return false
	}

	hash := parts[len(parts)-2]
	if len(hash) < HashLength {
		return false
	}

	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}
