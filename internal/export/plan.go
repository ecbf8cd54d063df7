package export

import (
	"io/fs"

	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/assets"
)

// Plan hashes every stylesheet and script in static and returns the
// manifest mapping each to its fingerprinted name.
func Plan(static fs.FS) (*assets.Manifest, error) {
	m := assets.NewManifest()
	err := fs.WalkDir(static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !assets.Fingerprintable(name) || assets.IsFingerprinted(name) {
			return nil
		}
		data, err := fs.ReadFile(static, name)
		if err != nil {
			return err
		}
		m.Set(name, assets.Fingerprint(name, data))
		return nil
	})
	if err != nil {
		return nil, errors.New("E300").WithDetail("fingerprint assets").Wrap(err)
	}
	return m, nil
}
