// Package taggers extracts metadata from media files into compounds.
package taggers

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

// TagFunc adds whatever it can parse from r to c. A returned error means r
// was not in the format the TagFunc understands.
type TagFunc func(r io.ReadSeeker, c *typed.Compound) error

var tagFuncs = []struct {
	name string
	fn   TagFunc
}{
	{"common", ParseCommonAudio},
	{"flac", ParseFLAC},
}

// SuggestTags runs every known TagFunc over r. Formats that fail to parse
// are skipped; only I/O errors are returned.
func SuggestTags(r io.ReadSeeker, c *typed.Compound) error {
	for _, tf := range tagFuncs {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if err := tf.fn(r, c); err != nil {
			log.Debugf("taggers: %s: %v", tf.name, err)
		}
	}
	return nil
}

// FromFile returns a compound describing the file at p.
func FromFile(p string) (*typed.Compound, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	finfo, err := f.Stat()
	if err != nil {
		return nil, err
	}
	c := typed.New()
	c.SetString("path", filepath.ToSlash(p))
	c.SetLong("size", finfo.Size())
	if err := SuggestTags(f, c); err != nil {
		return nil, err
	}
	return c, nil
}
