package taggers

import (
	"io"

	dtag "github.com/dhowden/tag"

	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

func ParseCommonAudio(r io.ReadSeeker, c *typed.Compound) error {
	md, err := dtag.ReadFrom(r)
	if err != nil {
		return err
	}

	strs := []struct{ key, value string }{
		{"tag_format", string(md.Format())},
		{"file_type", string(md.FileType())},
		{"title", md.Title()},
		{"album", md.Album()},
		{"artist", md.Artist()},
		{"album_artist", md.AlbumArtist()},
		{"composer", md.Composer()},
		{"genre", md.Genre()},
	}
	for _, s := range strs {
		if s.value != "" {
			c.SetString(s.key, s.value)
		}
	}

	if trackN, _ := md.Track(); trackN > 0 {
		c.SetInt("track", int32(trackN))
	}
	if discN, _ := md.Disc(); discN > 0 {
		c.SetInt("disc", int32(discN))
	}
	if year := md.Year(); year > 0 {
		c.SetShort("year", int16(year))
	}
	return nil
}
