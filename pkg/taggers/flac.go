package taggers

import (
	"io"
	"strings"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/meta"

	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

func ParseFLAC(r io.ReadSeeker, c *typed.Compound) error {
	stream, err := flac.Parse(r)
	if err != nil {
		return err
	}

	// Stream info
	c.SetByte("bits_per_sample", stream.Info.BitsPerSample)
	c.SetByte("channels", stream.Info.NChannels)
	c.SetInt("sample_rate", int32(stream.Info.SampleRate))
	c.SetLong("samples", int64(stream.Info.NSamples))

	// Tags
	for _, block := range stream.Blocks {
		if vc, ok := block.Body.(*meta.VorbisComment); ok {
			c.SetCompound("vorbis", fromVorbis(vc, c.GetCompound("vorbis")))
		}
	}
	return nil
}

// fromVorbis adds the comments of vc to out. Keys are lowercased and each
// key maps to the list of its values, since vorbis keys may repeat.
func fromVorbis(vc *meta.VorbisComment, out *typed.Compound) *typed.Compound {
	for _, vtag := range vc.Tags {
		key := strings.ToLower(vtag[0])
		out.SetStringArray(key, append(out.GetStringArray(key), vtag[1]))
	}
	if vc.Vendor != "" {
		out.SetString("vendor", vc.Vendor)
	}
	return out
}
