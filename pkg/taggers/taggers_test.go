package taggers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mewkiz/flac/meta"
	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

func TestSuggestTagsGarbage(t *testing.T) {
	c := typed.New()
	require.NoError(t, SuggestTags(bytes.NewReader([]byte("definitely not audio")), c))
	require.True(t, c.IsEmpty())
}

func TestFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0o644))
	c, err := FromFile(p)
	require.NoError(t, err)
	require.Equal(t, filepath.ToSlash(p), c.GetString("path"))
	require.Equal(t, int64(5), c.GetLong("size"))

	_, err = FromFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestFromVorbis(t *testing.T) {
	vc := &meta.VorbisComment{
		Vendor: "reference libFLAC 1.3.2",
		Tags: [][2]string{
			{"TITLE", "Song"},
			{"ARTIST", "A"},
			{"artist", "B"},
		},
	}
	c := fromVorbis(vc, typed.New())
	require.Equal(t, []string{"Song"}, c.GetStringArray("title"))
	require.Equal(t, []string{"A", "B"}, c.GetStringArray("artist"))
	require.Equal(t, "reference libFLAC 1.3.2", c.GetString("vendor"))
}

func TestTagFuncOrder(t *testing.T) {
	var names []string
	for _, tf := range tagFuncs {
		require.NotNil(t, tf.fn)
		names = append(names, tf.name)
	}
	require.Equal(t, []string{"common", "flac"}, names)
}
