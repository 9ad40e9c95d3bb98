package nbtcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

func run(t *testing.T, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	rootCmd.SetOutput(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	out, err := run(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestSetGet(t *testing.T) {
	f := filepath.Join(t.TempDir(), "player.dat")
	mustRun(t, "set", f, "hp", "int", "20")
	mustRun(t, "set", f, "stats.kills", "long", "7")
	mustRun(t, "set", f, "flags", "bytes", "1,-1")

	require.Equal(t, "20\n", mustRun(t, "get", f, "hp", "--type", "int"))
	require.Equal(t, "7\n", mustRun(t, "get", f, "stats.kills", "--type", "long"))
	require.Equal(t, "1,-1\n", mustRun(t, "get", f, "flags", "--type", "bytes"))
	require.Equal(t, "{flags:[B;1B,-1B],hp:20,stats:{kills:7L}}\n", mustRun(t, "dump", f))

	// silent defaults
	require.Equal(t, "0\n", mustRun(t, "get", f, "missing", "--type", "int"))
	require.Equal(t, "0\n", mustRun(t, "get", f, "hp", "--type", "long"))

	_, err := run(t, "get", f, "nope.kills", "--type", "long")
	require.Error(t, err)
	_, err = run(t, "set", f, "hp", "int", "abc")
	require.Error(t, err)
	_, err = run(t, "set", f, "hp", "widget", "1")
	require.Error(t, err)
}

func TestKeys(t *testing.T) {
	f := filepath.Join(t.TempDir(), "level.dat")
	mustRun(t, "set", f, "Data.LevelName", "string", "world")
	mustRun(t, "set", f, "Data.Time", "long", "100")

	out := mustRun(t, "keys", f)
	require.Contains(t, out, "Data")
	require.Contains(t, out, "compound")

	out = mustRun(t, "keys", f, "Data")
	require.Contains(t, out, "LevelName")
	require.Contains(t, out, "Time")
}

func TestRemoveUUID(t *testing.T) {
	f := filepath.Join(t.TempDir(), "entity.dat")
	id := uuid.New()
	mustRun(t, "set", f, "owner", "uuid", id.String())
	mustRun(t, "set", f, "owner", "legacy-uuid", id.String())
	require.Equal(t, id.String()+"\n", mustRun(t, "get", f, "owner", "--type", "uuid"))
	require.Equal(t, id.String()+"\n", mustRun(t, "get", f, "owner", "--type", "legacy-uuid"))

	mustRun(t, "rm", f, "owner", "--uuid=false")
	require.Equal(t, uuid.Nil.String()+"\n", mustRun(t, "get", f, "owner", "--type", "uuid"))
	require.Equal(t, id.String()+"\n", mustRun(t, "get", f, "owner", "--type", "legacy-uuid"))

	mustRun(t, "rm", f, "owner", "--uuid=true")
	require.Equal(t, "{}\n", mustRun(t, "dump", f))
}

func TestStore(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "player.dat")
	mustRun(t, "set", f, "hp", "int", "20")

	mustRun(t, "--db="+dir, "store", "put", "player", f)
	out := mustRun(t, "--db="+dir, "store", "ls")
	require.Contains(t, out, "player")
	require.Equal(t, "TypedCompound{hp:20}\n", mustRun(t, "--db="+dir, "store", "get", "player"))

	f2 := filepath.Join(dir, "copy.dat")
	mustRun(t, "--db="+dir, "store", "get", "player", f2)
	require.Equal(t, "{hp:20}\n", mustRun(t, "dump", f2))

	mustRun(t, "set", f, "name", "string", "steve")
	mustRun(t, "--db="+dir, "store", "put", "steve", f)
	require.Equal(t, "steve\n", mustRun(t, "--db="+dir, "store", "find", "name", "steve"))

	mustRun(t, "--db="+dir, "store", "rm", "player")
	_, err := run(t, "--db="+dir, "store", "get", "player")
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	root := typed.New()
	_, _, err := resolve(root, "", true)
	require.Error(t, err)

	_, _, err = resolve(root, "a.b.c", false)
	require.Error(t, err)

	parent, key, err := resolve(root, "a.b.c", true)
	require.NoError(t, err)
	require.Equal(t, "c", key)
	parent.SetInt(key, 1)
	require.Equal(t, int32(1), root.GetCompound("a").GetCompound("b").GetInt("c"))

	// a non-compound on the way is replaced only when creating
	root.SetInt("x", 5)
	_, _, err = resolve(root, "x.y", false)
	require.Error(t, err)
	_, _, err = resolve(root, "x.y", true)
	require.NoError(t, err)
	require.True(t, root.HasKey("x"))
}

func TestParseHelpers(t *testing.T) {
	b, err := parseByte("-1")
	require.NoError(t, err)
	require.Equal(t, byte(255), b)
	_, err = parseByte("256")
	require.Error(t, err)

	vs, err := parseList("", parseByte)
	require.NoError(t, err)
	require.NotNil(t, vs)
	require.Len(t, vs, 0)

	_, err = lookupType("widget")
	require.Error(t, err)
	require.Contains(t, typeNames(), "uuid")
}

func TestImportMedia(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.txt", "b.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0o644))
		files = append(files, p)
	}
	out := filepath.Join(dir, "media.dat")
	mustRun(t, append([]string{"import-media", out}, files...)...)
	mustRun(t, append([]string{"import-media", out}, files[0])...)

	c, err := openDoc(out).Load(ctx)
	require.NoError(t, err)
	entries := c.GetCompoundArray("files")
	require.Len(t, entries, 3)
	require.Equal(t, filepath.ToSlash(files[0]), entries[0].GetString("path"))
	require.Equal(t, filepath.ToSlash(files[1]), entries[1].GetString("path"))
	require.Equal(t, int64(5), entries[2].GetLong("size"))

	_, err = run(t, "import-media", out, filepath.Join(dir, "missing"))
	require.Error(t, err)
}
