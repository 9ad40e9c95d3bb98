package typed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/nbtkit/pkg/component"
	"github.com/brendoncarroll/nbtkit/pkg/nbt"
)

func TestStrings(t *testing.T) {
	c := New()
	require.Equal(t, "", c.GetString("s"))
	require.Nil(t, c.GetNullableString("s"))

	c.SetString("s", "hello")
	require.Equal(t, "hello", c.GetString("s"))
	require.Equal(t, "hello", *c.GetNullableString("s"))

	c.SetString("empty", "")
	require.NotNil(t, c.GetNullableString("empty"))

	c.SetNullableString("s", nil)
	require.False(t, c.HasKey("s"))
	require.Nil(t, c.GetNullableString("s"))

	v := "again"
	c.SetNullableString("s", &v)
	require.Equal(t, "again", c.GetString("s"))
}

func TestNullStringSentinel(t *testing.T) {
	c := New()
	c.SetString("s", NullString)
	require.True(t, c.HasKeyOfType("s", nbt.TypeString))
	require.Nil(t, c.GetNullableString("s"))
	require.Equal(t, NullString, c.GetString("s"))

	c.SetInt("n", 1)
	require.Nil(t, c.GetNullableString("n"))
	require.Equal(t, "", c.GetString("n"))
}

func TestComponent(t *testing.T) {
	c := New()
	require.Equal(t, component.Empty(), c.GetComponent("name"))

	name := component.Text("Excalibur").Append(component.Text(" +1"))
	require.NoError(t, c.SetComponent("name", &name))
	require.True(t, c.HasKeyOfType("name", nbt.TypeString))
	require.Equal(t, `{"text":"Excalibur","extra":[{"text":" +1"}]}`, c.GetString("name"))
	require.Equal(t, name, c.GetComponent("name"))

	c.SetString("plain", `"just text"`)
	assert.Equal(t, "just text", c.GetComponent("plain").PlainText())

	c.SetString("broken", "{not json")
	assert.Equal(t, component.Empty(), c.GetComponent("broken"))

	c.SetInt("wrong", 1)
	assert.Equal(t, component.Empty(), c.GetComponent("wrong"))

	require.ErrorIs(t, c.SetComponent("name", nil), ErrNullArgument)
	require.Equal(t, name, c.GetComponent("name"))
}
