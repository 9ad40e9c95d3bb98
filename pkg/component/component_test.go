package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	s, err := Marshal(Empty())
	require.NoError(t, err)
	require.Equal(t, `{"text":""}`, s)

	bold := true
	c := Component{Text: "hi", Color: "red", Bold: &bold}.Append(Text(" there"))
	s, err = Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `{"text":"hi","color":"red","bold":true,"extra":[{"text":" there"}]}`, s)

	c2, err := Unmarshal(s)
	require.NoError(t, err)
	require.Equal(t, c, c2)
	require.Equal(t, "hi there", c2.PlainText())
}

func TestUnmarshalShorthand(t *testing.T) {
	c, err := Unmarshal(`"plain"`)
	require.NoError(t, err)
	assert.Equal(t, Text("plain"), c)

	c, err = Unmarshal(`[{"text":"a"},"b",{"text":"c"}]`)
	require.NoError(t, err)
	assert.Equal(t, "abc", c.PlainText())
	assert.Len(t, c.Extra, 2)

	_, err = Unmarshal(`[]`)
	require.Error(t, err)
	_, err = Unmarshal(`12`)
	require.Error(t, err)
	_, err = Unmarshal(`{`)
	require.Error(t, err)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.False(t, Text("x").IsEmpty())
	assert.False(t, Component{Translate: "chat.type.text"}.IsEmpty())
}

func TestUnmarshalNull(t *testing.T) {
	c, err := Unmarshal(`{"text":"a","extra":[null,{"text":"b"}],"with":[null]}`)
	require.NoError(t, err)
	assert.Equal(t, "ab", c.PlainText())
	assert.Len(t, c.Extra, 2)

	c, err = Unmarshal(`null`)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
