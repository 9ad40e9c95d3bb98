package nbthttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/nbtkit/pkg/nbtstore"
	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

func setup(t testing.TB) (*nbtstore.Store, *Server) {
	params, err := nbtstore.DefaultParams(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { params.DB.Close() })
	s := nbtstore.New(*params)
	return s, New(s)
}

func do(t testing.TB, h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestServer(t *testing.T) {
	ctx := context.Background()
	s, srv := setup(t)

	w := do(t, srv, http.MethodGet, "/c")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	c := typed.New()
	c.SetInt("hp", 20)
	c.SetBoolean("alive", true)
	fp, err := s.Put(ctx, "player", c)
	require.NoError(t, err)

	w = do(t, srv, http.MethodGet, "/c")
	require.Equal(t, http.StatusOK, w.Code)
	var ents []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ents))
	require.Len(t, ents, 1)
	require.Equal(t, "player", ents[0]["name"])
	require.Equal(t, fp.HexString(), ents[0]["fingerprint"])

	w = do(t, srv, http.MethodGet, "/c/player")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "TypedCompound{alive:1b,hp:20}", w.Body.String())

	w = do(t, srv, http.MethodGet, "/c/player/keys")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `["alive","hp"]`, w.Body.String())

	c2 := typed.New()
	c2.SetString("team", "red")
	_, err = s.Put(ctx, "other", c2)
	require.NoError(t, err)
	w = do(t, srv, http.MethodGet, "/find?key=team&value=red")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `["other"]`, w.Body.String())
	w = do(t, srv, http.MethodGet, "/find?key=team&value=blue")
	require.JSONEq(t, `[]`, w.Body.String())
	w = do(t, srv, http.MethodGet, "/find")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, srv, http.MethodDelete, "/c/player")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, srv, http.MethodGet, "/c/player")
	require.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, srv, http.MethodGet, "/c/player/keys")
	require.Equal(t, http.StatusNotFound, w.Code)
}
