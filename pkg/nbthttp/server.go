// Package nbthttp serves a read and delete view of an nbtstore.Store.
package nbthttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/brendoncarroll/nbtkit/pkg/nbtstore"
)

type Server struct {
	s *nbtstore.Store
	r chi.Router
}

func New(s *nbtstore.Store) *Server {
	srv := &Server{s: s}
	r := chi.NewRouter()

	r.Get("/c", srv.listCompounds)
	r.Get("/c/{name}", srv.getCompound)
	r.Get("/c/{name}/keys", srv.getKeys)
	r.Delete("/c/{name}", srv.deleteCompound)
	r.Get("/find", srv.find)

	srv.r = r
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

func (s *Server) listCompounds(w http.ResponseWriter, r *http.Request) {
	ents, err := s.s.List(r.Context())
	if httpErr(w, err) {
		return
	}
	if ents == nil {
		ents = []nbtstore.Entry{}
	}
	httpSuccess(w, ents)
}

func (s *Server) getCompound(w http.ResponseWriter, r *http.Request) {
	c, err := s.s.Get(r.Context(), chi.URLParam(r, "name"))
	if httpErr(w, err) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(c.String())); err != nil {
		log.Error(err)
	}
}

func (s *Server) getKeys(w http.ResponseWriter, r *http.Request) {
	c, err := s.s.Get(r.Context(), chi.URLParam(r, "name"))
	if httpErr(w, err) {
		return
	}
	keys := c.Keys()
	if keys == nil {
		keys = []string{}
	}
	httpSuccess(w, keys)
}

func (s *Server) deleteCompound(w http.ResponseWriter, r *http.Request) {
	err := s.s.Delete(r.Context(), chi.URLParam(r, "name"))
	if httpErr(w, err) {
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) find(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("key")
	if key == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	names, err := s.s.Find(r.Context(), key, q.Get("value"))
	if httpErr(w, err) {
		return
	}
	if names == nil {
		names = []string{}
	}
	httpSuccess(w, names)
}

func httpSuccess(w http.ResponseWriter, x interface{}) {
	data, err := json.Marshal(x)
	if err != nil {
		panic(err)
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		log.Error(err)
	}
}

func httpErr(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	status := http.StatusInternalServerError
	if errors.Is(err, nbtstore.ErrNotFound) {
		status = http.StatusNotFound
	} else {
		log.Error(err)
	}

	w.WriteHeader(status)
	w.Write([]byte("error: " + err.Error()))
	return true
}
