package nbtcmd

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

// splitPath splits a dot separated path of compound keys.
func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, ".")
}

// walk returns the compound reached by following path from root.
// If create is set, missing or non-compound entries along the way are
// replaced with empty compounds.
func walk(root *typed.Compound, path []string, create bool) (*typed.Compound, error) {
	c := root
	for i, key := range path {
		next := c.GetNullableCompound(key)
		if next == nil {
			if !create {
				return nil, errors.Errorf("no compound at %q", strings.Join(path[:i+1], "."))
			}
			next = typed.New()
			c.SetCompound(key, next)
		}
		c = next
	}
	return c, nil
}

// resolve returns the parent compound of p and the final key.
func resolve(root *typed.Compound, p string, create bool) (*typed.Compound, string, error) {
	path := splitPath(p)
	if len(path) == 0 {
		return nil, "", errors.New("empty path")
	}
	parent, err := walk(root, path[:len(path)-1], create)
	if err != nil {
		return nil, "", err
	}
	return parent, path[len(path)-1], nil
}
