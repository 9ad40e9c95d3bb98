package nbtcmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/brendoncarroll/nbtkit/pkg/component"
	"github.com/brendoncarroll/nbtkit/pkg/nbt"
	"github.com/brendoncarroll/nbtkit/pkg/typed"
)

// valueType converts between command line text and one typed accessor pair.
// Array types use comma separated elements.
type valueType struct {
	get func(c *typed.Compound, key string) (string, error)
	set func(c *typed.Compound, key, value string) error
}

var valueTypes = map[string]valueType{
	"bool": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strconv.FormatBool(c.GetBoolean(key)), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			v, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			c.SetBoolean(key, v)
			return nil
		},
	},
	"byte": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strconv.Itoa(int(int8(c.GetByte(key)))), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			v, err := parseByte(value)
			if err != nil {
				return err
			}
			c.SetByte(key, v)
			return nil
		},
	},
	"short": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strconv.FormatInt(int64(c.GetShort(key)), 10), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			v, err := strconv.ParseInt(value, 0, 16)
			if err != nil {
				return err
			}
			c.SetShort(key, int16(v))
			return nil
		},
	},
	"int": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strconv.FormatInt(int64(c.GetInt(key)), 10), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			v, err := strconv.ParseInt(value, 0, 32)
			if err != nil {
				return err
			}
			c.SetInt(key, int32(v))
			return nil
		},
	},
	"long": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strconv.FormatInt(c.GetLong(key), 10), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			v, err := strconv.ParseInt(value, 0, 64)
			if err != nil {
				return err
			}
			c.SetLong(key, v)
			return nil
		},
	},
	"float": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strconv.FormatFloat(float64(c.GetFloat(key)), 'g', -1, 32), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			v, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return err
			}
			c.SetFloat(key, float32(v))
			return nil
		},
	},
	"double": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strconv.FormatFloat(c.GetDouble(key), 'g', -1, 64), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			c.SetDouble(key, v)
			return nil
		},
	},
	"string": {
		get: func(c *typed.Compound, key string) (string, error) {
			return c.GetString(key), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			c.SetString(key, value)
			return nil
		},
	},
	"uuid": {
		get: func(c *typed.Compound, key string) (string, error) {
			return c.GetUUID(key).String(), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			id, err := uuid.Parse(value)
			if err != nil {
				return err
			}
			c.SetUUID(key, id)
			return nil
		},
	},
	"legacy-uuid": {
		get: func(c *typed.Compound, key string) (string, error) {
			id, _ := c.GetLegacyUUID(key)
			return id.String(), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			id, err := uuid.Parse(value)
			if err != nil {
				return err
			}
			c.SetLegacyUUID(key, id)
			return nil
		},
	},
	"component": {
		get: func(c *typed.Compound, key string) (string, error) {
			return component.Marshal(c.GetComponent(key))
		},
		set: func(c *typed.Compound, key, value string) error {
			comp, err := component.Unmarshal(value)
			if err != nil {
				return err
			}
			return c.SetComponent(key, &comp)
		},
	},
	"compound": {
		get: func(c *typed.Compound, key string) (string, error) {
			return nbt.Format(c.GetCompound(key).Tree()), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			if value != "" && value != "{}" {
				return errors.New("only an empty compound {} can be set")
			}
			c.SetCompound(key, typed.New())
			return nil
		},
	},
	"bytes": {
		get: func(c *typed.Compound, key string) (string, error) {
			return joinList(c.GetByteArray(key), func(v byte) string { return strconv.Itoa(int(int8(v))) }), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			vs, err := parseList(value, parseByte)
			if err != nil {
				return err
			}
			c.SetByteArray(key, vs)
			return nil
		},
	},
	"ints": {
		get: func(c *typed.Compound, key string) (string, error) {
			return joinList(c.GetIntArray(key), func(v int32) string { return strconv.FormatInt(int64(v), 10) }), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			vs, err := parseList(value, func(s string) (int32, error) {
				v, err := strconv.ParseInt(s, 0, 32)
				return int32(v), err
			})
			if err != nil {
				return err
			}
			c.SetIntArray(key, vs)
			return nil
		},
	},
	"longs": {
		get: func(c *typed.Compound, key string) (string, error) {
			return joinList(c.GetLongArray(key), func(v int64) string { return strconv.FormatInt(v, 10) }), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			vs, err := parseList(value, func(s string) (int64, error) {
				return strconv.ParseInt(s, 0, 64)
			})
			if err != nil {
				return err
			}
			c.SetLongArray(key, vs)
			return nil
		},
	},
	"doubles": {
		get: func(c *typed.Compound, key string) (string, error) {
			return joinList(c.GetDoubleArray(key), func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			vs, err := parseList(value, func(s string) (float64, error) {
				return strconv.ParseFloat(s, 64)
			})
			if err != nil {
				return err
			}
			c.SetDoubleArray(key, vs)
			return nil
		},
	},
	"strings": {
		get: func(c *typed.Compound, key string) (string, error) {
			return strings.Join(c.GetStringArray(key), ","), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			vs, _ := parseList(value, func(s string) (string, error) { return s, nil })
			c.SetStringArray(key, vs)
			return nil
		},
	},
	"uuids": {
		get: func(c *typed.Compound, key string) (string, error) {
			return joinList(c.GetUUIDArray(key), uuid.UUID.String), nil
		},
		set: func(c *typed.Compound, key, value string) error {
			vs, err := parseList(value, uuid.Parse)
			if err != nil {
				return err
			}
			c.SetUUIDArray(key, vs)
			return nil
		},
	},
}

func lookupType(name string) (valueType, error) {
	vt, ok := valueTypes[name]
	if !ok {
		return valueType{}, errors.Errorf("unknown type %q, want one of %s", name, strings.Join(typeNames(), ", "))
	}
	return vt, nil
}

func typeNames() []string {
	names := make([]string, 0, len(valueTypes))
	for name := range valueTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseByte accepts both the signed and unsigned range of a byte.
func parseByte(s string) (byte, error) {
	v, err := strconv.ParseInt(s, 0, 16)
	if err != nil {
		return 0, err
	}
	if v < -128 || v > 255 {
		return 0, errors.Errorf("byte out of range: %d", v)
	}
	return byte(v), nil
}

// parseList parses comma separated elements. An empty string is an empty,
// non-nil list.
func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	ret := []T{}
	if s == "" {
		return ret, nil
	}
	for _, part := range strings.Split(s, ",") {
		v, err := parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func joinList[T any](vs []T, format func(T) string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = format(v)
	}
	return strings.Join(parts, ",")
}
