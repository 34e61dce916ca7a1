package config

import (
	"os"
	"strings"
)

// Source resolves a named configuration value.
type Source interface {
	Lookup(name string) (string, bool)
}

// EnvSource reads the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (e EnvSource) get(name, defaultValue string) string {
	return getString(e, name, defaultValue)
}

// MapSource is a fixed set of values, mostly useful in tests.
type MapSource map[string]string

func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type prefixed struct {
	src    Source
	prefix string
}

// Prefixed exposes the entries of src that start with prefix under their
// short, case-insensitive names: Prefixed(src, "FAUNA_").Lookup("key")
// reads FAUNA_KEY.
func Prefixed(src Source, prefix string) Source {
	return prefixed{src: src, prefix: prefix}
}

func (p prefixed) Lookup(name string) (string, bool) {
	return p.src.Lookup(p.prefix + strings.ToUpper(name))
}
