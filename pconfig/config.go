// Package pconfig generalizes the teacher's config.go (a hand-rolled
// map[string]*cfgVal with Set{Bool,Int,String}/Get{Bool,Int,String}
// accessors that panic on a type mismatch) to the knobs a CPS parser
// engine's CLI needs at runtime: which demo grammar to run, trace
// verbosity, and logging level. The accessor shape — and the "type
// mismatch is a programming error, not a user error" rationale behind
// panicking instead of returning an error — is kept unchanged from
// the teacher; only the source of truth changes, from hand-built
// defaults to a TOML file.
package pconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is a flat map from dotted path ("log.level") to a typed
// value, exactly the teacher's cfgVal shape.
type Config map[string]*cfgVal

type cfgValType int

const (
	cfgValTypeUndefined cfgValType = iota
	cfgValTypeBool
	cfgValTypeInt
	cfgValTypeString
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValTypeUndefined: "undefined",
		cfgValTypeBool:      "bool",
		cfgValTypeInt:       "int",
		cfgValTypeString:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValTypeUndefined {
		panic(fmt.Sprintf("pconfig: can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("pconfig: can't retrieve `%s` from `%s` value", vt, v.typ))
	}
}

// SetBool stores a bool value at path.
func (c Config) SetBool(path string, v bool) {
	c[path] = &cfgVal{}
	c[path].assignType(cfgValTypeBool)
	c[path].asBool = v
}

// SetInt stores an int value at path.
func (c Config) SetInt(path string, v int) {
	c[path] = &cfgVal{}
	c[path].assignType(cfgValTypeInt)
	c[path].asInt = v
}

// SetString stores a string value at path.
func (c Config) SetString(path string, v string) {
	c[path] = &cfgVal{}
	c[path].assignType(cfgValTypeString)
	c[path].asString = v
}

// GetBool returns the bool stored at path, panicking if path is
// unset or holds a different type.
func (c Config) GetBool(path string) bool {
	if val, ok := c[path]; ok {
		val.checkType(cfgValTypeBool)
		return val.asBool
	}
	panic(fmt.Sprintf("pconfig: bool setting `%s` does not exist", path))
}

// GetInt returns the int stored at path, panicking if path is unset
// or holds a different type.
func (c Config) GetInt(path string) int {
	if val, ok := c[path]; ok {
		val.checkType(cfgValTypeInt)
		return val.asInt
	}
	panic(fmt.Sprintf("pconfig: int setting `%s` does not exist", path))
}

// GetString returns the string stored at path, panicking if path is
// unset or holds a different type.
func (c Config) GetString(path string) string {
	if val, ok := c[path]; ok {
		val.checkType(cfgValTypeString)
		return val.asString
	}
	panic(fmt.Sprintf("pconfig: string setting `%s` does not exist", path))
}

// Default returns a Config primed with every knob the CLI and the
// lang/chars packages consult, mirroring NewConfig's role in the
// teacher: a config object that is always complete even with no file
// on disk.
func Default() Config {
	c := make(Config)
	c.SetString("log.level", "info")
	c.SetBool("log.development", false)
	c.SetBool("trace.enabled", false)
	c.SetString("trace.format", "text")
	c.SetString("grammar", "arithmetic")
	return c
}

// raw is the shape BurntSushi/toml decodes a pcomb.toml file into:
// one table per dotted-path prefix ("log", "trace"), each a flat map
// of leaf keys to value, plus a top-level "grammar" string.
type raw struct {
	Grammar string `toml:"grammar"`
	Log     struct {
		Level       string `toml:"level"`
		Development bool   `toml:"development"`
	} `toml:"log"`
	Trace struct {
		Enabled bool   `toml:"enabled"`
		Format  string `toml:"format"`
	} `toml:"trace"`
}

// Load reads path as TOML and overlays it onto Default(), so a
// partial file still yields a fully populated Config.
func Load(path string) (Config, error) {
	var r raw
	if _, err := toml.DecodeFile(path, &r); err != nil {
		return nil, fmt.Errorf("pconfig: loading %s: %w", path, err)
	}

	c := Default()
	if r.Grammar != "" {
		c.SetString("grammar", r.Grammar)
	}
	if r.Log.Level != "" {
		c.SetString("log.level", r.Log.Level)
	}
	c.SetBool("log.development", r.Log.Development)
	if r.Trace.Format != "" {
		c.SetString("trace.format", r.Trace.Format)
	}
	c.SetBool("trace.enabled", r.Trace.Enabled)
	return c, nil
}
