package config

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/stores/bytes_float"
)

type Config struct {
	Cache         string
	Output        string
	MinSupport    float64
	MinConfidence float64
	Unique        bool
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:         c.Cache,
		Output:        c.Output,
		MinSupport:    c.MinSupport,
		MinConfidence: c.MinConfidence,
		Unique:        c.Unique,
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

// BytesFloatMultiMap backs the tree with an anonymous mmap unless a
// cache directory is configured.
func (c *Config) BytesFloatMultiMap(name string) (bytes_float.MultiMap, error) {
	if c.Cache == "" {
		return bytes_float.AnonBpTree()
	}
	return bytes_float.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
}
