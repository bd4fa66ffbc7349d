// Package config persists wizard answers as line-oriented KEY=VALUE files
// and loads them back preserving order. A key that is missing is distinct
// from a key configured as the empty string.
package config

// Config is an ordered mapping from variable name to string value. Keys are
// unique; setting an existing key updates its value in place (last write
// wins) without changing its position.
type Config struct {
	keys   []string
	values map[string]string
}

// New creates an empty Config.
func New() *Config {
	return &Config{values: make(map[string]string)}
}

// Set stores value under key, preserving first-insertion order.
func (c *Config) Set(key, value string) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value for key. The boolean distinguishes "not configured"
// from "configured as empty".
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (c *Config) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return len(c.keys)
}
