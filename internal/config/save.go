package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// MuteFlag persists the audio mute flag through the config file.
type MuteFlag struct {
	mu   sync.Mutex
	cfg  *Config
	path string
}

// NewMuteFlag binds cfg to path. An empty path writes to the user's config
// directory.
func NewMuteFlag(cfg *Config, path string) *MuteFlag {
	return &MuteFlag{cfg: cfg, path: path}
}

// Muted returns the stored flag.
func (m *MuteFlag) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.Audio.Muted
}

// SetMuted updates the flag and writes only audio.muted back to the config
// file. Everything else in the file is left as it was, so flag overrides of
// this run are never persisted.
func (m *MuteFlag) SetMuted(muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg.Audio.Muted = muted
	path := m.path
	if path == "" {
		path = filepath.Join(ConfigDir(), "config.yaml")
	}
	return writeMuted(path, muted)
}

// writeMuted sets audio.muted in the YAML document at path, creating the
// file or the key when missing.
func writeMuted(path string, muted bool) error {
	var doc yaml.Node
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if len(doc.Content) == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: top level is not a mapping", path)
	}

	audio := mappingValue(root, "audio")
	if audio.Kind != yaml.MappingNode {
		*audio = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	*mappingValue(audio, "muted") = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(muted)}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// mappingValue returns the value node for key in mapping m, appending an
// empty one when the key is absent.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	value := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
	return value
}
