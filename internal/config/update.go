package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"gopkg.in/yaml.v3"
)

// configHeader is written above a freshly created config file.
const configHeader = "# sysmon configuration. Durations use Go syntax: 700ms, 2s.\n"

// settableKeys are the keys SetValue accepts.
var settableKeys = map[string]bool{
	"interval":      true,
	"processes":     true,
	"poll_interval": true,
	"join_timeout":  true,
	"color":         true,
	"log_file":      true,
}

// SettableKeys returns the keys SetValue accepts, sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteDefault writes the default config to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			"Config file already exists: "+path,
			"Use --force to overwrite it")
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(DefaultConfig()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create config directory",
			"Check permissions on "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check permissions on "+path)
	}
	return nil
}

// SetValue sets a top-level key in the config file at configPath.
// It preserves the existing YAML structure and comments. A missing file is
// created. The edited file must still validate or nothing is written.
func SetValue(configPath, key, value string) error {
	if !settableKeys[key] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a config key", key),
			"Valid keys: "+strings.Join(SettableKeys(), ", "))
	}

	// Read the existing file
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse as yaml.Node to preserve structure
	var root yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &root); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to parse config file",
				"Check the YAML syntax in "+configPath)
		}
	}
	if root.Kind == 0 {
		root = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}
	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	if valueNode := findMapValue(docNode, key); valueNode != nil {
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = ""
		valueNode.Style = 0
		valueNode.Value = value
		valueNode.Content = nil
	} else {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: key,
		}
		docNode.Content = append(docNode.Content, keyNode, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: value,
		})
	}

	// Encode and check the result before touching the file
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if _, err := Parse(buf.Bytes()); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
