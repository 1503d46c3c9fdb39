//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory used as $HOME and cwd
func (tf *Session) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteItems writes one item per line into the workspace
func (tf *Session) WriteItems(name string, items ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(strings.Join(items, "\n")+"\n"), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteConfig writes the user config file picked up without -config
func (tf *Session) WriteConfig(content string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	dir := filepath.Join(tf.workspace, ".config", "searchlist")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644)
}

// startWithItems creates a workspace with items and starts the app on them
func startWithItems(tf *Session, items []string, args ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	path, err := tf.WriteItems("items.txt", items...)
	if err != nil {
		return err
	}
	return tf.StartApp(append([]string{"-file", path}, args...)...)
}

var fruit = []string{"apple", "banana", "cherry", "grape", "pineapple"}
