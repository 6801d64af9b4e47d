// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// assetExt is the on-disk suffix of a serialized material asset.
const assetExt = ".json"

// DirRepository is a Repository backed by a directory tree of JSON
// asset files. The primary asset of a shader lives at its deterministic
// default path; subordinate variants live in a directory named after
// the primary, so browsing the primary's location surfaces them:
//
//	<root>/materials/UI-Effect.mat.json
//	<root>/materials/UI-Effect/UI-Effect-Grayscale.mat.json
//
// Create only stages assets in memory; Save writes the staged files.
// A failed Save leaves the staged assets usable for the session.
type DirRepository struct {
	mu     sync.Mutex
	root   string
	assets map[string]*Material
	dirty  []*Material
}

// OpenDirRepository opens (and indexes) a directory repository rooted
// at root. Missing directories are treated as an empty repository; they
// are created on the first Save.
func OpenDirRepository(root string) (*DirRepository, error) {
	r := &DirRepository{
		root:   root,
		assets: make(map[string]*Material),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// load indexes every asset file under the root.
func (r *DirRepository) load() error {
	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), assetExt) {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var m Material
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("uifx/material: corrupt asset %s: %w", path, err)
		}
		if m.Name == "" {
			return fmt.Errorf("uifx/material: unnamed asset %s", path)
		}
		r.assets[m.Name] = &m
		return nil
	})
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Find returns the asset with the given canonical name.
func (r *DirRepository) Find(name string) (*Material, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.assets[name]
	return m, ok
}

// Create stages a new asset for the next Save.
func (r *DirRepository) Create(m *Material) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("uifx/material: cannot create unnamed asset")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[m.Name]; ok {
		return fmt.Errorf("uifx/material: asset %q already exists", m.Name)
	}
	r.assets[m.Name] = m
	r.dirty = append(r.dirty, m)
	return nil
}

// Save writes every staged asset to disk. On failure the staged assets
// stay in memory and remain usable; Save can be retried.
func (r *DirRepository) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.dirty) > 0 {
		m := r.dirty[0]
		path := r.assetPath(m)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("uifx/material: save %q: %w", m.Name, err)
		}
		data, err := json.MarshalIndent(m, "", "\t")
		if err != nil {
			return fmt.Errorf("uifx/material: save %q: %w", m.Name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("uifx/material: save %q: %w", m.Name, err)
		}
		r.dirty = r.dirty[1:]
	}
	return nil
}

// assetPath returns the on-disk location of an asset. Primary assets
// use their deterministic Path; subordinate variants nest under their
// parent's directory.
func (r *DirRepository) assetPath(m *Material) string {
	if m.Primary() {
		path := m.Path
		if path == "" {
			path = DefaultAssetPath(m.Shader)
		}
		return filepath.Join(r.root, filepath.FromSlash(path)+assetExt)
	}
	return filepath.Join(r.root, "materials", m.Parent, m.Name+".mat"+assetExt)
}

// Root returns the repository's root directory.
func (r *DirRepository) Root() string { return r.root }

// Pending returns the number of staged assets awaiting Save.
func (r *DirRepository) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dirty)
}
