//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jnew-dev/jnew/internal/config"
	jerrors "github.com/jnew-dev/jnew/internal/errors"
	"github.com/jnew-dev/jnew/internal/resolve"
	"github.com/jnew-dev/jnew/internal/scaffold"
	"github.com/jnew-dev/jnew/internal/wizard"
)

// createIn runs the full flow for one file: load config, resolve dir, create.
func createIn(t *testing.T, opts config.LoadOptions, host resolve.Host, kind, name string) (*scaffold.Result, resolve.Result, error) {
	t.Helper()

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, resolve.Result{}, err
	}
	res, err := resolve.Resolve(cfg, host)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	result, err := scaffold.Create(cfg, scaffold.Request{
		Kind:      kind,
		Name:      name,
		SourceDir: res.SourceDir,
		Package:   res.Package,
	})
	return result, res, err
}

// TestFullFlowWizardCreate tests the complete flow:
// user config -> wizard answers -> resolution -> file on disk -> cursor.
func TestFullFlowWizardCreate(t *testing.T) {
	env := setupTestEnv(t)
	writeConfig(t, env, `templates:
  class: "%package%/** %name% */\npublic final class %name% {\n    %cursor%\n}\n"
options:
  auto_open: false
`)

	cfg, err := config.Load(config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Step 1: wizard picks a class called Cart.
	var prompts bytes.Buffer
	outcome, err := wizard.Run(context.Background(),
		wizard.NewLinePrompter(strings.NewReader("class\nCart\n"), &prompts), cfg.Kinds())
	if err != nil {
		t.Fatalf("wizard.Run: %v", err)
	}
	if outcome.State != wizard.Ready {
		t.Fatalf("wizard state = %s", outcome.State)
	}

	// Step 2: resolve from inside the main source tree.
	dir := filepath.Join(env.ProjectDir, "src/main/java/com/acme/shop")
	res, err := resolve.Resolve(cfg, resolve.FSHost{Dir: dir})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Package != "com.acme.shop" || res.Strategy != resolve.StrategyPattern {
		t.Fatalf("unexpected resolution %+v", res)
	}

	// Step 3: create.
	result, err := scaffold.Create(cfg, scaffold.Request{
		Kind: outcome.Kind, Name: outcome.Name, SourceDir: res.SourceDir, Package: res.Package,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	path := filepath.Join(dir, "Cart.java")
	if result.Path != path {
		t.Errorf("Path = %s, want %s", result.Path, path)
	}
	assertFileContains(t, path, "package com.acme.shop;\n\n/** Cart */\npublic final class Cart {")
	if result.CursorLine != 4 || result.CursorCol != 4 {
		t.Errorf("cursor = (%d,%d), want (4,4)", result.CursorLine, result.CursorCol)
	}

	// Step 4: the sibling default templates survived the merge.
	if _, _, err := createIn(t, config.LoadOptions{}, resolve.FSHost{Dir: dir}, config.KindEnum, "Status"); err != nil {
		t.Fatalf("creating enum: %v", err)
	}
	assertFileContains(t, filepath.Join(dir, "Status.java"), "public enum Status {")
}

// TestFullFlowTestTree checks that the second configured root resolves too.
func TestFullFlowTestTree(t *testing.T) {
	env := setupTestEnv(t)
	dir := filepath.Join(env.ProjectDir, "src/test/java/com/acme/shop")

	_, res, err := createIn(t, config.LoadOptions{}, resolve.FSHost{Dir: dir}, config.KindClass, "CartTest")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Package != "com.acme.shop" {
		t.Errorf("Package = %q", res.Package)
	}
	assertFileContains(t, filepath.Join(dir, "CartTest.java"), "package com.acme.shop;")
}

// TestFullFlowBufferFallback resolves a directory outside every source root
// by reading the package of an open Java file.
func TestFullFlowBufferFallback(t *testing.T) {
	env := setupTestEnv(t)
	buffer := filepath.Join(env.ProjectDir, "scripts", "Tool.java")
	writeFile(t, buffer, "/* generated */\n  package  com.acme.tools ;\n\nclass Tool {}\n")

	_, res, err := createIn(t, config.LoadOptions{}, resolve.FSHost{Dir: buffer}, config.KindInterface, "Plugin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Strategy != resolve.StrategyBuffer || res.Package != "com.acme.tools" {
		t.Errorf("unexpected resolution %+v", res)
	}
	assertFileContains(t, filepath.Join(env.ProjectDir, "scripts", "Plugin.java"), "package com.acme.tools;\n\npublic interface Plugin {")
}

// TestFullFlowDefaultPackage falls through to the working directory.
func TestFullFlowDefaultPackage(t *testing.T) {
	env := setupTestEnv(t)
	dir := filepath.Join(env.ProjectDir, "scripts")

	_, res, err := createIn(t, config.LoadOptions{}, resolve.FSHost{Dir: dir}, config.KindClass, "Main")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Strategy != resolve.StrategyDefault || res.Package != "" {
		t.Errorf("unexpected resolution %+v", res)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Main.java"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "public class Main {") {
		t.Errorf("default package should have no declaration:\n%s", data)
	}
}

// TestFullFlowFailuresLeaveNoFile walks the error classes.
func TestFullFlowFailuresLeaveNoFile(t *testing.T) {
	env := setupTestEnv(t)
	dir := filepath.Join(env.ProjectDir, "src/main/java/com/acme/shop")
	host := resolve.FSHost{Dir: dir}

	tests := []struct {
		name     string
		opts     config.LoadOptions
		kind     string
		typeName string
		target   error
	}{
		{"reserved word", config.LoadOptions{}, config.KindClass, "While", jerrors.ErrValidation},
		{"bad start", config.LoadOptions{}, config.KindClass, "1Up", jerrors.ErrValidation},
		{"unknown kind", config.LoadOptions{}, "module", "Shop", jerrors.ErrConfig},
		{"old release", config.LoadOptions{Sets: []string{"options.java_release=1.8"}}, config.KindRecord, "Point", jerrors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := createIn(t, tt.opts, host, tt.kind, tt.typeName)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			assertFileNotExists(t, filepath.Join(dir, tt.typeName+".java"))
		})
	}
}

// TestConcurrentCreateNeverClobbers races several creators for one name.
// Exactly one wins; every other sees a collision.
func TestConcurrentCreateNeverClobbers(t *testing.T) {
	env := setupTestEnv(t)
	dir := filepath.Join(env.ProjectDir, "src/main/java/com/acme/shop")

	cfg, err := config.Load(config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	const creators = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		collisions int
	)
	for range creators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := scaffold.Create(cfg, scaffold.Request{
				Kind: config.KindClass, Name: "Race", SourceDir: dir, Package: "com.acme.shop",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, jerrors.ErrCollision):
				collisions++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if created != 1 || collisions != creators-1 {
		t.Errorf("created=%d collisions=%d, want 1 and %d", created, collisions, creators-1)
	}
	assertFileExists(t, filepath.Join(dir, "Race.java"))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}
