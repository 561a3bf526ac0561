//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // JNEW_HOME, holds config.yaml
	ProjectDir string // root of a mock Maven/Gradle project
}

// setupTestEnv creates isolated temp directories and points JNEW_HOME at one
// of them so the developer's own configuration never leaks in.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("JNEW_HOME", env.HomeDir)
	t.Setenv("JNEW_CONFIG", "")

	for _, sub := range []string{
		"src/main/java/com/acme/shop",
		"src/test/java/com/acme/shop",
		"scripts",
	} {
		if err := os.MkdirAll(filepath.Join(env.ProjectDir, sub), 0755); err != nil {
			t.Fatalf("creating %s: %v", sub, err)
		}
	}

	return env
}

// writeConfig writes config.yaml into the isolated home.
func writeConfig(t *testing.T, env *testEnv, content string) string {
	t.Helper()
	path := filepath.Join(env.HomeDir, "config.yaml")
	writeFile(t, path, content)
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file %s to not exist", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q, got:\n%s", path, substr, string(data))
	}
}
