package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	p := DefaultPathProvider{}
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	if err := p.MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("MkdirAll did not create a directory")
	}
}

func TestSetProvider(t *testing.T) {
	defer ResetProvider()

	mock := &MockPathProvider{
		UserConfigDirFn: func() (string, error) {
			return "/mock/config", nil
		},
	}
	SetProvider(mock)

	if Provider != mock {
		t.Error("SetProvider did not set the provider")
	}
}

func TestResetProvider(t *testing.T) {
	SetProvider(&MockPathProvider{})
	ResetProvider()

	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Errorf("Expected DefaultPathProvider after reset, got %T", Provider)
	}
}

func TestAppFile(t *testing.T) {
	defer ResetProvider()
	tmpDir := t.TempDir()
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return tmpDir, nil },
		MkdirAllFn:      os.MkdirAll,
	})

	path, err := AppFile("state.json")
	if err != nil {
		t.Fatalf("AppFile returned error: %v", err)
	}

	expected := filepath.Join(tmpDir, AppName, "state.json")
	if path != expected {
		t.Errorf("AppFile = %q, expected %q", path, expected)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("AppFile did not create the app directory: %v", err)
	}
}

func TestAppFile_UserConfigDirError(t *testing.T) {
	defer ResetProvider()
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "", errors.New("no home") },
	})

	if _, err := AppFile("config.toml"); err == nil {
		t.Error("Expected error when UserConfigDir fails")
	}
}

func TestAppFile_MkdirAllError(t *testing.T) {
	defer ResetProvider()
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "/mock", nil },
		MkdirAllFn: func(path string, perm os.FileMode) error {
			return errors.New("permission denied")
		},
	})

	if _, err := AppFile("config.toml"); err == nil {
		t.Error("Expected error when MkdirAll fails")
	}
}
