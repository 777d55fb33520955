package files

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Manager writes output artifacts below a root directory
type Manager struct {
	root string
}

// NewManager creates a new file manager rooted at dir
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// Root returns the managed directory
func (m *Manager) Root() string {
	return m.root
}

// EnsureDirectory creates the root directory with all parents
func (m *Manager) EnsureDirectory() error {
	slog.Debug("Ensuring output directory", slog.String("path", m.root))

	if err := os.MkdirAll(m.root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", m.root, err)
	}
	return nil
}

// Path returns name joined to the root
func (m *Manager) Path(name string) string {
	return filepath.Join(m.root, name)
}

// Remove deletes name below the root. A missing file is not an error.
func (m *Manager) Remove(name string) error {
	if err := os.Remove(m.Path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}

// WriteFile streams the output of write into name. The file is written to a
// temporary sibling first and renamed, so a failed write never leaves a
// truncated artifact behind.
func (m *Manager) WriteFile(name string, write func(io.Writer) error) (string, error) {
	if err := m.EnsureDirectory(); err != nil {
		return "", err
	}

	target := m.Path(name)
	tmp, err := os.CreateTemp(m.root, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to move file into place: %w", err)
	}

	slog.Debug("Wrote file", slog.String("path", target))
	return target, nil
}

// WriteBytes writes data to name
func (m *Manager) WriteBytes(name string, data []byte) (string, error) {
	return m.WriteFile(name, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
