package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Session is the locally stored credential state for the current user. It is
// written after a successful login and cleared on logout (explicit or forced
// by a rejected credential).
type Session struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Username     string `json:"username,omitempty"`
}

// LoggedIn reports whether a credential token is present. It says nothing
// about whether the server still accepts it; that is discovered on first use.
func (s *Session) LoggedIn() bool {
	return s != nil && strings.TrimSpace(s.AccessToken) != ""
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.taskdash).
	if v := strings.TrimSpace(os.Getenv("TASKDASH_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdash"), nil
}

func sessionPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

func Load() (*Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func Save(s *Session) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	// Unique temp name + atomic rename so concurrent CLI/TUI processes can't
	// clobber each other's writes. Tokens are secrets: keep the file 0600.
	return atomicWriteFile(dir, "session.json.*.tmp", path, b, 0o600)
}

// Clear removes every stored session value (credential token, refresh token,
// display name). A missing file counts as already cleared.
func Clear() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
