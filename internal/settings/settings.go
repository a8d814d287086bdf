// Package settings persists the user's last choices between runs.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/saylorsolutions/pixmask/pkg/pixmask"
	"github.com/spf13/viper"
)

const (
	keyLastFolder = "last_folder"
	keyLastKey    = "last_key"
)

var (
	ErrCorrupt = errors.New("unable to read settings file")
)

// Settings is the persisted record.
type Settings struct {
	LastFolder string `mapstructure:"last_folder"`
	LastKey    string `mapstructure:"last_key"`
}

// Store holds Settings loaded from a file, and writes them back with Save.
type Store struct {
	Settings
	path string
	v    *viper.Viper
}

// DefaultPath returns the settings file location within the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pixmask", "settings.json"), nil
}

// Load reads settings from path.
// A missing file is not an error.
// A file that can't be parsed yields a usable Store with default Settings, along with an error wrapping ErrCorrupt.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(keyLastFolder, "")
	v.SetDefault(keyLastKey, "")
	s := &Store{
		path: path,
		v:    v,
	}

	var loadErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			loadErr = fmt.Errorf("%w '%s': %v", ErrCorrupt, path, err)
		}
	}
	if err := v.Unmarshal(&s.Settings); err != nil {
		s.Settings = Settings{}
		if loadErr == nil {
			loadErr = fmt.Errorf("%w '%s': %v", ErrCorrupt, path, err)
		}
	}
	return s, loadErr
}

// Path is the file the Store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// SetLastFolder records folder as an absolute path, so it still names the same folder when run from another working directory.
func (s *Store) SetLastFolder(folder string) error {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return fmt.Errorf("unable to resolve folder '%s': %w", folder, err)
	}
	s.LastFolder = abs
	return nil
}

func (s *Store) SetLastKey(key pixmask.Key) {
	s.LastKey = key.String()
}

// Key returns the last used key, if one was saved and is still valid.
func (s *Store) Key() (pixmask.Key, bool) {
	if len(s.LastKey) == 0 {
		return 0, false
	}
	key, err := pixmask.ParseKey(s.LastKey)
	if err != nil {
		return 0, false
	}
	return key, true
}

// Save writes the current Settings back to the Store's path, creating parent directories as needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	s.v.Set(keyLastFolder, s.LastFolder)
	s.v.Set(keyLastKey, s.LastKey)
	return s.v.WriteConfigAs(s.path)
}
