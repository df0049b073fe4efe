package credstore

//go:generate go run go.uber.org/mock/mockgen -source=./credstore.go -destination=./mocks/credstore_mock.go -package=mocks

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"boothdesk/config"
	"boothdesk/infras/backend"
)

// Keys mirror the browser front-end's local storage entries.
const (
	keyUsername = "adminUser"
	keyPassword = "adminPass"
	keyLanguage = "lang"

	defaultLanguage = "en"

	storeFileName = "credentials.json"
	storeFileMode = 0o600
	storeDirMode  = 0o700
)

// Store is the single source of truth for the admin identity, plus the
// language preference flag. Every operation is total over the storage
// medium's availability: a missing or unreadable file reads as unset, and
// write problems are logged and swallowed.
type Store interface {
	Read() backend.Credentials
	Save(username, password string)
	Clear()
	Language() string
	SaveLanguage(lang string)
}

type storeImpl struct {
	path string
}

func New(cfg *config.Config) Store {
	path := cfg.Credentials.File

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.Warn().Err(err).Msg("No user config dir available, credential store is non-persistent")

			return &storeImpl{}
		}

		path = filepath.Join(dir, "boothdesk", storeFileName)
	}

	return &storeImpl{path: path}
}

// Read returns the stored pair, or an empty pair when nothing is stored or
// the medium is unavailable.
func (s *storeImpl) Read() backend.Credentials {
	entries := s.load()

	return backend.Credentials{
		Username: entries[keyUsername],
		Password: entries[keyPassword],
	}
}

// Save overwrites any existing stored pair. Validation happens at login
// time, not here.
func (s *storeImpl) Save(username, password string) {
	entries := s.load()
	entries[keyUsername] = username
	entries[keyPassword] = password

	s.persist(entries)
}

// Clear removes both credential fields. Calling it with nothing stored is a
// no-op.
func (s *storeImpl) Clear() {
	entries := s.load()
	delete(entries, keyUsername)
	delete(entries, keyPassword)

	s.persist(entries)
}

func (s *storeImpl) Language() string {
	entries := s.load()

	if lang := entries[keyLanguage]; lang != "" {
		return lang
	}

	return defaultLanguage
}

func (s *storeImpl) SaveLanguage(lang string) {
	entries := s.load()
	entries[keyLanguage] = lang

	s.persist(entries)
}

func (s *storeImpl) load() map[string]string {
	entries := map[string]string{}

	if s.path == "" {
		return entries
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return entries
	}

	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Credential store file is unreadable, treating as unset")

		return map[string]string{}
	}

	return entries
}

func (s *storeImpl) persist(entries map[string]string) {
	if s.path == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to create credential store dir")

		return
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode credential store entries")

		return
	}

	if err := os.WriteFile(s.path, raw, storeFileMode); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Failed to write credential store file")
	}
}
