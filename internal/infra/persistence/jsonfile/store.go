// Package jsonfile contains the concrete implementation of the persistence
// layer using JSON documents on the local filesystem. The whole state is
// held in memory and written back wholesale after every mutation, which is
// the right trade-off for a single-process store of this size.
package jsonfile

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	catalogFile = "catalog.json"
	usersFile   = "users.json"
)

// catalogDocument is the on-disk shape of catalog.json. It bundles the
// catalog with the order book and the per-user carts and wishlists so a
// single write keeps them consistent.
type catalogDocument struct {
	Products      []*entity.Product  `json:"products"`
	Orders        []*entity.Order    `json:"orders"`
	Carts         []*entity.Cart     `json:"carts"`
	Wishlists     []*entity.Wishlist `json:"wishlists"`
	LastProductID int                `json:"lastProductId"`
	LastOrderID   int                `json:"lastOrderId"`
	LastUpdated   time.Time          `json:"lastUpdated"`
}

// userRecord is the persistence model for a user. The domain entity never
// serializes its password hash, so the store keeps its own shape.
type userRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // bcrypt hash
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}

// usersDocument is the on-disk shape of users.json.
type usersDocument struct {
	Users      []*userRecord `json:"users"`
	LastUserID int           `json:"lastUserId"`
}

func toUserDomain(rec *userRecord) *entity.User {
	return &entity.User{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.Password,
		Role:         entity.Role(rec.Role),
		Phone:        rec.Phone,
		CreatedAt:    rec.CreatedAt,
		LastLogin:    rec.LastLogin,
	}
}

func toUserRecord(user *entity.User) *userRecord {
	return &userRecord{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		Role:      user.Role.String(),
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

// Store owns the in-memory state and its two backing files. A single
// RWMutex guards both documents; reads take the read lock, mutations go
// through updateCatalog/updateUsers which clone, mutate the clone, persist
// it and only then swap the live pointer. A failed write therefore leaves
// the in-memory state at the last persisted snapshot.
type Store struct {
	mu sync.RWMutex

	dataDir string
	logger  *slog.Logger

	catalog *catalogDocument
	users   *usersDocument
}

// Open loads the store from the configured data directory, seeding the
// files with demo data on first run.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}

	s := &Store{dataDir: dataDir, logger: logger}

	catalog, seededCatalog, err := loadOrSeed(s.catalogPath(), seedCatalog)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog document")
	}
	users, seededUsers, err := loadOrSeed(s.usersPath(), seedUsers)
	if err != nil {
		return nil, errors.Wrap(err, "load users document")
	}

	s.catalog = catalog
	s.users = users

	if seededCatalog {
		logger.Info("seeded catalog document", slog.String("path", s.catalogPath()),
			slog.Int("products", len(catalog.Products)))
	}
	if seededUsers {
		logger.Info("seeded users document", slog.String("path", s.usersPath()),
			slog.Int("users", len(users.Users)))
	}

	return s, nil
}

func (s *Store) catalogPath() string {
	return filepath.Join(s.dataDir, catalogFile)
}

func (s *Store) usersPath() string {
	return filepath.Join(s.dataDir, usersFile)
}

// loadOrSeed reads and decodes the document at path, or materializes the
// seed and writes it out when the file does not exist yet.
func loadOrSeed[T any](path string, seed func() *T) (*T, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, false, errors.Wrapf(err, "read %s", path)
		}

		doc := seed()
		if err := writeDocument(path, doc); err != nil {
			return nil, false, err
		}

		return doc, true, nil
	}

	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, false, errors.Wrapf(err, "decode %s", path)
	}

	return doc, false, nil
}

// writeDocument marshals the document and writes it with a temp-file
// rename so a crash mid-write never leaves a truncated file behind.
func writeDocument(path string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}

	return nil
}

// cloneDocument deep-copies a document through its JSON form. Everything
// in the documents is JSON-serializable already, so this is exact.
func cloneDocument[T any](doc *T) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode snapshot")
	}

	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}

	return out, nil
}

// viewCatalog runs fn with the read lock held. fn must not retain or
// mutate anything it is given; it copies what it needs to return.
func (s *Store) viewCatalog(fn func(doc *catalogDocument) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.catalog)
}

func (s *Store) viewUsers(fn func(doc *usersDocument) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.users)
}

// updateCatalog runs fn against a clone of the catalog document, persists
// the clone and swaps it in. When the write fails the live document is
// untouched and a PersistenceError is returned.
func (s *Store) updateCatalog(fn func(doc *catalogDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone, err := cloneDocument(s.catalog)
	if err != nil {
		return err
	}
	if err := fn(clone); err != nil {
		return err
	}
	clone.LastUpdated = time.Now()

	if err := writeDocument(s.catalogPath(), clone); err != nil {
		s.logger.Error("catalog write failed, state rolled back", slog.Any("error", err))

		return domainerrors.NewPersistenceError(err, "catalog document")
	}
	s.catalog = clone

	return nil
}

func (s *Store) updateUsers(fn func(doc *usersDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone, err := cloneDocument(s.users)
	if err != nil {
		return err
	}
	if err := fn(clone); err != nil {
		return err
	}

	if err := writeDocument(s.usersPath(), clone); err != nil {
		s.logger.Error("users write failed, state rolled back", slog.Any("error", err))

		return domainerrors.NewPersistenceError(err, "users document")
	}
	s.users = clone

	return nil
}
