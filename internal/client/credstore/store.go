// Package credstore is the on-device secure credential store: the bearer
// token and the cached user profile, plus the language preference.
//
// Token and profile form one record. Save and Clear touch both keys inside
// a single transaction, so a crash can never leave only one of them behind
// through this package. Load still reports whatever it finds, because the
// database may have been written by an older client or edited by hand.
package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/medfinder/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/medfinder/internal/common"
	"github.com/dmitrijs2005/medfinder/internal/cryptox"
	"github.com/dmitrijs2005/medfinder/internal/dbx"
)

var (
	// ErrStorage wraps every failure of the underlying database or sealing.
	ErrStorage = errors.New("storage error")
	// ErrIncomplete is returned by Save when either half of the record is empty.
	ErrIncomplete = errors.New("credential record incomplete")
)

var keySalt = []byte("medfinder/credstore/v1")

// Credentials is the persisted record. A zero field means the key is absent.
type Credentials struct {
	Token    string
	UserJSON []byte
}

// Complete reports whether both halves are present.
func (c Credentials) Complete() bool {
	return c.Token != "" && len(c.UserJSON) > 0
}

// Empty reports whether both halves are absent.
func (c Credentials) Empty() bool {
	return c.Token == "" && len(c.UserJSON) == 0
}

type Store struct {
	db  *sql.DB
	key []byte
}

// New binds a Store to a migrated database. secret is the device secret
// (see cryptox.LoadOrCreateSecret).
func New(db *sql.DB, secret []byte) *Store {
	return &Store{db: db, key: cryptox.DeriveKey(secret, keySalt)}
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func (s *Store) open(key string, sealed []byte) ([]byte, error) {
	plain, err := cryptox.Open(s.key, sealed)
	if err != nil {
		return nil, storageErr("open "+key, err)
	}
	return plain, nil
}

// Load reads the record. Absent keys yield zero fields; a present key
// that cannot be unsealed is an ErrStorage error.
func (s *Store) Load(ctx context.Context) (Credentials, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	values, err := repo.GetMany(ctx, common.TokenKey, common.UserKey)
	if err != nil {
		return Credentials{}, storageErr("load", err)
	}

	var c Credentials
	if sealed, ok := values[common.TokenKey]; ok {
		token, err := s.open(common.TokenKey, sealed)
		if err != nil {
			return Credentials{}, err
		}
		c.Token = string(token)
	}
	if sealed, ok := values[common.UserKey]; ok {
		user, err := s.open(common.UserKey, sealed)
		if err != nil {
			return Credentials{}, err
		}
		c.UserJSON = user
	}
	return c, nil
}

// Save writes token and profile in one transaction: both or neither.
func (s *Store) Save(ctx context.Context, c Credentials) error {
	if !c.Complete() {
		return ErrIncomplete
	}

	sealedToken, err := cryptox.Seal(s.key, []byte(c.Token))
	if err != nil {
		return storageErr("seal token", err)
	}
	sealedUser, err := cryptox.Seal(s.key, c.UserJSON)
	if err != nil {
		return storageErr("seal user", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenKey, sealedToken); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserKey, sealedUser)
	})
	if err != nil {
		return storageErr("save", err)
	}
	return nil
}

// Clear deletes token and profile together. The language preference is kept.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.TokenKey, common.UserKey)
	})
	if err != nil {
		return storageErr("clear", err)
	}
	return nil
}

// Language returns the stored language preference or "" when unset.
// It is not sensitive and stored unsealed.
func (s *Store) Language(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.LanguageKey)
	if err != nil {
		return "", storageErr("load language", err)
	}
	return string(v), nil
}

func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	if err := metadata.NewSQLiteRepository(s.db).Set(ctx, common.LanguageKey, []byte(lang)); err != nil {
		return storageErr("save language", err)
	}
	return nil
}
