package storage

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/cannadex/cannadex-go/internal/models"
)

var (
	keyToken        = []byte("auth_token")
	keyRefreshToken = []byte("refresh_token")
	keyUser         = []byte("user_data")
)

// SaveSession persists the auth state in one transaction. The refresh token
// is optional; the user is not (see ErrIncompleteSession).
func (s *Store) SaveSession(token, refreshToken string, user *models.User) error {
	if token == "" || user == nil {
		return ErrIncompleteSession
	}
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAuth)
		if err := b.Put(keyToken, []byte(token)); err != nil {
			return err
		}
		if refreshToken != "" {
			if err := b.Put(keyRefreshToken, []byte(refreshToken)); err != nil {
				return err
			}
		} else if err := b.Delete(keyRefreshToken); err != nil {
			return err
		}
		return b.Put(keyUser, userData)
	})
}

// Token returns the stored access token, or "" when logged out.
func (s *Store) Token() (string, error) {
	v, err := s.get(bucketAuth, keyToken)
	return string(v), err
}

// RefreshToken returns the stored refresh token, or "".
func (s *Store) RefreshToken() (string, error) {
	v, err := s.get(bucketAuth, keyRefreshToken)
	return string(v), err
}

// User returns the cached account identity, or nil when logged out.
func (s *Store) User() (*models.User, error) {
	v, err := s.get(bucketAuth, keyUser)
	if err != nil || v == nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(v, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// ClearSession removes all auth state in one transaction.
func (s *Store) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAuth)
		for _, k := range [][]byte{keyToken, keyRefreshToken, keyUser} {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
