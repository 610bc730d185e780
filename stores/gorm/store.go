// Package gorm provides a GORM-backed token store for the auth provider.
// It supports any database GORM supports and is suitable for applications
// that already carry a relational database for their own state.
//
// # Usage
//
//	db, _ := gorm.Open(sqlite.Open("app.db"), &gorm.Config{})
//	if err := gormstore.AutoMigrate(db); err != nil { ... }
//	store := gormstore.NewTokenStore(db)
//	provider, _ := authprovider.New(cfg, authprovider.WithTokenStore(store))
package gorm

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TokenModel is the table row a stored token maps to.
type TokenModel struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName overrides the GORM default.
func (TokenModel) TableName() string {
	return "auth_tokens"
}

// AutoMigrate creates the token table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&TokenModel{})
}

// TokenStore persists tokens in a relational database via GORM.
type TokenStore struct {
	db *gorm.DB
}

// NewTokenStore creates a token store on an existing GORM connection. The
// caller is responsible for running AutoMigrate first.
func NewTokenStore(db *gorm.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Get returns the value stored under key, or "" if none.
func (s *TokenStore) Get(key string) (string, error) {
	var model TokenModel
	if err := s.db.First(&model, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return model.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *TokenStore) Set(key, value string) error {
	return s.db.Save(&TokenModel{Key: key, Value: value}).Error
}

// Remove deletes the value stored under key.
func (s *TokenStore) Remove(key string) error {
	return s.db.Delete(&TokenModel{}, "key = ?", key).Error
}
