package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kv_entriesテーブルに保存するKVStore（DATABASE_URL指定時）。
type KVGormStore struct {
	db *gorm.DB
}

// DI
func NewKVGormStore(db *gorm.DB) *KVGormStore {
	return &KVGormStore{db: db}
}

func (s *KVGormStore) Get(ctx context.Context, key string) (string, error) {
	var entry model.KVEntry

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// 同一キーは上書き
func (s *KVGormStore) Set(ctx context.Context, key string, value string) error {
	entry := model.KVEntry{Key: key, Value: value}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error

	//容量系のDBエラーはファイルストアと同じ ErrQuotaExceeded に揃える
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 53100: disk_full, 54000: program_limit_exceeded
		if pgErr.Code == "53100" || pgErr.Code == "54000" {
			return repo.ErrQuotaExceeded
		}
	}
	return err
}

func (s *KVGormStore) Remove(ctx context.Context, key string) error {
	//無いキーの削除はエラーにしない
	return s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.KVEntry{}).Error
}
