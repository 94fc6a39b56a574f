package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	repo "app/internal/repository"
)

// ファイル1個にkey→valueのJSONマップを保存するKVStore。
// localStorage相当：1値あたりの容量制限あり、書き込みはtmp+renameで原子的に行う。
type KVFileStore struct {
	mu            sync.Mutex
	path          string
	maxValueBytes int
}

func NewKVFileStore(path string, maxValueBytes int) (*KVFileStore, error) {
	if path == "" {
		return nil, errors.New("kv file path is required")
	}
	if maxValueBytes <= 0 {
		return nil, errors.New("max value bytes must be > 0")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create kv dir: %w", err)
	}

	return &KVFileStore{path: path, maxValueBytes: maxValueBytes}, nil
}

func (s *KVFileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadLocked()
	if err != nil {
		return "", err
	}

	v, ok := m[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (s *KVFileStore) Set(ctx context.Context, key string, value string) error {
	//容量チェック
	if len(value) > s.maxValueBytes {
		return repo.ErrQuotaExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadLocked()
	if err != nil {
		//ファイルごと壊れている場合は作り直す
		m = map[string]string{}
	}

	m[key] = value
	return s.saveLocked(m)
}

func (s *KVFileStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.loadLocked()
	if err != nil {
		//読めないスロットは破棄扱い
		return os.Remove(s.path)
	}

	if _, ok := m[key]; !ok {
		return nil
	}

	delete(m, key)
	return s.saveLocked(m)
}

func (s *KVFileStore) loadLocked() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kv file: %w", err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse kv file: %w", err)
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

func (s *KVFileStore) saveLocked(m map[string]string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode kv file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write kv file: %w", err)
	}
	return os.Rename(tmp, s.path)
}
