package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalStore keeps each value in its own file under basePath. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// half-written value behind.
type LocalStore struct {
	basePath string
}

func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}
	return &LocalStore{basePath: basePath}, nil
}

func (s *LocalStore) path(key string) string {
	// Keys are fixed identifiers, but guard against path separators anyway.
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.basePath, key)
}

func (s *LocalStore) Get(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

func (s *LocalStore) Set(key, value string) error {
	target := s.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return fmt.Errorf("保存文件失败: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("保存文件失败: %w", err)
	}

	zap.L().Debug("本地状态已写入", zap.String("key", key))
	return nil
}

func (s *LocalStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var _ Store = (*LocalStore)(nil)
