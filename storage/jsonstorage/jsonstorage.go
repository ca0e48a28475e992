package jsonstorage

// 将全部进化记录序列化为一个json数组写入文件：UTF-8，两个空格缩进，非ASCII字符原样保留

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dszqbsm/evocrawler/evolution"
	"go.uber.org/zap"
)

type JSONStore struct {
	mu      sync.Mutex
	records []*evolution.Record // 等待写出的记录
	options
}

func New(opts ...Option) *JSONStore {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &JSONStore{
		records: make([]*evolution.Record, 0),
		options: options,
	}
}

// 缓存记录，写文件发生在Flush
func (s *JSONStore) Save(records ...*evolution.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

/*
无输入，输出一个error

该方法把已缓存的全部记录编码为一个json数组，先写入同目录下的临时文件再重命名，避免中途失败留下半个文件；没有记录时写出[]
*/
func (s *JSONStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Encode(s.records, s.indent)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file failed: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s failed: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename to %s failed: %w", s.path, err)
	}

	s.logger.Debug("json flushed", zap.String("path", s.path), zap.Int("count", len(s.records)))
	return nil
}

// 编码记录列表，不转义<、>、&
func Encode(records []*evolution.Record, indent string) ([]byte, error) {
	if records == nil {
		records = []*evolution.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode records failed: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
