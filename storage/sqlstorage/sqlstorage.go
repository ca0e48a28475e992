package sqlstorage

// 将进化记录批量写入MySQL，作为json文件之外的可选镜像；嵌套字段以json文本存储

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dszqbsm/evocrawler/evolution"
	"github.com/dszqbsm/evocrawler/sqldb"
	"go.uber.org/zap"
)

// 表结构，列顺序与记录字段顺序一致
var columnNames = []sqldb.Field{
	{Title: "id", Type: "VARCHAR(255) NOT NULL"},
	{Title: "name", Type: "VARCHAR(255)"},
	{Title: "url", Type: "VARCHAR(512)"},
	{Title: "unlock_date", Type: "VARCHAR(10)"},
	{Title: "expires_on", Type: "VARCHAR(10)"},
	{Title: "cost", Type: "VARCHAR(64)"},
	{Title: "requirements", Type: "MEDIUMTEXT"},
	{Title: "total_upgrades", Type: "MEDIUMTEXT"},
	{Title: "challenges", Type: "MEDIUMTEXT"},
	{Title: "upgrades", Type: "MEDIUMTEXT"},
	{Title: "new_positions", Type: "MEDIUMTEXT"},
	{Title: "playstyles_added", Type: "MEDIUMTEXT"},
	{Title: "playstyles_plus_added", Type: "MEDIUMTEXT"},
	{Title: "final_bonus", Type: "MEDIUMTEXT"},
}

type SqlStore struct {
	mu           sync.Mutex
	dataDocker   []*evolution.Record // 用于缓存待插入数据库的记录
	db           sqldb.DBer          // 数据库操作接口
	tableCreated bool
	options
}

// SqlStore的构造函数，未通过WithDB传入数据库实例时根据sqlURL建立连接
func New(opts ...Option) (*SqlStore, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.BatchCount <= 0 {
		options.BatchCount = defaultOptions.BatchCount
	}
	s := &SqlStore{}
	s.options = options
	s.db = options.dber
	if s.db == nil {
		db, err := sqldb.New(
			sqldb.WithConnURL(s.sqlURL),
			sqldb.WithLogger(s.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("open sql storage failed: %w", err)
		}
		s.db = db
	}
	return s, nil
}

/*
输入一条或多条记录，输出一个error

首次保存时建表；缓存的记录达到批量数时写入数据库
*/
func (s *SqlStore) Save(records ...*evolution.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tableCreated {
		err := s.db.CreateTable(sqldb.TableData{
			TableName:   s.table,
			ColumnNames: columnNames,
			PrimaryKey:  "id",
		})
		if err != nil {
			return fmt.Errorf("create table %s failed: %w", s.table, err)
		}
		s.tableCreated = true
	}

	for _, rec := range records {
		s.dataDocker = append(s.dataDocker, rec)
		if len(s.dataDocker) >= s.BatchCount {
			if err := s.flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SqlStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}

// 将dataDocker中的记录批量写入数据库，无论成功与否都清空缓存
func (s *SqlStore) flush() error {
	if len(s.dataDocker) == 0 {
		return nil
	}
	defer func() {
		s.dataDocker = nil
	}()

	args := make([]interface{}, 0, len(s.dataDocker)*len(columnNames))
	for _, rec := range s.dataDocker {
		row, err := rowOf(rec)
		if err != nil {
			return err
		}
		args = append(args, row...)
	}

	err := s.db.Insert(sqldb.TableData{
		TableName:   s.table,
		ColumnNames: columnNames,
		Args:        args,
		DataCount:   len(s.dataDocker),
		Replace:     true,
	})
	if err != nil {
		s.logger.Error("insert data failed", zap.Error(err), zap.Int("count", len(s.dataDocker)))
		return err
	}
	return nil
}

// 把一条记录展开为一行参数，嵌套字段编码为json
func rowOf(rec *evolution.Record) ([]interface{}, error) {
	row := []interface{}{rec.ID, rec.Name, rec.URL, rec.UnlockDate, rec.ExpiresOn, rec.Cost}
	for _, v := range []interface{}{
		rec.Requirements,
		rec.TotalUpgrades,
		rec.Challenges,
		rec.Upgrades,
		rec.NewPositions,
		rec.PlaystylesAdded,
		rec.PlaystylesPlusAdded,
		rec.FinalBonus,
	} {
		j, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode record %s failed: %w", rec.ID, err)
		}
		row = append(row, string(j))
	}
	return row, nil
}
