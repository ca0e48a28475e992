package storage

import (
	"github.com/dszqbsm/evocrawler/evolution"
	"go.uber.org/multierr"
)

// 定义了存储引擎的统一规范
type Storage interface {
	/*
	   输入一条或多条记录，输出一个error

	   该方法用于将记录加入存储，具体何时落盘由实现决定
	*/
	Save(records ...*evolution.Record) error
	/*
	   无输入，输出一个error

	   该方法用于把尚未写出的记录全部写出
	*/
	Flush() error
}

type multiStorage []Storage

// 将多个存储组合为一个，依次写入每个存储，错误合并后返回
func Multi(storages ...Storage) Storage {
	return multiStorage(storages)
}

func (m multiStorage) Save(records ...*evolution.Record) error {
	var err error
	for _, s := range m {
		err = multierr.Append(err, s.Save(records...))
	}
	return err
}

func (m multiStorage) Flush() error {
	var err error
	for _, s := range m {
		err = multierr.Append(err, s.Flush())
	}
	return err
}
