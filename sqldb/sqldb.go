package sqldb

// 定义了用于与MySQL数据库进行交互的功能，包括建表、批量插入

import (
	"database/sql"
	"errors"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// 为数据库操作统一了规范，包括创建表、插入数据
type DBer interface {
	/*
	   输入一个TableData实例，输出一个error

	   该方法用于创建一个MySQL数据库表(若不存在)，根据TableData中的列构造建表语句并执行
	*/
	CreateTable(t TableData) error
	/*
	   输入一个TableData实例，输出一个error

	   该方法用于向MySQL数据库表中批量插入数据，形如INSERT INTO t(a,b) VALUES (?,?),(?,?);
	*/
	Insert(t TableData) error
}

// 表示数据库表中的一个字段，包含字段名和字段类型
type Field struct {
	Title string
	Type  string
}

// 表示要操作的数据库表的数据
type TableData struct {
	TableName   string
	ColumnNames []Field       // 标题字段
	Args        []interface{} // 数据，按行依次展开
	DataCount   int           // 插入数据的行数
	PrimaryKey  string        // 主键列，为空时不设置主键
	Replace     bool          // 使用REPLACE INTO，主键冲突时覆盖旧行
}

// sql数据库实例
type Sqldb struct {
	options
	db *sql.DB
}

/*
输入一个或多个Option实例，输出一个Sqldb实例和一个error

该方法用于创建一个新的Sqldb实例，打开连接并通过ping检查连接是否可用
*/
func New(opts ...Option) (*Sqldb, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	d := &Sqldb{}
	d.options = options
	if err := d.OpenDB(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Sqldb) OpenDB() error {
	db, err := sql.Open("mysql", d.sqlURL)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(d.maxOpenConns)
	db.SetMaxIdleConns(d.maxOpenConns)
	if err = db.Ping(); err != nil {
		db.Close()
		return err
	}
	d.db = db
	return nil
}

func (d *Sqldb) Close() error {
	return d.db.Close()
}

func (d *Sqldb) CreateTable(t TableData) error {
	sql, err := CreateTableSQL(t)
	if err != nil {
		return err
	}
	d.logger.Debug("create table", zap.String("sql", sql))
	_, err = d.db.Exec(sql)
	return err
}

func (d *Sqldb) Insert(t TableData) error {
	sql, err := InsertSQL(t)
	if err != nil {
		return err
	}
	d.logger.Debug("insert table", zap.String("sql", sql), zap.Int("rows", t.DataCount))
	_, err = d.db.Exec(sql, t.Args...)
	return err
}

// 构造建表语句
func CreateTableSQL(t TableData) (string, error) {
	if len(t.ColumnNames) == 0 {
		return "", errors.New("column can not be empty")
	}
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS " + quote(t.TableName) + " (")
	for i, c := range t.ColumnNames {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(quote(c.Title) + " " + c.Type)
	}
	if t.PrimaryKey != "" {
		b.WriteString(",PRIMARY KEY (" + quote(t.PrimaryKey) + ")")
	}
	b.WriteString(") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;")
	return b.String(), nil
}

// 构造批量插入语句，占位符数量为列数乘以行数
func InsertSQL(t TableData) (string, error) {
	if len(t.ColumnNames) == 0 {
		return "", errors.New("empty column")
	}
	if t.DataCount <= 0 {
		return "", errors.New("empty data")
	}
	if len(t.Args) != len(t.ColumnNames)*t.DataCount {
		return "", errors.New("args count does not match columns")
	}

	verb := "INSERT INTO "
	if t.Replace {
		verb = "REPLACE INTO "
	}
	titles := make([]string, 0, len(t.ColumnNames))
	for _, c := range t.ColumnNames {
		titles = append(titles, quote(c.Title))
	}

	blank := ",(" + strings.Repeat(",?", len(t.ColumnNames))[1:] + ")"
	return verb + quote(t.TableName) + "(" + strings.Join(titles, ",") + ") VALUES " +
		strings.Repeat(blank, t.DataCount)[1:] + ";", nil
}

func quote(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
