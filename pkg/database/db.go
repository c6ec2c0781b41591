package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/blakejoy/saccom-app/config"
)

// NewDB 初始化 SQLite 数据库连接
// 外键约束始终开启（级联删除的正确性依赖于此）；WAL 模式下读不阻塞写；
// 连接池固定为单连接，与嵌入式存储的单写者模型一致。
func NewDB(cfg *config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		TranslateError: true, // 唯一约束冲突统一转为 gorm.ErrDuplicatedKey
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	// SQLite 单写者：单连接即可避免 SQLITE_BUSY 竞争
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	logger.Info("数据库连接成功", zap.String("path", cfg.Path))

	return db, nil
}

// gormLogLevel 将配置的日志级别映射为 GORM 日志级别
func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}
