package database

import (
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxConnectAttempts  = 5
	initialConnectDelay = time.Second
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// 连接重试采用指数退避，超过次数上限后交给进程监控处理
	var db *gorm.DB
	var err error
	delay := initialConnectDelay
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		})
		if err == nil {
			break
		}
		if attempt == maxConnectAttempts {
			return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxConnectAttempts, err)
		}
		log.Printf("Database connection failed (attempt %d/%d), retrying in %s: %v", attempt, maxConnectAttempts, delay, err)
		time.Sleep(delay)
		delay *= 2
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Admin{},
		&model.Quiz{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
