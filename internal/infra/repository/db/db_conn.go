package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnConfig postgres連線參數
type ConnConfig struct {
	DBName   string
	Host     string
	Port     string
	User     string
	Password string
}

func (c ConnConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// OpenConn 依設定建立gorm連線
func OpenConn(cfg ConnConfig) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return conn, nil
}

// GetDbConn 以個別欄位建立連線，測試直接帶參數比較順手
func GetDbConn(dbname, host, port, user, pas string) (*gorm.DB, error) {
	return OpenConn(ConnConfig{
		DBName:   dbname,
		Host:     host,
		Port:     port,
		User:     user,
		Password: pas,
	})
}
