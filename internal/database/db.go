// Package database mirrors created orders into a relational store with
// append/list semantics. Durability is not guaranteed; the session ledger
// stays authoritative and the store is a best-effort shadow.
package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL dialect
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite dialect
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"greenchain/internal/models"
)

// OrderRecord is the stored form of a created order.
type OrderRecord struct {
	gorm.Model
	LedgerID               int
	ItemName               string
	Quantity               int
	UnitPrice              float64
	TotalPrice             float64
	DeliveryAddress        string
	Phone                  string
	PlacedAt               time.Time
	EstimatedDeliveryHours int
}

// Store persists orders through gorm.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured dialect ("sqlite3" or "postgres") and
// migrates the order table.
func Open(dialect, source string) (*Store, error) {
	db, err := gorm.Open(dialect, source)
	if err != nil {
		return nil, fmt.Errorf("open %s order store: %w", dialect, err)
	}
	if err := db.AutoMigrate(&OrderRecord{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate order store: %w", err)
	}
	return &Store{db: db}, nil
}

// Append stores one created order.
func (s *Store) Append(order models.Order) error {
	record := OrderRecord{
		LedgerID:               order.ID,
		ItemName:               order.ItemName,
		Quantity:               order.Quantity,
		UnitPrice:              order.UnitPrice,
		TotalPrice:             order.TotalPrice,
		DeliveryAddress:        order.DeliveryAddress,
		Phone:                  order.Phone,
		PlacedAt:               order.CreatedAt,
		EstimatedDeliveryHours: order.EstimatedDeliveryHours,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("append order %d: %w", order.ID, err)
	}
	return nil
}

// List returns all stored orders in creation order.
func (s *Store) List() ([]models.Order, error) {
	var records []OrderRecord
	if err := s.db.Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]models.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, models.Order{
			ID:                     r.LedgerID,
			ItemName:               r.ItemName,
			Quantity:               r.Quantity,
			UnitPrice:              r.UnitPrice,
			TotalPrice:             r.TotalPrice,
			DeliveryAddress:        r.DeliveryAddress,
			Phone:                  r.Phone,
			CreatedAt:              r.PlacedAt,
			EstimatedDeliveryHours: r.EstimatedDeliveryHours,
		})
	}
	return orders, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}
