// Package ormfeat contains the GORM demonstration routines of the tour.
// Each file demonstrates one ORM feature against an in-process sqlite
// database; the demo payload records below are shared fixtures only, they
// carry no domain logic.
package ormfeat

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

// Address is a value object stored inline with its owning record via
// embedded-struct mapping. It has no table and no identity of its own.
type Address struct {
	Street  string `gorm:"size:255"`
	City    string `gorm:"size:128"`
	Zip     string `gorm:"size:32"`
	Country string `gorm:"size:64"`
}

// Customer owns two inline Address value objects with distinct column
// prefixes.
type Customer struct {
	ID              uint    `gorm:"primaryKey"`
	PublicID        string  `gorm:"uniqueIndex;size:36"`
	Name            string  `gorm:"not null;size:255"`
	Email           string  `gorm:"size:255"`
	ShippingAddress Address `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress  Address `gorm:"embedded;embeddedPrefix:billing_"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Category is a tree node stored with a materialized path: the slash-joined
// IDs from the root down to the node, e.g. "/1/4/9/". Prefix queries on the
// path select whole subtrees.
type Category struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null;size:255"`
	Path     string `gorm:"index;size:512"`
	ParentID *uint
	Children []Category `gorm:"foreignKey:ParentID"`
}

// ProductMetadata is a value object persisted as a single msgpack blob
// column.
type ProductMetadata struct {
	Brand      string
	Color      string
	Dimensions map[string]float64
}

// Product exercises serialized list columns, a msgpack blob, a JSON column,
// and the reorder-level sentinel.
type Product struct {
	ID           uint            `gorm:"primaryKey"`
	SKU          string          `gorm:"uniqueIndex;size:100"`
	Name         string          `gorm:"not null;size:255"`
	Price        float64         `gorm:"not null"`
	Tags         []string        `gorm:"serializer:json"`
	Ratings      []int64         `gorm:"serializer:json"`
	Metadata     ProductMetadata `gorm:"serializer:msgpack;type:blob"`
	Attributes   datatypes.JSON
	ReorderLevel ReorderLevel `gorm:"default:-1"`
	CategoryID   *uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "products"
}

// OrderLine is one line of an order, serialized into the order row.
type OrderLine struct {
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order stores its lines as a serialized column and its shipping address
// inline.
type Order struct {
	ID              uint   `gorm:"primaryKey"`
	PublicID        string `gorm:"uniqueIndex;size:36"`
	CustomerID      uint
	Customer        Customer
	Lines           []OrderLine `gorm:"serializer:json"`
	ShippingAddress Address     `gorm:"embedded;embeddedPrefix:shipping_"`
	Total           float64
	PlacedAt        time.Time
}

// NewProduct validates the toy input and returns a Product ready to insert.
func NewProduct(sku, name string, price float64) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if price < 0 {
		return nil, &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return &Product{SKU: sku, Name: name, Price: price}, nil
}

// Options configures Open.
type Options struct {
	// DSN is the sqlite data source. Empty means a private in-memory
	// database.
	DSN string
}

// Open opens the demo database and migrates the payload records.
func Open(opts Options) (*gorm.DB, error) {
	dsn := opts.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}

	// Every pooled connection to ":memory:" gets its own private database,
	// so the pool must stay on a single connection to see the migrated
	// schema.
	if strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("access sqlite pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Customer{}, &Category{}, &Product{}, &Order{}); err != nil {
		return nil, fmt.Errorf("migrate demo schema: %w", err)
	}
	return db, nil
}

// openDemoDB opens the database configured by GOFEATURES_DB_PATH, falling
// back to a private in-memory instance per routine.
func openDemoDB() (*gorm.DB, error) {
	return Open(Options{DSN: os.Getenv(tour.EnvDBPath)})
}
