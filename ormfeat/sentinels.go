package ormfeat

import (
	"context"
	"strconv"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "sentinel-values",
		Summary: "Sentinel values: distinguishing \"not configured\" from zero",
		Run:     runSentinels,
	})
}

// ReorderLevel is the stock level at which a product is reordered.
// The sentinel ReorderLevelUnset means "not configured", which is a different
// statement than a configured level of zero (never reorder).
type ReorderLevel int

// ReorderLevelUnset is the reserved sentinel written by the column default.
const ReorderLevelUnset ReorderLevel = -1

// Configured reports whether a real level has been chosen.
func (r ReorderLevel) Configured() bool {
	return r != ReorderLevelUnset
}

// String renders the sentinel readably.
func (r ReorderLevel) String() string {
	if !r.Configured() {
		return "not configured"
	}
	return strconv.Itoa(int(r))
}

func runSentinels(ctx context.Context, p *tour.Printer) error {
	db, err := openDemoDB()
	if err != nil {
		return err
	}

	p.Step("constructor validation rejects toy input before it reaches the database")
	if _, err := NewProduct("SKU-000", "", 10); err != nil {
		p.Caught(err)
	}
	if _, err := NewProduct("SKU-000", "Washer", -5); err != nil {
		p.Caught(err)
	}

	p.Step("a product created without a reorder level gets the column default")
	bolt, err := NewProduct("SKU-001", "Steel bolt", 2.50)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(bolt).Error; err != nil {
		return err
	}

	var loaded Product
	if err := db.WithContext(ctx).First(&loaded, bolt.ID).Error; err != nil {
		return err
	}
	p.Value("reorder level", loaded.ReorderLevel)
	p.Value("configured", loaded.ReorderLevel.Configured())

	p.Step("an explicit zero is a real configuration, not the sentinel")
	// The zero value would normally be swallowed by the column default, so
	// the update names the column explicitly.
	if err := db.WithContext(ctx).Model(&loaded).
		Update("reorder_level", ReorderLevel(0)).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).First(&loaded, bolt.ID).Error; err != nil {
		return err
	}
	p.Value("reorder level", loaded.ReorderLevel)
	p.Value("configured", loaded.ReorderLevel.Configured())

	p.Step("queries can select the unconfigured rows by the sentinel")
	var unconfigured int64
	if err := db.WithContext(ctx).Model(&Product{}).
		Where("reorder_level = ?", ReorderLevelUnset).
		Count(&unconfigured).Error; err != nil {
		return err
	}
	p.Value("unconfigured products", unconfigured)

	return nil
}
