package ormfeat

import (
	"context"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "primitive-lists",
		Summary: "Primitive-list columns: slices serialized into one column",
		Run:     runPrimitiveLists,
	})
}

func runPrimitiveLists(ctx context.Context, p *tour.Printer) error {
	db, err := openDemoDB()
	if err != nil {
		return err
	}

	p.Step("string and integer slices persist through the json serializer")
	bolt, err := NewProduct("SKU-100", "Steel bolt", 2.50)
	if err != nil {
		return err
	}
	bolt.Tags = []string{"steel", "fastener", "m8"}
	bolt.Ratings = []int64{5, 4, 5}
	if err := db.WithContext(ctx).Create(bolt).Error; err != nil {
		return err
	}

	p.Step("the whole slice lands in a single column of the row")
	var rawTags string
	if err := db.WithContext(ctx).Raw(
		"SELECT tags FROM products WHERE id = ?", bolt.ID).Scan(&rawTags).Error; err != nil {
		return err
	}
	p.Value("stored column text", rawTags)

	p.Step("loading the row rebuilds the slices")
	var loaded Product
	if err := db.WithContext(ctx).First(&loaded, bolt.ID).Error; err != nil {
		return err
	}
	p.Value("tags", loaded.Tags)
	p.Value("ratings", loaded.Ratings)

	p.Step("a struct value serializes the same way, here as a msgpack blob")
	gear, err := NewProduct("SKU-101", "Brass gear", 11.00)
	if err != nil {
		return err
	}
	gear.Metadata = ProductMetadata{
		Brand: "Acme",
		Color: "brass",
		Dimensions: map[string]float64{
			"diameter_mm": 42,
			"width_mm":    8,
		},
	}
	if err := db.WithContext(ctx).Create(gear).Error; err != nil {
		return err
	}
	var reloaded Product
	if err := db.WithContext(ctx).First(&reloaded, gear.ID).Error; err != nil {
		return err
	}
	p.Dump("metadata after round trip", reloaded.Metadata)

	return nil
}
