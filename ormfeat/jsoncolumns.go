package ormfeat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "json-columns",
		Summary: "JSON columns: schemaless attributes with path queries",
		Run:     runJSONColumns,
	})
}

func runJSONColumns(ctx context.Context, p *tour.Printer) error {
	db, err := openDemoDB()
	if err != nil {
		return err
	}

	p.Step("free-form attributes live in a JSON column next to typed ones")
	red, err := NewProduct("SKU-200", "Enamel mug", 7.50)
	if err != nil {
		return err
	}
	red.Attributes = datatypes.JSON(`{"color": "red", "capacity_ml": 300, "dishwasher_safe": true}`)
	blue, err := NewProduct("SKU-201", "Enamel mug XL", 9.50)
	if err != nil {
		return err
	}
	blue.Attributes = datatypes.JSON(`{"color": "blue", "capacity_ml": 450}`)
	if err := db.WithContext(ctx).Create([]*Product{red, blue}).Error; err != nil {
		return err
	}

	p.Step("JSON path queries filter on fields inside the column")
	var redMugs []Product
	if err := db.WithContext(ctx).
		Where(datatypes.JSONQuery("attributes").Equals("red", "color")).
		Find(&redMugs).Error; err != nil {
		return err
	}
	p.Value("products with color=red", len(redMugs))

	p.Step("key presence is queryable too")
	var safeMarked []Product
	if err := db.WithContext(ctx).
		Where(datatypes.JSONQuery("attributes").HasKey("dishwasher_safe")).
		Find(&safeMarked).Error; err != nil {
		return err
	}
	p.Value("products declaring dishwasher_safe", len(safeMarked))

	p.Step("a serialized struct list works the same way on orders")
	order := Order{
		PublicID: uuid.NewString(),
		Lines: []OrderLine{
			{SKU: "SKU-200", Quantity: 2, Price: 7.50},
			{SKU: "SKU-201", Quantity: 1, Price: 9.50},
		},
		ShippingAddress: Address{Street: "5 Port Rd", City: "Izmir", Country: "TR"},
		Total:           24.50,
		PlacedAt:        time.Now(),
	}
	if err := db.WithContext(ctx).Create(&order).Error; err != nil {
		return err
	}
	var loaded Order
	if err := db.WithContext(ctx).First(&loaded, order.ID).Error; err != nil {
		return err
	}
	p.Dump("order lines after round trip", loaded.Lines)

	return nil
}
