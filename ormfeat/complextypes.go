package ormfeat

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "complex-types",
		Summary: "Value objects: embedded structs stored inline with the owner",
		Run:     runComplexTypes,
	})
}

func runComplexTypes(ctx context.Context, p *tour.Printer) error {
	db, err := openDemoDB()
	if err != nil {
		return err
	}

	p.Step("a customer owns two address value objects with distinct prefixes")
	cust := Customer{
		PublicID: uuid.NewString(),
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		ShippingAddress: Address{
			Street: "1 Analytical Way", City: "London", Zip: "EC1", Country: "UK",
		},
		BillingAddress: Address{
			Street: "2 Difference St", City: "London", Zip: "EC2", Country: "UK",
		},
	}
	if err := db.WithContext(ctx).Create(&cust).Error; err != nil {
		return err
	}

	p.Step("the value objects become prefixed columns on the customers table")
	columns, err := db.WithContext(ctx).Migrator().ColumnTypes(&Customer{})
	if err != nil {
		return err
	}
	var addressColumns []string
	for _, col := range columns {
		name := col.Name()
		if strings.HasPrefix(name, "shipping_") || strings.HasPrefix(name, "billing_") {
			addressColumns = append(addressColumns, name)
		}
	}
	p.Value("address columns", addressColumns)

	p.Step("there is no addresses table; the value object has no identity")
	p.Value("HasTable(addresses)", db.WithContext(ctx).Migrator().HasTable("addresses"))

	p.Step("loading the owner rehydrates the nested values")
	var loaded Customer
	if err := db.WithContext(ctx).First(&loaded, cust.ID).Error; err != nil {
		return err
	}
	p.Dump("shipping address", loaded.ShippingAddress)

	p.Step("value-object fields are queryable through their columns")
	var inLondon int64
	if err := db.WithContext(ctx).Model(&Customer{}).
		Where("shipping_city = ?", "London").
		Count(&inLondon).Error; err != nil {
		return err
	}
	p.Value("customers shipping to London", inLondon)

	return nil
}
