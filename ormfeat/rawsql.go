package ormfeat

import (
	"context"

	"github.com/Fcakiroglu16/gofeatures/filterdsl"
	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "raw-sql",
		Summary: "Raw SQL: parameter binding and composed filter clauses",
		Run:     runRawSQL,
	})
}

// priceRow is the scan target for the raw projection below.
type priceRow struct {
	Name  string
	Price float64
}

func runRawSQL(ctx context.Context, p *tour.Printer) error {
	db, err := openDemoDB()
	if err != nil {
		return err
	}

	seed := []struct {
		sku, name string
		price     float64
	}{
		{"SKU-300", "Steel bolt", 150},
		{"SKU-301", "Steel nut", 80},
		{"SKU-302", "Gold bolt", 90},
	}
	for _, s := range seed {
		prod, err := NewProduct(s.sku, s.name, s.price)
		if err != nil {
			return err
		}
		if err := db.WithContext(ctx).Create(prod).Error; err != nil {
			return err
		}
	}

	p.Step("Raw runs hand-written SQL with bound parameters")
	var rows []priceRow
	if err := db.WithContext(ctx).Raw(
		"SELECT name, price FROM products WHERE price > ? ORDER BY price DESC", 85.0).
		Scan(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		p.Value(row.Name, row.Price)
	}

	p.Step("Exec applies mutations and reports affected rows")
	res := db.WithContext(ctx).Exec(
		"UPDATE products SET price = price * ? WHERE name LIKE ?", 1.1, "Steel%")
	if res.Error != nil {
		return res.Error
	}
	p.Value("rows updated", res.RowsAffected)

	p.Step("a parsed filter expression composes into the WHERE clause")
	input := `price > 100 and name contains "bolt"`
	p.Value("filter input", input)
	clause, args, err := filterdsl.Where(input)
	if err != nil {
		return err
	}
	p.Value("compiled clause", clause)

	var matches []priceRow
	if err := db.WithContext(ctx).Raw(
		"SELECT name, price FROM products WHERE "+clause, args...).
		Scan(&matches).Error; err != nil {
		return err
	}
	for _, row := range matches {
		p.Value(row.Name, row.Price)
	}

	p.Step("a bad filter is caught before any SQL runs")
	if _, _, err := filterdsl.Where(`price >`); err != nil {
		p.Caught(err)
	}

	return nil
}
