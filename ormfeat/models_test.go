package ormfeat

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(Options{DSN: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestNewProduct_Validation(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := NewProduct("SKU-1", "   ", 10)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewProduct("SKU-1", "Washer", -0.01)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "price", verr.Field)
	})

	t.Run("valid", func(t *testing.T) {
		prod, err := NewProduct("SKU-1", "Washer", 0.10)
		require.NoError(t, err)
		assert.Equal(t, "Washer", prod.Name)
	})
}

func TestCustomer_EmbeddedAddressRoundTrip(t *testing.T) {
	db := openTestDB(t)

	cust := Customer{
		PublicID:        uuid.NewString(),
		Name:            "Grace Hopper",
		Email:           "grace@example.com",
		ShippingAddress: Address{Street: "1 Harbor Rd", City: "Arlington", Zip: "22201", Country: "US"},
		BillingAddress:  Address{Street: "9 Navy Yard", City: "Washington", Zip: "20374", Country: "US"},
	}
	require.NoError(t, db.Create(&cust).Error)

	var loaded Customer
	require.NoError(t, db.First(&loaded, cust.ID).Error)
	assert.Empty(t, cmp.Diff(cust.ShippingAddress, loaded.ShippingAddress))
	assert.Empty(t, cmp.Diff(cust.BillingAddress, loaded.BillingAddress))

	var count int64
	require.NoError(t, db.Model(&Customer{}).
		Where("billing_city = ?", "Washington").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCustomer_AddressesHaveNoOwnTable(t *testing.T) {
	db := openTestDB(t)

	assert.False(t, db.Migrator().HasTable("addresses"))

	columns, err := db.Migrator().ColumnTypes(&Customer{})
	require.NoError(t, err)
	var prefixed []string
	for _, col := range columns {
		name := col.Name()
		if strings.HasPrefix(name, "shipping_") || strings.HasPrefix(name, "billing_") {
			prefixed = append(prefixed, name)
		}
	}
	assert.Contains(t, prefixed, "shipping_street")
	assert.Contains(t, prefixed, "billing_country")
	assert.Len(t, prefixed, 8)
}

func TestProduct_PrimitiveListsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	prod, err := NewProduct("SKU-10", "Steel bolt", 2.50)
	require.NoError(t, err)
	prod.Tags = []string{"steel", "fastener", "m8"}
	prod.Ratings = []int64{5, 4, 5}
	require.NoError(t, db.Create(prod).Error)

	var loaded Product
	require.NoError(t, db.First(&loaded, prod.ID).Error)
	assert.Empty(t, cmp.Diff(prod.Tags, loaded.Tags))
	assert.Empty(t, cmp.Diff(prod.Ratings, loaded.Ratings))

	// The slices occupy single columns on the row, not a side table.
	var rawTags string
	require.NoError(t, db.Raw(
		"SELECT tags FROM products WHERE id = ?", prod.ID).Scan(&rawTags).Error)
	assert.Contains(t, rawTags, `"fastener"`)
}

func TestProduct_MsgpackMetadataRoundTrip(t *testing.T) {
	db := openTestDB(t)

	prod, err := NewProduct("SKU-11", "Brass gear", 11.00)
	require.NoError(t, err)
	prod.Metadata = ProductMetadata{
		Brand:      "Acme",
		Color:      "brass",
		Dimensions: map[string]float64{"diameter_mm": 42, "width_mm": 8},
	}
	require.NoError(t, db.Create(prod).Error)

	var loaded Product
	require.NoError(t, db.First(&loaded, prod.ID).Error)
	assert.Empty(t, cmp.Diff(prod.Metadata, loaded.Metadata))
}

func TestProduct_JSONAttributeQueries(t *testing.T) {
	db := openTestDB(t)

	red, err := NewProduct("SKU-20", "Enamel mug", 7.50)
	require.NoError(t, err)
	red.Attributes = datatypes.JSON(`{"color": "red", "dishwasher_safe": true}`)
	blue, err := NewProduct("SKU-21", "Enamel mug XL", 9.50)
	require.NoError(t, err)
	blue.Attributes = datatypes.JSON(`{"color": "blue"}`)
	require.NoError(t, db.Create([]*Product{red, blue}).Error)

	var byColor []Product
	require.NoError(t, db.
		Where(datatypes.JSONQuery("attributes").Equals("red", "color")).
		Find(&byColor).Error)
	require.Len(t, byColor, 1)
	assert.Equal(t, "SKU-20", byColor[0].SKU)

	var byKey []Product
	require.NoError(t, db.
		Where(datatypes.JSONQuery("attributes").HasKey("dishwasher_safe")).
		Find(&byKey).Error)
	require.Len(t, byKey, 1)
	assert.Equal(t, "SKU-20", byKey[0].SKU)
}

func TestOrder_LinesRoundTrip(t *testing.T) {
	db := openTestDB(t)

	order := Order{
		PublicID: uuid.NewString(),
		Lines: []OrderLine{
			{SKU: "SKU-20", Quantity: 2, Price: 7.50},
			{SKU: "SKU-21", Quantity: 1, Price: 9.50},
		},
		ShippingAddress: Address{Street: "5 Port Rd", City: "Izmir", Country: "TR"},
		Total:           24.50,
	}
	require.NoError(t, db.Create(&order).Error)

	var loaded Order
	require.NoError(t, db.First(&loaded, order.ID).Error)
	assert.Empty(t, cmp.Diff(order.Lines, loaded.Lines))
	assert.Equal(t, "Izmir", loaded.ShippingAddress.City)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "price", Message: "must not be negative"}
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "must not be negative")

	wrapped := errors.Join(errors.New("create product"), err)
	var verr *ValidationError
	assert.ErrorAs(t, wrapped, &verr)
}
