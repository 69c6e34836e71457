package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build(t, db)
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithName("PETR4").
//	    WithCategory("Ações").
//	    WithPrice(38.5).
//	    WithQuantity(100).
//	    Build(t, db)
type HoldingBuilder struct {
	ID               string
	Name             string
	Ticker           string
	Category         string
	Price            float64
	Quantity         float64
	Return           float64
	ReturnPercentage float64
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:       MakeID(),
		Name:     "Test Holding",
		Ticker:   "TEST11",
		Category: "Fundos",
		Price:    100,
		Quantity: 10,
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.Name = name
	return b
}

// WithTicker sets a custom ticker.
func (b *HoldingBuilder) WithTicker(ticker string) *HoldingBuilder {
	b.Ticker = ticker
	return b
}

// WithCategory sets a custom category label.
func (b *HoldingBuilder) WithCategory(category string) *HoldingBuilder {
	b.Category = category
	return b
}

// WithPrice sets a custom unit price.
func (b *HoldingBuilder) WithPrice(price float64) *HoldingBuilder {
	b.Price = price
	return b
}

// WithQuantity sets a custom quantity.
func (b *HoldingBuilder) WithQuantity(quantity float64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithReturn sets the absolute return and return percentage.
func (b *HoldingBuilder) WithReturn(value, percentage float64) *HoldingBuilder {
	b.Return = value
	b.ReturnPercentage = percentage
	return b
}

// Build creates the holding in the database and returns it. The total is
// derived from price and quantity, matching the service invariant.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	total := b.Price * b.Quantity

	query := `
		INSERT INTO holding (id, name, ticker, category, price, quantity, total, return_value, return_percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Ticker, b.Category, b.Price, b.Quantity, total, b.Return, b.ReturnPercentage)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		ID:               b.ID,
		Name:             b.Name,
		Ticker:           b.Ticker,
		Category:         b.Category,
		Price:            b.Price,
		Quantity:         b.Quantity,
		Total:            total,
		Return:           b.Return,
		ReturnPercentage: b.ReturnPercentage,
	}
}

// CryptoHoldingBuilder provides a fluent interface for creating test crypto holdings.
type CryptoHoldingBuilder struct {
	ID       string
	Name     string
	Ticker   string
	Sector   string
	Custody  string
	PriceUSD float64
	Quantity float64
	Rate     float64
}

// NewCryptoHolding creates a CryptoHoldingBuilder with sensible defaults.
// The BRL total is derived with a fixed rate of 5.0 unless overridden.
func NewCryptoHolding() *CryptoHoldingBuilder {
	return &CryptoHoldingBuilder{
		ID:       MakeID(),
		Name:     "Bitcoin",
		Ticker:   "BTC",
		Sector:   "Store of Value",
		Custody:  "Hardware Wallet",
		PriceUSD: 50000,
		Quantity: 0.1,
		Rate:     5.0,
	}
}

// WithID sets a custom ID.
func (b *CryptoHoldingBuilder) WithID(id string) *CryptoHoldingBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *CryptoHoldingBuilder) WithName(name string) *CryptoHoldingBuilder {
	b.Name = name
	return b
}

// WithTicker sets a custom ticker.
func (b *CryptoHoldingBuilder) WithTicker(ticker string) *CryptoHoldingBuilder {
	b.Ticker = ticker
	return b
}

// WithSector sets a custom sector label.
func (b *CryptoHoldingBuilder) WithSector(sector string) *CryptoHoldingBuilder {
	b.Sector = sector
	return b
}

// WithCustody sets a custom custody label.
func (b *CryptoHoldingBuilder) WithCustody(custody string) *CryptoHoldingBuilder {
	b.Custody = custody
	return b
}

// WithPriceUSD sets a custom USD unit price.
func (b *CryptoHoldingBuilder) WithPriceUSD(price float64) *CryptoHoldingBuilder {
	b.PriceUSD = price
	return b
}

// WithQuantity sets a custom quantity.
func (b *CryptoHoldingBuilder) WithQuantity(quantity float64) *CryptoHoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithRate sets the USD-BRL rate used to derive the stored BRL total.
func (b *CryptoHoldingBuilder) WithRate(rate float64) *CryptoHoldingBuilder {
	b.Rate = rate
	return b
}

// Build creates the crypto holding in the database and returns it.
func (b *CryptoHoldingBuilder) Build(t *testing.T, db *sql.DB) model.CryptoHolding {
	t.Helper()

	totalUSD := b.PriceUSD * b.Quantity
	totalBRL := totalUSD * b.Rate

	query := `
		INSERT INTO crypto_holding (id, name, ticker, sector, custody, price_usd, quantity, total_usd, total_brl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Ticker, b.Sector, b.Custody, b.PriceUSD, b.Quantity, totalUSD, totalBRL)
	if err != nil {
		t.Fatalf("Failed to create test crypto holding: %v", err)
	}

	return model.CryptoHolding{
		ID:       b.ID,
		Name:     b.Name,
		Ticker:   b.Ticker,
		Sector:   b.Sector,
		Custody:  b.Custody,
		PriceUSD: b.PriceUSD,
		Quantity: b.Quantity,
		TotalUSD: totalUSD,
		TotalBRL: totalBRL,
	}
}

// SnapshotGroupBuilder provides a fluent interface for creating test snapshot
// groups with items.
//
// Example usage:
//
//	group := testutil.NewSnapshotGroup().
//	    WithCreatedAt(testutil.Date("2024-01-01")).
//	    WithItem("PETR4", "Ações", 1000).
//	    WithCryptoTotal(500).
//	    Build(t, db)
type SnapshotGroupBuilder struct {
	ID        string
	CreatedAt time.Time
	Notes     string
	Items     []model.SnapshotItem
}

// NewSnapshotGroup creates a SnapshotGroupBuilder stamped with the current time.
func NewSnapshotGroup() *SnapshotGroupBuilder {
	return &SnapshotGroupBuilder{
		ID:        MakeID(),
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *SnapshotGroupBuilder) WithID(id string) *SnapshotGroupBuilder {
	b.ID = id
	return b
}

// WithCreatedAt sets the capture timestamp.
func (b *SnapshotGroupBuilder) WithCreatedAt(createdAt time.Time) *SnapshotGroupBuilder {
	b.CreatedAt = createdAt
	return b
}

// WithNotes sets the free-text notes.
func (b *SnapshotGroupBuilder) WithNotes(notes string) *SnapshotGroupBuilder {
	b.Notes = notes
	return b
}

// WithItem adds a valuation item without a holding reference.
func (b *SnapshotGroupBuilder) WithItem(assetName, category string, value float64) *SnapshotGroupBuilder {
	b.Items = append(b.Items, model.SnapshotItem{
		ID:            MakeID(),
		GroupID:       b.ID,
		AssetName:     assetName,
		CategoryName:  category,
		TotalValueBRL: value,
	})
	return b
}

// WithAssetItem adds a valuation item referencing a holding.
func (b *SnapshotGroupBuilder) WithAssetItem(assetID, assetName, category string, value float64) *SnapshotGroupBuilder {
	b.Items = append(b.Items, model.SnapshotItem{
		ID:            MakeID(),
		GroupID:       b.ID,
		AssetID:       &assetID,
		AssetName:     assetName,
		CategoryName:  category,
		TotalValueBRL: value,
	})
	return b
}

// WithCryptoTotal adds the synthetic crypto aggregate item.
func (b *SnapshotGroupBuilder) WithCryptoTotal(value float64) *SnapshotGroupBuilder {
	b.Items = append(b.Items, model.SnapshotItem{
		ID:            MakeID(),
		GroupID:       b.ID,
		AssetName:     "Cripto",
		CategoryName:  "Cripto",
		TotalValueBRL: value,
		IsCryptoTotal: true,
	})
	return b
}

// Build creates the snapshot group and its items in the database.
func (b *SnapshotGroupBuilder) Build(t *testing.T, db *sql.DB) model.SnapshotGroup {
	t.Helper()

	var notes interface{}
	if b.Notes != "" {
		notes = b.Notes
	}

	_, err := db.Exec(
		`INSERT INTO snapshot_group (id, created_at, notes) VALUES (?, ?, ?)`,
		b.ID, b.CreatedAt.UTC().Format(time.RFC3339), notes,
	)
	if err != nil {
		t.Fatalf("Failed to create test snapshot group: %v", err)
	}

	for _, item := range b.Items {
		var assetID interface{}
		if item.AssetID != nil {
			assetID = *item.AssetID
		}
		_, err := db.Exec(
			`INSERT INTO snapshot_item (id, group_id, asset_id, asset_name, asset_category_name, total_value_brl, is_crypto_total)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.GroupID, assetID, item.AssetName, item.CategoryName, item.TotalValueBRL, item.IsCryptoTotal,
		)
		if err != nil {
			t.Fatalf("Failed to create test snapshot item: %v", err)
		}
	}

	return model.SnapshotGroup{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		Notes:     b.Notes,
		Items:     b.Items,
	}
}

// CreateLabel creates a label in the given vocabulary.
func CreateLabel(t *testing.T, db *sql.DB, kind model.LabelKind, name string) model.Label {
	t.Helper()

	l := model.Label{
		ID:   MakeID(),
		Kind: kind,
		Name: name,
	}

	_, err := db.Exec(`INSERT INTO label (id, kind, name) VALUES (?, ?, ?)`, l.ID, string(l.Kind), l.Name)
	if err != nil {
		t.Fatalf("Failed to create test label: %v", err)
	}

	return l
}
