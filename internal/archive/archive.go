// Package archive is an optional write-behind copy of the sales
// ledger. The running system never reads it back — all authoritative
// state stays in memory — but a store owner who sets DB_DSN gets a
// durable record of settled sales that survives restarts.
package archive

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"saripos/internal/models"
)

// ArchivedSale is the flattened row written per settled sale. Items
// are stored as a JSON snapshot; nothing ever queries inside them.
type ArchivedSale struct {
	ID          uint            `gorm:"primaryKey"`
	SaleID      string          `gorm:"uniqueIndex;size:64"`
	Customer    string          `gorm:"size:64"`
	CashierID   uint
	CashierName string          `gorm:"size:100"`
	ItemsJSON   string          `gorm:"type:text"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2)"`
	Tendered    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Change      decimal.Decimal `gorm:"type:decimal(12,2)"`
	SaleTime    time.Time
}

// Archive appends settled sales to MySQL. A nil *Archive is valid and
// does nothing, so callers never branch on whether archiving is on.
type Archive struct {
	db *gorm.DB
}

// Open connects to MySQL and syncs the schema. The database may come
// up after us, so connection is retried a few times before giving up.
func Open(dsn string) (*Archive, error) {
	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("sales archive connect failed, retrying in 2s")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&ArchivedSale{}); err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Record writes one settled sale. Best-effort: failures are logged,
// never surfaced, because the in-memory ledger already holds the
// authoritative record.
func (a *Archive) Record(sale models.SaleRecord) {
	if a == nil || a.db == nil {
		return
	}

	itemsJSON, err := json.Marshal(sale.Items)
	if err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("sales archive: failed to encode items")
		return
	}

	row := ArchivedSale{
		SaleID:      sale.ID,
		Customer:    sale.Customer,
		CashierID:   sale.CashierID,
		CashierName: sale.CashierName,
		ItemsJSON:   string(itemsJSON),
		Total:       sale.Total,
		Tendered:    sale.Tendered,
		Change:      sale.Change,
		SaleTime:    sale.SaleTime,
	}
	if err := a.db.Create(&row).Error; err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("sales archive: insert failed")
	}
}
