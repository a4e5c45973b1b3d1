// Package store holds every piece of authoritative application state:
// the catalog, the sales ledger, the notification feed, staff
// accounts, restock deliveries, per-cashier carts and the receipt
// settings. State lives only in memory and is gone on restart.
//
// One Store instance is created at startup and passed to the handlers
// explicitly; there are no package-level globals. A single mutex
// serializes every mutation, so cart and checkout operations never
// interleave and the checkout unit of work is atomic by construction.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"saripos/internal/models"
)

// Capped feed: oldest entries are evicted past this many.
const notificationCap = 200

var (
	ErrNotFound            = errors.New("not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrDuplicateBarcode    = errors.New("barcode already in use")
	ErrDuplicateUsername   = errors.New("username already taken")
	ErrSeedAdmin           = errors.New("the seed admin account cannot be deleted")
	ErrNotPending          = errors.New("delivery is not pending review")
)

// Store is the single owner of all mutable state.
type Store struct {
	mu sync.Mutex

	products      []models.Product
	nextProductID uint

	users       []models.User
	nextUserID  uint
	seedAdminID uint

	sales       []models.SaleRecord
	customerSeq int

	notifications []models.Notification // most recent first
	deliveries    []models.Delivery
	carts         map[uint]*models.Cart // keyed by user id
	settings      models.Settings
}

// New returns an empty store with the given settings. Seed data
// (demo catalog, admin account) is loaded separately via Seed.
func New(settings models.Settings) *Store {
	return &Store{
		nextProductID: 1,
		nextUserID:    1,
		carts:         make(map[uint]*models.Cart),
		settings:      settings,
	}
}

// ---- Catalog ----

// Products returns a copy of the full catalog.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks up a product by id.
func (s *Store) Product(id uint) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.findProduct(id)
	if err != nil {
		return models.Product{}, err
	}
	return *p, nil
}

// ProductByBarcode is the scan-gun lookup. A miss is a transient
// "not found" notice to the operator, never a state change.
func (s *Store) ProductByBarcode(barcode string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// AddProduct inserts a new catalog entry and assigns its id.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Barcode != "" {
		for _, existing := range s.products {
			if existing.Barcode == p.Barcode {
				return models.Product{}, ErrDuplicateBarcode
			}
		}
	}
	if p.StockQuantity < 0 {
		p.StockQuantity = 0
	}
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	return p, nil
}

// ProductUpdate carries a partial update: only non-nil fields are
// applied, so the admin form can patch price or stock alone.
type ProductUpdate struct {
	Name          *string          `json:"name"`
	Price         *decimal.Decimal `json:"price"`
	Category      *string          `json:"category"`
	Barcode       *string          `json:"barcode"`
	StockQuantity *int             `json:"stock_quantity"`
}

// UpdateProduct applies a partial update to an existing product.
func (s *Store) UpdateProduct(id uint, upd ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.findProduct(id)
	if err != nil {
		return models.Product{}, err
	}
	if upd.Barcode != nil && *upd.Barcode != p.Barcode {
		for _, existing := range s.products {
			if existing.Barcode == *upd.Barcode && existing.ID != id {
				return models.Product{}, ErrDuplicateBarcode
			}
		}
		p.Barcode = *upd.Barcode
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.StockQuantity != nil {
		p.StockQuantity = *upd.StockQuantity
		if p.StockQuantity < 0 {
			p.StockQuantity = 0
		}
	}
	return *p, nil
}

// LowStock lists products at or below the configured threshold.
func (s *Store) LowStock() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if p.StockQuantity <= s.settings.LowStockThreshold {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) findProduct(id uint) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, ErrNotFound
}

// ---- Settings ----

func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings replaces the singleton receipt/threshold settings.
func (s *Store) UpdateSettings(settings models.Settings) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if settings.LowStockThreshold < 0 {
		settings.LowStockThreshold = 0
	}
	s.settings = settings
	return s.settings
}

// ---- Users ----

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) UserByUsername(username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) UserByID(id uint) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// AddUser creates a staff account (admin "add staff" form).
func (s *Store) AddUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	u.ID = s.nextUserID
	s.nextUserID++
	u.CreatedAt = time.Now()
	s.users = append(s.users, u)
	return u, nil
}

// DeleteUser removes a staff account. The seed admin is protected so
// the store can never lock itself out.
func (s *Store) DeleteUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.seedAdminID {
		return ErrSeedAdmin
	}
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			delete(s.carts, id)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Notifications ----

// Notifications returns the feed, most recent first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// MarkAllRead flips every entry's read flag. There is no un-read.
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Notify appends a system-generated entry to the feed.
func (s *Store) Notify(kind models.NotificationType, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushNotification(kind, message)
}

// pushNotification must be called with the lock held. Newest entries
// sit at the head; the feed is trimmed to notificationCap.
func (s *Store) pushNotification(kind models.NotificationType, message string) {
	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Message:   message,
		Timestamp: time.Now(),
	}
	s.notifications = append([]models.Notification{n}, s.notifications...)
	if len(s.notifications) > notificationCap {
		s.notifications = s.notifications[:notificationCap]
	}
}

// ---- Sales ledger ----

// Sales returns a copy of the ledger, oldest first.
func (s *Store) Sales() []models.SaleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SaleRecord, len(s.sales))
	copy(out, s.sales)
	return out
}

func (s *Store) nextSaleID() string {
	return fmt.Sprintf("SI-%d", time.Now().UnixNano())
}
