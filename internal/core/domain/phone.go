// internal/core/domain/phone.go
package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockStatus represents the derived availability of a phone
type StockStatus string

// Stock status constants
const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// LowStockCeiling is the highest quantity still considered low stock
const LowStockCeiling = 5

// Valid reports whether s is one of the known statuses
func (s StockStatus) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// IsAlerting reports whether the status warrants a stock alert
func (s StockStatus) IsAlerting() bool {
	return s == StatusLowStock || s == StatusOutOfStock
}

// DeriveStatus computes the stock status for a quantity
func DeriveStatus(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= LowStockCeiling:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ID is the 24 character hex identifier of a phone record
type ID string

// NewID generates a fresh identifier
func NewID() ID {
	return ID(primitive.NewObjectID().Hex())
}

// ParseID validates raw and returns it as a lower-case ID
func ParseID(raw string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return "", ErrInvalidID(raw)
	}
	return ID(oid.Hex()), nil
}

func (id ID) String() string {
	return string(id)
}

// Phone represents a single phone model held in stock
type Phone struct {
	ID        ID          `json:"_id"`
	Name      string      `json:"name"`
	Brand     string      `json:"brand"`
	Price     float64     `json:"price"`
	CostPrice *float64    `json:"costPrice,omitempty"`
	Quantity  int         `json:"quantity"`
	Color     string      `json:"color"`
	Storage   string      `json:"storage"`
	RAM       string      `json:"ram"`
	IMEIList  []string    `json:"imeiList"`
	Status    StockStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	IsDeleted bool        `json:"isDeleted"`
	DeletedAt *time.Time  `json:"deletedAt,omitempty"`
}

// StockValue returns price multiplied by quantity
func (p *Phone) StockValue() float64 {
	return p.Price * float64(p.Quantity)
}

// CreatePhoneInput is the accepted payload for a new phone
type CreatePhoneInput struct {
	Name      string
	Brand     string
	Price     *float64
	CostPrice *float64
	Quantity  *int
	Color     string
	Storage   string
	RAM       string
	IMEIList  []string
}

// Validation messages
const (
	MsgNameRequired      = "name is required"
	MsgBrandRequired     = "brand is required"
	MsgPriceInvalid      = "price must be a number >= 0"
	MsgQuantityInvalid   = "quantity must be a number >= 0"
	MsgCostPriceInvalid  = "costPrice must be a number >= 0"
	MsgKeywordRequired   = "search keyword cannot be empty"
	MsgStockOperation    = "operation must be one of set, add, subtract"
	MsgStatusInvalid     = "status must be one of in_stock, low_stock, out_of_stock"
	MsgPriceRangeInvalid = "minPrice must not be greater than maxPrice"
)

// ValidateCreate collects every violation of the creation rules
func ValidateCreate(in CreatePhoneInput) []string {
	var violations []string

	if strings.TrimSpace(in.Name) == "" {
		violations = append(violations, MsgNameRequired)
	}
	if strings.TrimSpace(in.Brand) == "" {
		violations = append(violations, MsgBrandRequired)
	}
	if in.Price == nil || *in.Price < 0 {
		violations = append(violations, MsgPriceInvalid)
	}
	if in.Quantity == nil || *in.Quantity < 0 {
		violations = append(violations, MsgQuantityInvalid)
	}
	if in.CostPrice != nil && *in.CostPrice < 0 {
		violations = append(violations, MsgCostPriceInvalid)
	}

	return violations
}

// Normalize returns a trimmed copy of the input
func (in CreatePhoneInput) Normalize() CreatePhoneInput {
	out := in
	out.Name = strings.TrimSpace(in.Name)
	out.Brand = strings.TrimSpace(in.Brand)
	out.Color = strings.TrimSpace(in.Color)
	out.Storage = strings.TrimSpace(in.Storage)
	out.RAM = strings.TrimSpace(in.RAM)
	if in.IMEIList != nil {
		out.IMEIList = append([]string(nil), in.IMEIList...)
	}
	return out
}

// ToPhone builds a new, not yet stored, phone record
func (in CreatePhoneInput) ToPhone(now time.Time) *Phone {
	p := &Phone{
		Name:      in.Name,
		Brand:     in.Brand,
		CostPrice: in.CostPrice,
		Color:     in.Color,
		Storage:   in.Storage,
		RAM:       in.RAM,
		IMEIList:  in.IMEIList,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if p.IMEIList == nil {
		p.IMEIList = []string{}
	}
	p.Status = DeriveStatus(p.Quantity)
	return p
}

// UpdatePhonePatch holds the client editable fields of a phone.
// Nil fields are left untouched.
type UpdatePhonePatch struct {
	Name      *string
	Brand     *string
	Price     *float64
	CostPrice *float64
	Quantity  *int
	Color     *string
	Storage   *string
	RAM       *string
	IMEIList  *[]string
}

// ValidatePatch collects range violations of supplied fields
func ValidatePatch(p UpdatePhonePatch) []string {
	var violations []string

	if p.Price != nil && *p.Price < 0 {
		violations = append(violations, MsgPriceInvalid)
	}
	if p.CostPrice != nil && *p.CostPrice < 0 {
		violations = append(violations, MsgCostPriceInvalid)
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		violations = append(violations, MsgQuantityInvalid)
	}

	return violations
}

// Normalize returns a trimmed copy of the patch
func (p UpdatePhonePatch) Normalize() UpdatePhonePatch {
	out := p
	out.Name = trimPtr(p.Name)
	out.Brand = trimPtr(p.Brand)
	out.Color = trimPtr(p.Color)
	out.Storage = trimPtr(p.Storage)
	out.RAM = trimPtr(p.RAM)
	if p.IMEIList != nil {
		list := append([]string{}, (*p.IMEIList)...)
		out.IMEIList = &list
	}
	return out
}

// IsEmpty reports whether the patch carries no field
func (p UpdatePhonePatch) IsEmpty() bool {
	return p.Name == nil && p.Brand == nil && p.Price == nil && p.CostPrice == nil &&
		p.Quantity == nil && p.Color == nil && p.Storage == nil && p.RAM == nil &&
		p.IMEIList == nil
}

// Changes converts a normalized patch into a storage level change set
func (p UpdatePhonePatch) Changes(now time.Time) PhoneChanges {
	c := PhoneChanges{UpdatePhonePatch: p, UpdatedAt: now}
	if p.Quantity != nil {
		status := DeriveStatus(*p.Quantity)
		c.Status = &status
	}
	return c
}

// PhoneChanges is the set of columns an update writes
type PhoneChanges struct {
	UpdatePhonePatch
	Status    *StockStatus
	UpdatedAt time.Time
}

// Apply writes the changes onto p
func (c PhoneChanges) Apply(p *Phone) {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Brand != nil {
		p.Brand = *c.Brand
	}
	if c.Price != nil {
		p.Price = *c.Price
	}
	if c.CostPrice != nil {
		v := *c.CostPrice
		p.CostPrice = &v
	}
	if c.Quantity != nil {
		p.Quantity = *c.Quantity
	}
	if c.Color != nil {
		p.Color = *c.Color
	}
	if c.Storage != nil {
		p.Storage = *c.Storage
	}
	if c.RAM != nil {
		p.RAM = *c.RAM
	}
	if c.IMEIList != nil {
		p.IMEIList = append([]string{}, (*c.IMEIList)...)
	}
	if c.Status != nil {
		p.Status = *c.Status
	}
	p.UpdatedAt = c.UpdatedAt
}

// StockOperation is the kind of stock adjustment
type StockOperation string

// Stock operations
const (
	StockSet      StockOperation = "set"
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
)

// StockAdjustment requests a quantity change
type StockAdjustment struct {
	Quantity  int            `json:"quantity"`
	Operation StockOperation `json:"operation"`
}

// Normalize defaults an empty operation to set
func (a StockAdjustment) Normalize() StockAdjustment {
	if a.Operation == "" {
		a.Operation = StockSet
	}
	return a
}

// Validate checks the adjustment after normalization
func (a StockAdjustment) Validate() error {
	var violations []string
	switch a.Operation {
	case StockSet, StockAdd, StockSubtract:
	default:
		violations = append(violations, MsgStockOperation)
	}
	if a.Quantity < 0 {
		violations = append(violations, MsgQuantityInvalid)
	}
	if len(violations) > 0 {
		return NewValidationError(violations...)
	}
	return nil
}

// Resolve returns the quantity after applying the adjustment to current
func (a StockAdjustment) Resolve(current int) int {
	switch a.Operation {
	case StockAdd:
		return current + a.Quantity
	case StockSubtract:
		return current - a.Quantity
	default:
		return a.Quantity
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
