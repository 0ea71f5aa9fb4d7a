// internal/core/domain/alert.go
package domain

import "time"

// StockAlert is raised when a phone moves into low or out of stock
type StockAlert struct {
	PhoneID        ID          `json:"phoneId"`
	Name           string      `json:"name"`
	Brand          string      `json:"brand"`
	Quantity       int         `json:"quantity"`
	Status         StockStatus `json:"status"`
	PreviousStatus StockStatus `json:"previousStatus,omitempty"`
	RaisedAt       time.Time   `json:"raisedAt"`
}

// NewStockAlert builds an alert for p, or returns false when none is due.
// An alert is due when p is alerting and its status changed.
func NewStockAlert(p *Phone, previous StockStatus, at time.Time) (StockAlert, bool) {
	if p == nil || !p.Status.IsAlerting() || p.Status == previous {
		return StockAlert{}, false
	}
	return StockAlert{
		PhoneID:        p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Quantity:       p.Quantity,
		Status:         p.Status,
		PreviousStatus: previous,
		RaisedAt:       at,
	}, true
}

// StockChange is the outcome of an atomic stock adjustment
type StockChange struct {
	Phone            Phone
	PreviousQuantity int
	PreviousStatus   StockStatus
}
