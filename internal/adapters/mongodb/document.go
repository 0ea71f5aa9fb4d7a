// internal/adapters/mongodb/document.go
package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// phoneDocument is the stored shape of a phone
type phoneDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Brand     string             `bson:"brand"`
	Price     float64            `bson:"price"`
	CostPrice *float64           `bson:"costPrice,omitempty"`
	Quantity  int                `bson:"quantity"`
	Color     string             `bson:"color"`
	Storage   string             `bson:"storage"`
	RAM       string             `bson:"ram"`
	IMEIList  []string           `bson:"imeiList"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	IsDeleted bool               `bson:"isDeleted"`
	DeletedAt *time.Time         `bson:"deletedAt,omitempty"`
}

// valuedDocument is a phone document with its computed stock value
type valuedDocument struct {
	phoneDocument `bson:",inline"`
	TotalValue    float64 `bson:"totalValue"`
}

func toDocument(p *domain.Phone) phoneDocument {
	imeis := p.IMEIList
	if imeis == nil {
		imeis = []string{}
	}
	return phoneDocument{
		Name:      p.Name,
		Brand:     p.Brand,
		Price:     p.Price,
		CostPrice: p.CostPrice,
		Quantity:  p.Quantity,
		Color:     p.Color,
		Storage:   p.Storage,
		RAM:       p.RAM,
		IMEIList:  imeis,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		IsDeleted: p.IsDeleted,
		DeletedAt: p.DeletedAt,
	}
}

func (d phoneDocument) toDomain() domain.Phone {
	imeis := d.IMEIList
	if imeis == nil {
		imeis = []string{}
	}
	return domain.Phone{
		ID:        domain.ID(d.ID.Hex()),
		Name:      d.Name,
		Brand:     d.Brand,
		Price:     d.Price,
		CostPrice: d.CostPrice,
		Quantity:  d.Quantity,
		Color:     d.Color,
		Storage:   d.Storage,
		RAM:       d.RAM,
		IMEIList:  imeis,
		Status:    domain.StockStatus(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
		IsDeleted: d.IsDeleted,
		DeletedAt: d.DeletedAt,
	}
}

func toDomainList(docs []phoneDocument) []domain.Phone {
	out := make([]domain.Phone, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out
}

// objectID converts a domain id; ids are validated by the service
func objectID(id domain.ID) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id.String())
}
