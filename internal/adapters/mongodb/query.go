// internal/adapters/mongodb/query.go
package mongodb

import (
	"math"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// activeClause matches documents that are not soft deleted, including
// documents written before isDeleted existed
var activeClause = bson.E{Key: "isDeleted", Value: bson.D{{Key: "$ne", Value: true}}}

// containsRegex matches raw literally anywhere in the field, ignoring case
func containsRegex(raw string) bson.D {
	return bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(raw)},
		{Key: "$options", Value: "i"},
	}
}

// buildFilter translates a phone filter into a query document
func buildFilter(f domain.PhoneFilter) bson.D {
	filter := bson.D{}
	if f.Visibility == domain.ActiveOnly {
		filter = append(filter, activeClause)
	}
	if f.Brand != "" {
		filter = append(filter, bson.E{Key: "brand", Value: containsRegex(f.Brand)})
	}
	if f.Status != nil {
		filter = append(filter, bson.E{Key: "status", Value: string(*f.Status)})
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.D{}
		if f.MinPrice != nil {
			price = append(price, bson.E{Key: "$gte", Value: *f.MinPrice})
		}
		if f.MaxPrice != nil {
			price = append(price, bson.E{Key: "$lte", Value: *f.MaxPrice})
		}
		filter = append(filter, bson.E{Key: "price", Value: price})
	}
	if f.Keyword != "" {
		re := containsRegex(f.Keyword)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: re}},
			bson.D{{Key: "brand", Value: re}},
			bson.D{{Key: "color", Value: re}},
		}})
	}
	return filter
}

// byID matches one document, optionally restricted to active ones
func byID(oid interface{}, vis domain.Visibility) bson.D {
	filter := bson.D{{Key: "_id", Value: oid}}
	if vis == domain.ActiveOnly {
		filter = append(filter, activeClause)
	}
	return filter
}

// buildSort orders by field with _id as a stable tiebreak
func buildSort(field domain.SortField, order domain.SortOrder) bson.D {
	dir := -1
	if order == domain.SortAsc {
		dir = 1
	}
	if field == "" {
		field = domain.SortByCreatedAt
	}
	return bson.D{{Key: string(field), Value: dir}, {Key: "_id", Value: dir}}
}

// buildSet converts a change set into a $set update
func buildSet(c domain.PhoneChanges) bson.D {
	set := bson.D{}
	add := func(key string, v interface{}) {
		set = append(set, bson.E{Key: key, Value: v})
	}

	if c.Name != nil {
		add("name", *c.Name)
	}
	if c.Brand != nil {
		add("brand", *c.Brand)
	}
	if c.Price != nil {
		add("price", *c.Price)
	}
	if c.CostPrice != nil {
		add("costPrice", *c.CostPrice)
	}
	if c.Quantity != nil {
		add("quantity", *c.Quantity)
	}
	if c.Color != nil {
		add("color", *c.Color)
	}
	if c.Storage != nil {
		add("storage", *c.Storage)
	}
	if c.RAM != nil {
		add("ram", *c.RAM)
	}
	if c.IMEIList != nil {
		add("imeiList", *c.IMEIList)
	}
	if c.Status != nil {
		add("status", string(*c.Status))
	}
	add("updatedAt", c.UpdatedAt)

	return bson.D{{Key: "$set", Value: set}}
}

// quantityExpr is the aggregation expression of the adjusted quantity
func quantityExpr(adj domain.StockAdjustment) interface{} {
	switch adj.Operation {
	case domain.StockAdd:
		return bson.D{{Key: "$add", Value: bson.A{"$quantity", adj.Quantity}}}
	case domain.StockSubtract:
		return bson.D{{Key: "$subtract", Value: bson.A{"$quantity", adj.Quantity}}}
	default:
		return bson.D{{Key: "$literal", Value: adj.Quantity}}
	}
}

// statusExpr derives status from the quantity already written by the previous stage
func statusExpr() bson.D {
	return bson.D{{Key: "$switch", Value: bson.D{
		{Key: "branches", Value: bson.A{
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$lte", Value: bson.A{"$quantity", 0}}}},
				{Key: "then", Value: string(domain.StatusOutOfStock)},
			},
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$lte", Value: bson.A{"$quantity", domain.LowStockCeiling}}}},
				{Key: "then", Value: string(domain.StatusLowStock)},
			},
		}},
		{Key: "default", Value: string(domain.StatusInStock)},
	}}}
}

// stockPipeline writes quantity and status in a single update
func stockPipeline(adj domain.StockAdjustment, at time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "quantity", Value: quantityExpr(adj)},
			{Key: "updatedAt", Value: at},
		}}},
		{{Key: "$set", Value: bson.D{{Key: "status", Value: statusExpr()}}}},
	}
}

func matchActive() bson.D {
	return bson.D{{Key: "$match", Value: bson.D{activeClause}}}
}

func stockValueExpr() bson.D {
	return bson.D{{Key: "$multiply", Value: bson.A{"$price", "$quantity"}}}
}

func countWhereStatus(s domain.StockStatus) bson.D {
	return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{"$status", string(s)}}}, 1, 0,
	}}}}}
}

func summaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		matchActive(),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalProducts", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			{Key: "totalValue", Value: bson.D{{Key: "$sum", Value: stockValueExpr()}}},
			{Key: "totalCost", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$multiply", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$costPrice", 0}}}, "$quantity",
			}}}}}},
			{Key: "inStock", Value: countWhereStatus(domain.StatusInStock)},
			{Key: "lowStock", Value: countWhereStatus(domain.StatusLowStock)},
			{Key: "outOfStock", Value: countWhereStatus(domain.StatusOutOfStock)},
		}}},
	}
}

func byBrandPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		matchActive(),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$brand"},
			{Key: "totalProducts", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			{Key: "totalValue", Value: bson.D{{Key: "$sum", Value: stockValueExpr()}}},
			{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalValue", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

func lowStockPipeline(threshold int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			activeClause,
			{Key: "quantity", Value: bson.D{{Key: "$gt", Value: 0}, {Key: "$lte", Value: threshold}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "quantity", Value: 1}, {Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
	}
}

func outOfStockPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			activeClause,
			{Key: "quantity", Value: bson.D{{Key: "$lte", Value: 0}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

func topValuePipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		matchActive(),
		{{Key: "$addFields", Value: bson.D{{Key: "totalValue", Value: stockValueExpr()}}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalValue", Value: -1}, {Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// priceRangePipeline buckets by price. The final boundary closes the last
// open ended band; prices outside every band land in Other.
func priceRangePipeline() mongo.Pipeline {
	boundaries := bson.A{}
	for _, b := range domain.PriceBoundaries {
		boundaries = append(boundaries, b)
	}
	boundaries = append(boundaries, math.MaxFloat64)

	return mongo.Pipeline{
		matchActive(),
		{{Key: "$bucket", Value: bson.D{
			{Key: "groupBy", Value: "$price"},
			{Key: "boundaries", Value: boundaries},
			{Key: "default", Value: domain.PriceRangeOther},
			{Key: "output", Value: bson.D{
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			}},
		}}},
	}
}
