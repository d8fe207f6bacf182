package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

const collectionSales = "vendas"

// SaleRepository implements ports.SaleRepository on the vendas collection.
type SaleRepository struct {
	col *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales)}
}

type mongoSale struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Customer   string             `bson:"cliente"`
	LineItems  []domain.LineItem  `bson:"produtos"`
	Total      float64            `bson:"total"`
	RecordedBy string             `bson:"registrado_por"`
	RecordedAt time.Time          `bson:"data"`
}

// Create inserts a new sale document and returns its id.
func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoSale{
		Customer:   s.Customer,
		LineItems:  s.LineItems,
		Total:      s.Total,
		RecordedBy: s.RecordedBy,
		RecordedAt: s.RecordedAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("insert sale: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert sale: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns all sales ordered by recording time.
func (r *SaleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "data", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoSale
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}

	sales := make([]*domain.Sale, 0, len(docs))
	for _, d := range docs {
		sales = append(sales, &domain.Sale{
			ID:         d.ID.Hex(),
			Customer:   d.Customer,
			LineItems:  d.LineItems,
			Total:      d.Total,
			RecordedBy: d.RecordedBy,
			RecordedAt: d.RecordedAt.UTC(),
		})
	}
	return sales, nil
}

// EnsureIndexes creates indexes on the vendas collection.
func (r *SaleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "data", Value: 1}}},
		{Keys: bson.D{{Key: "registrado_por", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
