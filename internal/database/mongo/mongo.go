package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"saleportal/internal/config"
	"saleportal/internal/lib/sl"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	auditCollection = "audit"
)

// AuditRecord is one mutation attempt against an order: who asked the ERP
// for what, and how it ended. Kept for support follow-up, expired after
// a configured number of days.
type AuditRecord struct {
	CreationDate time.Time `bson:"creation_date"`
	OrderID      int64     `bson:"order_id"`
	Action       string    `bson:"action"`
	Result       bool      `bson:"result"`
	Message      string    `bson:"message"`
}

type MongoDB struct {
	ctx           context.Context
	clientOptions *options.ClientOptions
	database      string
	expiredDays   int
	log           *slog.Logger
}

func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:           context.Background(),
		clientOptions: clientOptions,
		database:      conf.Mongo.Database,
		expiredDays:   conf.Mongo.ExpiredDays,
		log:           logger.With(sl.Module("mongodb")),
	}
	return client, nil
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	_ = connection.Disconnect(m.ctx)
}

// SaveOutcome appends one audit record for a cancel or payment-change
// attempt.
func (m *MongoDB) SaveOutcome(orderID int64, action string, result bool, message string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(auditCollection)

	record := AuditRecord{
		CreationDate: time.Now(),
		OrderID:      orderID,
		Action:       action,
		Result:       result,
		Message:      message,
	}
	if _, err := collection.InsertOne(m.ctx, record); err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}

	m.log.Debug("audit record saved",
		slog.Int64("order_id", orderID),
		slog.String("action", action),
		slog.Bool("result", result),
	)
	return nil
}

// DeleteExpired removes audit records older than expiredDays.
// Returns the number of deleted documents.
func (m *MongoDB) DeleteExpired() (int64, error) {
	if m.expiredDays <= 0 {
		return 0, nil
	}

	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(auditCollection)

	cutoffDate := time.Now().AddDate(0, 0, -m.expiredDays)
	filter := bson.M{"creation_date": bson.M{"$lt": cutoffDate}}

	result, err := collection.DeleteMany(m.ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("mongodb delete error: %w", err)
	}

	return result.DeletedCount, nil
}
