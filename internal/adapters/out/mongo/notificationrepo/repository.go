package notificationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/notification"
	"meatdelivery/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is where notifications are kept.
const Collection = "notifications"

// MongoNotificationRepository implements NotificationRepository on a MongoDB collection.
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection(Collection)}
}

// EnsureIndexes creates the inbox and expiry indexes. It is safe to call on every start.
func (r *MongoNotificationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("recipient_created_at"),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("expires_at"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	_, err := r.collection.InsertOne(ctx, fromDomain(n))
	if mongo.IsDuplicateKeyError(err) {
		return errs.NewConflictErrorWithCause("notification already exists", err)
	}
	return err
}

func (r *MongoNotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
	limit int,
	now time.Time,
) ([]*notification.Notification, int64, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, 0, err
	}

	filter := bson.M{
		"recipient_id": recipientID.String(),
		"expires_at":   bson.M{"$gt": now.UTC()},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []document
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	items := make([]*notification.Notification, 0, len(docs))
	for _, d := range docs {
		n, err := d.toDomain()
		if err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}

	filter["read_at"] = nil
	unread, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, unread, nil
}

func (r *MongoNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var d document
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewObjectNotFoundError("notification", id.String())
	}
	if err != nil {
		return nil, err
	}

	return d.toDomain()
}

func (r *MongoNotificationRepository) MarkRead(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": n.ID().String()},
		bson.M{"$set": bson.M{"read_at": n.ReadAt()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}
	return nil
}

func (r *MongoNotificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now.UTC()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
