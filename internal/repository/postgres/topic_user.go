package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/model"
)

var topicUserColumns = []string{
	"topic_user_id",
	"user_id",
	"topic_id",
	"rate",
	"timing",
	"created_at",
	"updated_at",
}

// UpsertTopicUser inserts the subscription unless the (topic, user) pair exists and
// returns the stored row, so repeated calls yield the same subscription.
func (r *Repository) UpsertTopicUser(ctx context.Context, topicUser model.TopicUser) (*model.TopicUser, error) {
	query, args, err := sq.Insert("topics_users").
		Columns(topicUserColumns...).
		Values(topicUser.TopicUserID, topicUser.UserID, topicUser.TopicID, topicUser.Rate, topicUser.Timing, topicUser.CreatedAt, topicUser.UpdatedAt).
		Suffix("ON CONFLICT (topic_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert topic user: %v", err)
	}

	return r.getTopicUser(ctx, sq.Eq{"topic_id": topicUser.TopicID, "user_id": topicUser.UserID})
}

func (r *Repository) GetTopicUserByID(ctx context.Context, topicUserID uuid.UUID) (*model.TopicUser, error) {
	return r.getTopicUser(ctx, sq.Eq{"topic_user_id": topicUserID})
}

func (r *Repository) GetTopicUsersByTopicIDsAndUserID(ctx context.Context, topicIDs []uuid.UUID, userID uuid.UUID) ([]model.TopicUser, error) {
	query, args, err := sq.Select(topicUserColumns...).
		From("topics_users").
		Where(sq.Eq{"topic_id": topicIDs, "user_id": userID}).
		OrderBy("topic_user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var topicUsers []model.TopicUser
	err = r.Chk(ctx).SelectContext(ctx, &topicUsers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get topics users: %v", err)
	}

	return topicUsers, nil
}

func (r *Repository) DeleteTopicUser(ctx context.Context, topicUserID uuid.UUID) error {
	query, args, err := sq.Delete("topics_users").
		Where(sq.Eq{"topic_user_id": topicUserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete topic user: %v", err)
	}

	return nil
}

func (r *Repository) getTopicUser(ctx context.Context, where sq.Eq) (*model.TopicUser, error) {
	query, args, err := sq.Select(topicUserColumns...).
		From("topics_users").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var topicUser model.TopicUser
	err = r.Chk(ctx).GetContext(ctx, &topicUser, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get topic user: %v", err)
	}

	return &topicUser, nil
}
