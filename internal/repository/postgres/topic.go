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

var topicColumns = []string{
	"topic_id",
	"user_id",
	"title",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateTopic(ctx context.Context, topic model.Topic) error {
	query, args, err := sq.Insert("topics").
		Columns(topicColumns...).
		Values(topic.TopicID, topic.UserID, topic.Title, topic.CreatedAt, topic.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save topic: %v", err)
	}

	return nil
}

func (r *Repository) GetTopicByID(ctx context.Context, topicID uuid.UUID) (*model.Topic, error) {
	query, args, err := sq.Select(topicColumns...).
		From("topics").
		Where(sq.Eq{"topic_id": topicID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var topic model.Topic
	err = r.Chk(ctx).GetContext(ctx, &topic, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get topic: %v", err)
	}

	return &topic, nil
}

func (r *Repository) GetTopicsByIDs(ctx context.Context, topicIDs []uuid.UUID) ([]model.Topic, error) {
	return r.selectTopics(ctx, sq.Eq{"topic_id": topicIDs})
}

func (r *Repository) GetTopicsByUserID(ctx context.Context, userID uuid.UUID) ([]model.Topic, error) {
	return r.selectTopics(ctx, sq.Eq{"user_id": userID})
}

// GetTopicsByIDsAndUserID returns the subset of topicIDs owned by userID.
func (r *Repository) GetTopicsByIDsAndUserID(ctx context.Context, topicIDs []uuid.UUID, userID uuid.UUID) ([]model.Topic, error) {
	return r.selectTopics(ctx, sq.Eq{"topic_id": topicIDs, "user_id": userID})
}

func (r *Repository) selectTopics(ctx context.Context, where sq.Eq) ([]model.Topic, error) {
	query, args, err := sq.Select(topicColumns...).
		From("topics").
		Where(where).
		OrderBy("topic_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var topics []model.Topic
	err = r.Chk(ctx).SelectContext(ctx, &topics, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get topics: %v", err)
	}

	return topics, nil
}
