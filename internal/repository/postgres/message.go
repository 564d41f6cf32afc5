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

var messageColumns = []string{
	"m.message_id",
	"m.user_id",
	"m.text",
	"m.code",
	"m.created_at",
	"m.updated_at",
}

func (r *Repository) CreateMessage(ctx context.Context, message model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("message_id", "user_id", "text", "code", "created_at", "updated_at").
		Values(message.MessageID, message.UserID, message.Text, message.Code, message.CreatedAt, message.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetMessageByID(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages m").
		Where(sq.Eq{"m.message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

func (r *Repository) GetMessagesByIDs(ctx context.Context, messageIDs []uuid.UUID) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages m").
		Where(sq.Eq{"m.message_id": messageIDs}).
		OrderBy("m.message_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return messages, nil
}

// GetStreamMessages returns up to limit thread messages with id <= cursor, newest first.
func (r *Repository) GetStreamMessages(ctx context.Context, streamID uuid.UUID, cursor *uuid.UUID, limit uint64) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages m").
		Join("messages_streams ms ON ms.message_id = m.message_id").
		Where(sq.Eq{"ms.stream_id": streamID}).
		OrderBy("m.message_id DESC").
		Limit(limit)

	if cursor != nil {
		queryBuilder = queryBuilder.Where(sq.LtOrEq{"m.message_id": *cursor})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream messages: %v", err)
	}

	return messages, nil
}

// GetUserFeedMessages reads messages filed under topics the user is subscribed to.
func (r *Repository) GetUserFeedMessages(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID, limit uint64) (model.MessageList, error) {
	subscribed := sq.Select("tu.topic_id").
		From("topics_users tu").
		Where(sq.Eq{"tu.user_id": userID})

	queryBuilder := sq.Select(messageColumns...).
		Distinct().
		From("messages m").
		Join("messages_topics mt ON mt.message_id = m.message_id").
		Where(sq.Expr("mt.topic_id IN (?)", subscribed)).
		OrderBy("m.message_id DESC").
		Limit(limit)

	if cursor != nil {
		queryBuilder = queryBuilder.Where(sq.LtOrEq{"m.message_id": *cursor})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get user messages: %v", err)
	}

	return messages, nil
}

func (r *Repository) CreateMessageTopic(ctx context.Context, messageTopic model.MessageTopic) error {
	query, args, err := sq.Insert("messages_topics").
		Columns("message_topic_id", "message_id", "topic_id", "created_at", "updated_at").
		Values(messageTopic.MessageTopicID, messageTopic.MessageID, messageTopic.TopicID, messageTopic.CreatedAt, messageTopic.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message topic: %v", err)
	}

	return nil
}
