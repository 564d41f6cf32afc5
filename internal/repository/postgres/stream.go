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

var streamColumns = []string{
	"s.stream_id",
	"s.message_id",
	"s.text",
	"s.messages_count",
	"s.created_at",
	"s.updated_at",
}

// UpsertStream inserts the stream unless one already exists for its root message and
// returns the stored row. created reports whether this call inserted it.
func (r *Repository) UpsertStream(ctx context.Context, stream model.Stream) (*model.Stream, bool, error) {
	query, args, err := sq.Insert("streams").
		Columns("stream_id", "message_id", "text", "messages_count", "created_at", "updated_at").
		Values(stream.StreamID, stream.MessageID, stream.Text, stream.MessagesCount, stream.CreatedAt, stream.UpdatedAt).
		Suffix("ON CONFLICT (message_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert stream: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get affected rows: %v", err)
	}

	stored, err := r.GetStreamByMessageID(ctx, stream.MessageID)
	if err != nil {
		return nil, false, err
	}

	return stored, affected > 0, nil
}

// GetStreamByMessageID finds the stream rooted at the message.
func (r *Repository) GetStreamByMessageID(ctx context.Context, messageID uuid.UUID) (*model.Stream, error) {
	query, args, err := sq.Select(streamColumns...).
		From("streams s").
		Where(sq.Eq{"s.message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stream model.Stream
	err = r.Chk(ctx).GetContext(ctx, &stream, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %v", err)
	}

	return &stream, nil
}

// GetStreamByReplyID finds the stream the message takes part in as a reply, not as root.
func (r *Repository) GetStreamByReplyID(ctx context.Context, messageID uuid.UUID) (*model.Stream, error) {
	query, args, err := sq.Select(streamColumns...).
		From("streams s").
		Join("messages_streams ms ON ms.stream_id = s.stream_id").
		Where(sq.Eq{"ms.message_id": messageID}).
		Where(sq.NotEq{"s.message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stream model.Stream
	err = r.Chk(ctx).GetContext(ctx, &stream, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reply stream: %v", err)
	}

	return &stream, nil
}

func (r *Repository) CreateMessageStream(ctx context.Context, messageStream model.MessageStream) error {
	query, args, err := sq.Insert("messages_streams").
		Columns("message_stream_id", "message_id", "stream_id", "created_at", "updated_at").
		Values(messageStream.MessageStreamID, messageStream.MessageID, messageStream.StreamID, messageStream.CreatedAt, messageStream.UpdatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message stream: %v", err)
	}

	return nil
}

func (r *Repository) CreateStreamUser(ctx context.Context, streamUser model.StreamUser) error {
	query, args, err := sq.Insert("streams_users").
		Columns("stream_user_id", "stream_id", "user_id", "created_at", "updated_at").
		Values(streamUser.StreamUserID, streamUser.StreamID, streamUser.UserID, streamUser.CreatedAt, streamUser.UpdatedAt).
		Suffix("ON CONFLICT (stream_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save stream user: %v", err)
	}

	return nil
}

func (r *Repository) IncrementStreamMessagesCount(ctx context.Context, streamID uuid.UUID) error {
	query, args, err := sq.Update("streams").
		Set("messages_count", sq.Expr("messages_count + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"stream_id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment stream messages count: %v", err)
	}

	return nil
}
