package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
	"github.com/bez-dna/bzd-messages/internal/pkg/pagination"
	"github.com/bez-dna/bzd-messages/internal/pkg/tx"
)

// CreateMessage posts a message into the caller's topics or as a reply into the root's stream.
// Stream counting and event publication happen after commit; their failure leaves the message stored.
func (s *Service) CreateMessage(ctx context.Context, caller *model.CurrentUser, in model.CreateMessageInput) (*model.Message, error) {
	logger := logger.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("CreateMessage")

	if err := s.validator.ValidateCreateMessage(&in); err != nil {
		return nil, err
	}

	if caller == nil {
		return nil, apperr.Forbidden("authentication required")
	}

	message := model.NewMessage(caller.UserID, in.Text, in.Code)

	event, err := s.messageEvent(model.MessageCreated, message, in.TopicIDs)
	if err != nil {
		return nil, err
	}

	var (
		stream  *model.Stream
		created bool
	)
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.repository.CreateMessage(ctx, message); err != nil {
			return apperr.Infra(err, "failed to create message")
		}

		var err error
		if in.ReplyTo != nil {
			stream, created, err = s.attachReply(ctx, caller, message, *in.ReplyTo)
		} else {
			err = s.attachTopics(ctx, caller, message, in.TopicIDs)
		}
		if err != nil {
			return err
		}

		return s.emit(ctx, event)
	})
	if err != nil {
		logFailure(logger, "failed to create message", err)
		return nil, apperr.Infra(err, "failed to create message")
	}

	var postErr error
	if stream != nil && !created {
		if err := s.repository.IncrementStreamMessagesCount(ctx, stream.StreamID); err != nil {
			logger.Error(fmt.Sprintf("failed to increment messages count of stream %s: %v", stream.StreamID, err))
			if s.metrics != nil {
				s.metrics.StreamCountFails.Inc()
			}
			postErr = apperr.Infra(err, "failed to increment stream messages count")
		}
	}

	if err := s.publish(ctx, event); err != nil && postErr == nil {
		postErr = err
	}

	if postErr != nil {
		return nil, postErr
	}

	s.remember(ctx, message)

	return &message, nil
}

// attachTopics requires every listed id, repeats included, to match a topic owned by the caller.
func (s *Service) attachTopics(ctx context.Context, caller *model.CurrentUser, message model.Message, topicIDs []uuid.UUID) error {
	topics, err := s.repository.GetTopicsByIDsAndUserID(ctx, topicIDs, caller.UserID)
	if err != nil {
		return apperr.Infra(err, "failed to get topics")
	}

	if len(topics) == 0 || len(topics) != len(topicIDs) {
		return apperr.Conflict("topics are missing or not owned by the current user")
	}

	for _, topicID := range topicIDs {
		if err := s.repository.CreateMessageTopic(ctx, model.NewMessageTopic(message.MessageID, topicID)); err != nil {
			return apperr.Infra(err, "failed to create message topic")
		}
	}

	return nil
}

// attachReply joins the parent and the reply into the stream of the thread root. A parent that
// is itself a reply contributes its own stream, so threads stay one level deep.
func (s *Service) attachReply(ctx context.Context, caller *model.CurrentUser, message model.Message, parentID uuid.UUID) (*model.Stream, bool, error) {
	parent, err := s.repository.GetMessageByID(ctx, parentID)
	if err != nil {
		return nil, false, apperr.Infra(err, "failed to get parent message")
	}
	if parent == nil {
		return nil, false, apperr.NotFound("parent message not found")
	}

	root := model.NewStream(parent.MessageID, parent.Text)

	parentStream, err := s.repository.GetStreamByReplyID(ctx, parent.MessageID)
	if err != nil {
		return nil, false, apperr.Infra(err, "failed to get parent stream")
	}
	if parentStream != nil {
		root = model.NewStream(parentStream.MessageID, parentStream.Text)
	}

	stream, created, err := s.repository.UpsertStream(ctx, root)
	if err != nil {
		return nil, false, apperr.Infra(err, "failed to upsert stream")
	}
	if stream == nil {
		return nil, false, apperr.Invariant("stream is missing after upsert")
	}

	for _, messageID := range []uuid.UUID{parent.MessageID, message.MessageID} {
		if err := s.repository.CreateMessageStream(ctx, model.NewMessageStream(messageID, stream.StreamID)); err != nil {
			return nil, false, apperr.Infra(err, "failed to create message stream")
		}
	}

	for _, userID := range []uuid.UUID{parent.UserID, caller.UserID} {
		if err := s.repository.CreateStreamUser(ctx, model.NewStreamUser(stream.StreamID, userID)); err != nil {
			return nil, false, apperr.Infra(err, "failed to create stream user")
		}
	}

	return stream, created, nil
}

func (s *Service) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	logger := logger.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("GetMessage")

	if s.cache != nil {
		cached, err := s.cache.GetMessage(ctx, messageID)
		if err != nil {
			logger.Warn(fmt.Sprintf("failed to read message cache: %v", err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	message, err := s.repository.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, apperr.Infra(err, "failed to get message")
	}
	if message == nil {
		return nil, apperr.NotFound("message not found")
	}

	s.remember(ctx, *message)

	return message, nil
}

// GetMessages returns the subset of ids that exist.
func (s *Service) GetMessages(ctx context.Context, messageIDs []uuid.UUID) (model.MessageList, error) {
	if len(messageIDs) == 0 {
		return model.MessageList{}, nil
	}

	messages, err := s.repository.GetMessagesByIDs(ctx, dedupe(messageIDs))
	if err != nil {
		return nil, apperr.Infra(err, "failed to get messages")
	}

	return messages, nil
}

// GetThreadMessages pages through the stream rooted at the message, oldest first. A message
// without replies is its own single-item thread.
func (s *Service) GetThreadMessages(ctx context.Context, messageID uuid.UUID, cursor *uuid.UUID, limit int) (model.MessagePage, error) {
	message, err := s.GetMessage(ctx, messageID)
	if err != nil {
		return model.MessagePage{}, err
	}

	stream, err := s.repository.GetStreamByMessageID(ctx, messageID)
	if err != nil {
		return model.MessagePage{}, apperr.Infra(err, "failed to get stream")
	}
	if stream == nil {
		return model.MessagePage{Messages: model.MessageList{*message}}, nil
	}

	limit = pagination.Clamp(limit, s.messages.ThreadLimit, s.messages.ThreadMaxLimit)

	rows, err := s.repository.GetStreamMessages(ctx, stream.StreamID, cursor, pagination.Fetch(limit))
	if err != nil {
		return model.MessagePage{}, apperr.Infra(err, "failed to get stream messages")
	}

	return page(rows, limit), nil
}

// GetUserMessages is the feed of messages posted into the topics the user subscribes to.
func (s *Service) GetUserMessages(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID) (model.MessagePage, error) {
	limit := s.messages.UserMessagesLimit

	rows, err := s.repository.GetUserFeedMessages(ctx, userID, cursor, pagination.Fetch(limit))
	if err != nil {
		return model.MessagePage{}, apperr.Infra(err, "failed to get user messages")
	}

	return page(rows, limit), nil
}

func (s *Service) remember(ctx context.Context, message model.Message) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetMessage(ctx, message); err != nil {
		logger.FromContext(ctx, config.KeyLogger).Warn(fmt.Sprintf("failed to cache message: %v", err))
	}
}

func page(rows model.MessageList, limit int) model.MessagePage {
	messages, cursor := pagination.Cut(rows, limit)

	return model.MessagePage{
		Messages: messages,
		Cursor:   cursor,
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
