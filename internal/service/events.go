package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
)

func (s *Service) messageEvent(tp model.EventType, message model.Message, topicIDs []uuid.UUID) (model.Event, error) {
	if topicIDs == nil {
		topicIDs = []uuid.UUID{}
	}

	payload, err := json.Marshal(model.MessageEvent{
		MessageID: message.MessageID,
		UserID:    message.UserID,
		Text:      message.Text,
		Code:      message.Code,
		TopicIDs:  topicIDs,
		CreatedAt: message.CreatedAt,
		UpdatedAt: message.UpdatedAt,
	})
	if err != nil {
		return model.Event{}, apperr.Infra(err, "failed to encode message event")
	}

	return model.Event{
		Subject: s.kafka.MessageTopic,
		Type:    tp,
		Key:     message.MessageID.String(),
		Payload: payload,
	}, nil
}

func (s *Service) topicUserEvent(tp model.EventType, topicUser model.TopicUser) (model.Event, error) {
	payload, err := json.Marshal(model.TopicUserEvent{
		TopicUserID: topicUser.TopicUserID,
		UserID:      topicUser.UserID,
		TopicID:     topicUser.TopicID,
		CreatedAt:   topicUser.CreatedAt,
		UpdatedAt:   topicUser.UpdatedAt,
	})
	if err != nil {
		return model.Event{}, apperr.Infra(err, "failed to encode topic user event")
	}

	return model.Event{
		Subject: s.kafka.TopicUserTopic,
		Type:    tp,
		Key:     topicUser.TopicUserID.String(),
		Payload: payload,
	}, nil
}
