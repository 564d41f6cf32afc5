package rest

import (
	api "github.com/bez-dna/bzd-messages/internal/generated"
	"github.com/bez-dna/bzd-messages/internal/model"
)

func toAPIMessage(m model.Message) api.Message {
	return api.Message{
		MessageId: m.MessageID,
		UserId:    m.UserID,
		Text:      m.Text,
		Code:      m.Code,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAPIMessages(messages model.MessageList) []api.Message {
	out := make([]api.Message, len(messages))
	for i, m := range messages {
		out[i] = toAPIMessage(m)
	}

	return out
}

func toAPIMessagePage(page model.MessagePage) api.MessagePageResponse {
	resp := api.MessagePageResponse{
		Messages: toAPIMessages(page.Messages),
	}
	if page.Cursor != nil {
		cursor := page.Cursor.MessageID
		resp.CursorMessageId = &cursor
	}

	return resp
}

func toAPITopic(t model.Topic) api.Topic {
	return api.Topic{
		TopicId:   t.TopicID,
		UserId:    t.UserID,
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toAPITopics(topics []model.Topic) []api.Topic {
	out := make([]api.Topic, len(topics))
	for i, t := range topics {
		out[i] = toAPITopic(t)
	}

	return out
}

func toAPITopicUser(tu model.TopicUser) api.TopicUser {
	return api.TopicUser{
		TopicUserId: tu.TopicUserID,
		TopicId:     tu.TopicID,
		UserId:      tu.UserID,
		Rate:        api.TopicUserRate(tu.Rate),
		Timing:      api.TopicUserTiming(tu.Timing),
		CreatedAt:   tu.CreatedAt,
		UpdatedAt:   tu.UpdatedAt,
	}
}

func toAPITopicUsers(topicUsers []model.TopicUser) []api.TopicUser {
	out := make([]api.TopicUser, len(topicUsers))
	for i, tu := range topicUsers {
		out[i] = toAPITopicUser(tu)
	}

	return out
}
