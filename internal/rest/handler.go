package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/config"
	api "github.com/bez-dna/bzd-messages/internal/generated"
	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
)

type Handler struct {
	messages MessageService
	topics   TopicService
}

func New(messages MessageService, topics TopicService) *Handler {
	return &Handler{
		messages: messages,
		topics:   topics,
	}
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateMessage")

	var req api.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	caller, ok := h.currentUser(w, r, logger)
	if !ok {
		return
	}

	in := model.CreateMessageInput{
		Text:    req.Text,
		Code:    req.Code,
		ReplyTo: req.MessageId,
	}
	if req.TopicIds != nil {
		in.TopicIDs = *req.TopicIds
	}

	message, err := h.messages.CreateMessage(r.Context(), caller, in)
	if err != nil {
		h.fail(w, logger, "failed to create message", err)
		return
	}

	h.writeJSON(w, api.CreateMessageResponse{Message: toAPIMessage(*message)}, http.StatusOK)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request, params api.GetMessagesParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	var ids []uuid.UUID
	if params.Ids != nil {
		ids = *params.Ids
	}

	messages, err := h.messages.GetMessages(r.Context(), ids)
	if err != nil {
		h.fail(w, logger, "failed to get messages", err)
		return
	}

	h.writeJSON(w, api.GetMessagesResponse{Messages: toAPIMessages(messages)}, http.StatusOK)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request, messageId api.MessageId) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessage")

	message, err := h.messages.GetMessage(r.Context(), messageId)
	if err != nil {
		h.fail(w, logger, "failed to get message", err)
		return
	}

	h.writeJSON(w, api.GetMessageResponse{Message: toAPIMessage(*message)}, http.StatusOK)
}

func (h *Handler) GetMessageMessages(w http.ResponseWriter, r *http.Request, messageId api.MessageId, params api.GetMessageMessagesParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessageMessages")

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	page, err := h.messages.GetThreadMessages(r.Context(), messageId, params.CursorMessageId, limit)
	if err != nil {
		h.fail(w, logger, "failed to get message messages", err)
		return
	}

	h.writeJSON(w, toAPIMessagePage(page), http.StatusOK)
}

func (h *Handler) GetUserMessages(w http.ResponseWriter, r *http.Request, userId api.UserId, params api.GetUserMessagesParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserMessages")

	page, err := h.messages.GetUserMessages(r.Context(), userId, params.CursorMessageId)
	if err != nil {
		h.fail(w, logger, "failed to get user messages", err)
		return
	}

	h.writeJSON(w, toAPIMessagePage(page), http.StatusOK)
}

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateTopic")

	var req api.CreateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	caller, ok := h.currentUser(w, r, logger)
	if !ok {
		return
	}

	topic, err := h.topics.CreateTopic(r.Context(), caller, req.Title)
	if err != nil {
		h.fail(w, logger, "failed to create topic", err)
		return
	}

	h.writeJSON(w, api.TopicResponse{Topic: toAPITopic(*topic)}, http.StatusOK)
}

func (h *Handler) GetTopics(w http.ResponseWriter, r *http.Request, params api.GetTopicsParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTopics")

	var ids []uuid.UUID
	if params.Ids != nil {
		ids = *params.Ids
	}

	topics, err := h.topics.GetTopics(r.Context(), ids)
	if err != nil {
		h.fail(w, logger, "failed to get topics", err)
		return
	}

	h.writeJSON(w, api.GetTopicsResponse{Topics: toAPITopics(topics)}, http.StatusOK)
}

func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request, topicId uuid.UUID) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTopic")

	topic, err := h.topics.GetTopic(r.Context(), topicId)
	if err != nil {
		h.fail(w, logger, "failed to get topic", err)
		return
	}

	h.writeJSON(w, api.TopicResponse{Topic: toAPITopic(*topic)}, http.StatusOK)
}

func (h *Handler) GetUserTopics(w http.ResponseWriter, r *http.Request, userId api.UserId) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserTopics")

	topics, err := h.topics.GetUserTopics(r.Context(), userId)
	if err != nil {
		h.fail(w, logger, "failed to get user topics", err)
		return
	}

	h.writeJSON(w, api.GetTopicsResponse{Topics: toAPITopics(topics)}, http.StatusOK)
}

func (h *Handler) GetTopicsUsers(w http.ResponseWriter, r *http.Request, params api.GetTopicsUsersParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTopicsUsers")

	caller, ok := h.currentUser(w, r, logger)
	if !ok {
		return
	}

	var topicIDs []uuid.UUID
	if params.TopicIds != nil {
		topicIDs = *params.TopicIds
	}

	topicUsers, err := h.topics.GetTopicSubscriptions(r.Context(), topicIDs, caller)
	if err != nil {
		h.fail(w, logger, "failed to get topics users", err)
		return
	}

	h.writeJSON(w, api.GetTopicsUsersResponse{TopicsUsers: toAPITopicUsers(topicUsers)}, http.StatusOK)
}

func (h *Handler) CreateTopicUser(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateTopicUser")

	var req api.CreateTopicUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	caller, ok := h.currentUser(w, r, logger)
	if !ok {
		return
	}

	topicUser, err := h.topics.CreateSubscription(r.Context(), caller, req.TopicId)
	if err != nil {
		h.fail(w, logger, "failed to create topic user", err)
		return
	}

	h.writeJSON(w, api.TopicUserResponse{TopicUser: toAPITopicUser(*topicUser)}, http.StatusOK)
}

func (h *Handler) DeleteTopicUser(w http.ResponseWriter, r *http.Request, topicUserId uuid.UUID) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteTopicUser")

	caller, ok := h.currentUser(w, r, logger)
	if !ok {
		return
	}

	if err := h.topics.DeleteSubscription(r.Context(), caller, topicUserId); err != nil {
		h.fail(w, logger, "failed to delete topic user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- helpers -----------------------------

// currentUser reads the caller put into the context by the auth middleware. A missing value is an anonymous caller.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request, log logger.LoggerInterface) (*model.CurrentUser, bool) {
	raw, _ := r.Context().Value(config.KeyUUID).(string)

	caller, err := model.NewCurrentUser(raw)
	if err != nil {
		log.Error(fmt.Sprintf("failed to parse current user: %v", err))
		h.writeError(w, "invalid current user id", http.StatusBadRequest)
		return nil, false
	}

	return caller, true
}

func (h *Handler) fail(w http.ResponseWriter, log logger.LoggerInterface, msg string, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("%s: %v", msg, err))
		h.writeError(w, msg, status)
		return
	}

	log.Warn(fmt.Sprintf("%s: %v", msg, err))
	h.writeError(w, err.Error(), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
