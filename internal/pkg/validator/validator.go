package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

func (v *Validator) ValidateCreateMessage(in *model.CreateMessageInput) error {
	if err := v.validate.Struct(in); err != nil {
		return apperr.Validation(describe(err))
	}

	hasTopics := in.TopicIDs != nil
	hasReply := in.ReplyTo != nil

	switch {
	case hasTopics && hasReply:
		return apperr.Validation("either topic_ids or message_id must be set, not both")
	case !hasTopics && !hasReply:
		return apperr.Validation("message target is required")
	case hasTopics && len(in.TopicIDs) == 0:
		return apperr.Validation("topic_ids cannot be empty")
	}

	return nil
}

func (v *Validator) ValidateCreateTopic(in *model.CreateTopicInput) error {
	if err := v.validate.Struct(in); err != nil {
		return apperr.Validation(describe(err))
	}

	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]

	return fmt.Sprintf("field %s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
}
