package graph

import (
	"time"

	"github.com/google/uuid"
	"github.com/vee-grants/vee-api/model"
	"github.com/vee-grants/vee-api/services"
)

func queryInputArg(args map[string]interface{}) services.QueryInput {
	in := services.DefaultQueryInput()

	raw, ok := args["queryInput"].(map[string]interface{})
	if !ok {
		return in
	}
	if pagination, ok := raw["pagination"].(map[string]interface{}); ok {
		if page, ok := pagination["page"].(int); ok {
			in.Pagination.Page = page
		}
		if size, ok := pagination["size"].(int); ok {
			in.Pagination.Size = size
		}
	}
	in.Search = optionalString(raw, "search")

	return in
}

func foundationInputArg(args map[string]interface{}) model.FoundationInput {
	raw, _ := args["foundationInput"].(map[string]interface{})
	name, _ := raw["name"].(string)
	return model.FoundationInput{
		Name:    name,
		LogoURL: optionalString(raw, "logoUrl"),
	}
}

func grantInputArg(args map[string]interface{}) model.GrantInput {
	raw, _ := args["grantInput"].(map[string]interface{})
	in := model.GrantInput{Area: optionalString(raw, "area")}
	in.FoundationID, _ = raw["foundationId"].(uuid.UUID)
	in.Name, _ = raw["name"].(string)
	in.Amount, _ = raw["amount"].(int)
	in.Deadline, _ = raw["deadline"].(time.Time)
	in.Location, _ = raw["location"].(string)
	return in
}

func grantFeedbackInputArg(args map[string]interface{}) model.GrantFeedbackInput {
	raw, _ := args["grantFeedbackInput"].(map[string]interface{})
	in := model.GrantFeedbackInput{Comment: optionalString(raw, "comment")}
	in.GrantID, _ = raw["grantId"].(uuid.UUID)
	in.Reaction, _ = raw["reaction"].(model.Reaction)
	if userID, ok := raw["userId"].(uuid.UUID); ok {
		in.UserID = &userID
	}
	return in
}

func idArg(args map[string]interface{}, name string) uuid.UUID {
	id, _ := args[name].(uuid.UUID)
	return id
}

func optionalString(raw map[string]interface{}, key string) *string {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	return &s
}
