package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/vee-grants/vee-api/model"
)

// UUID is serialized as its canonical hyphenated string.
var UUID = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "UUID",
	Description: "A universally unique identifier in its canonical textual form.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case uuid.UUID:
			return v.String()
		case *uuid.UUID:
			if v == nil {
				return nil
			}
			return v.String()
		case string:
			return v
		default:
			return nil
		}
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return parseUUID(s)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		s, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseUUID(s.Value)
	},
})

func parseUUID(s string) interface{} {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return id
}

var ReactionEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ReactionEnum",
	Values: graphql.EnumValueConfigMap{
		string(model.ReactionLike): &graphql.EnumValueConfig{
			Value: model.ReactionLike,
		},
		string(model.ReactionDislike): &graphql.EnumValueConfig{
			Value: model.ReactionDislike,
		},
	},
})
