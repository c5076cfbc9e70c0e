package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/vee-grants/vee-api/model"
)

// baseOf returns the common columns of any model handed to a field resolver,
// whether the executor holds it by value (list items) or by pointer.
func baseOf(source interface{}) *model.Base {
	switch v := source.(type) {
	case model.Foundation:
		return &v.Base
	case *model.Foundation:
		return &v.Base
	case model.Grant:
		return &v.Base
	case *model.Grant:
		return &v.Base
	case model.GrantFeedback:
		return &v.Base
	case *model.GrantFeedback:
		return &v.Base
	default:
		return nil
	}
}

func baseFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(UUID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if b := baseOf(p.Source); b != nil {
					return b.ID, nil
				}
				return nil, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if b := baseOf(p.Source); b != nil {
					return b.CreatedAt, nil
				}
				return nil, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if b := baseOf(p.Source); b != nil {
					return b.UpdatedAt, nil
				}
				return nil, nil
			},
		},
	}
}

func withBase(fields graphql.Fields) graphql.Fields {
	for name, field := range baseFields() {
		fields[name] = field
	}
	return fields
}

var GrantFeedbackType = graphql.NewObject(graphql.ObjectConfig{
	Name: "GrantFeedback",
	Fields: withBase(graphql.Fields{
		"grantId":  &graphql.Field{Type: graphql.NewNonNull(UUID)},
		"userId":   &graphql.Field{Type: graphql.NewNonNull(UUID)},
		"reaction": &graphql.Field{Type: graphql.NewNonNull(ReactionEnum)},
		"comment":  &graphql.Field{Type: graphql.String},
	}),
})

var GrantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Grant",
	Fields: withBase(graphql.Fields{
		"foundationId": &graphql.Field{Type: graphql.NewNonNull(UUID)},
		"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"amount":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"deadline":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"location":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"area":         &graphql.Field{Type: graphql.String},
		"feedbacks": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(GrantFeedbackType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var feedbacks []model.GrantFeedback
				switch g := p.Source.(type) {
				case model.Grant:
					feedbacks = g.Feedbacks
				case *model.Grant:
					feedbacks = g.Feedbacks
				}
				if feedbacks == nil {
					feedbacks = []model.GrantFeedback{}
				}
				return feedbacks, nil
			},
		},
	}),
})

var FoundationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Foundation",
	Fields: withBase(graphql.Fields{
		"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"logoUrl": &graphql.Field{Type: graphql.String},
		"grants": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(GrantType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var grants []model.Grant
				switch f := p.Source.(type) {
				case model.Foundation:
					grants = f.Grants
				case *model.Foundation:
					grants = f.Grants
				}
				if grants == nil {
					grants = []model.Grant{}
				}
				return grants, nil
			},
		},
	}),
})

func pageOf(item *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: item.Name() + "Page",
		Fields: graphql.Fields{
			"items": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(item)))},
			"total": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"page":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"size":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"pages": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

var (
	FoundationPageType    = pageOf(FoundationType)
	GrantPageType         = pageOf(GrantType)
	GrantFeedbackPageType = pageOf(GrantFeedbackType)
)

var PaginationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PaginationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"page": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: 1},
		"size": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: 10},
	},
})

var QueryInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "QueryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"pagination": &graphql.InputObjectFieldConfig{Type: PaginationInput},
		"search":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var FoundationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "FoundationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"logoUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var GrantInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "GrantInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"foundationId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(UUID)},
		"name":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"amount":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"deadline":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		"location":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"area":         &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

// GrantFeedbackInput.userId defaults to the authenticated caller.
var GrantFeedbackInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "GrantFeedbackInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"grantId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(UUID)},
		"userId":   &graphql.InputObjectFieldConfig{Type: UUID},
		"reaction": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(ReactionEnum)},
		"comment":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
