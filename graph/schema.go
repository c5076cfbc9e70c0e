package graph

import (
	"github.com/graphql-go/graphql"
)

func queryInputArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"queryInput": &graphql.ArgumentConfig{Type: QueryInput},
	}
}

func idArgs(name string) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		name: &graphql.ArgumentConfig{Type: graphql.NewNonNull(UUID)},
	}
}

func inputArgs(name string, input *graphql.InputObject, idName string) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		name: &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
	if idName != "" {
		args[idName] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(UUID)}
	}
	return args
}

// NewSchema builds the executable schema. Every root field requires an
// authenticated caller and every mutation is audited.
func NewSchema(s Services) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"foundations": &graphql.Field{
				Type:    FoundationPageType,
				Args:    queryInputArgs(),
				Resolve: authenticated(s.foundations),
			},
			"foundationById": &graphql.Field{
				Type:    FoundationType,
				Args:    idArgs("id"),
				Resolve: authenticated(s.foundationByID),
			},
			"grants": &graphql.Field{
				Type:    GrantPageType,
				Args:    queryInputArgs(),
				Resolve: authenticated(s.grants),
			},
			"grantById": &graphql.Field{
				Type:    GrantType,
				Args:    idArgs("id"),
				Resolve: authenticated(s.grantByID),
			},
			"grantMatches": &graphql.Field{
				Type:        GrantPageType,
				Description: "Grants the caller has not reacted to yet.",
				Args:        queryInputArgs(),
				Resolve:     authenticated(s.grantMatches),
			},
			"grantOpportunities": &graphql.Field{
				Type:        GrantPageType,
				Description: "Grants the caller liked.",
				Args:        queryInputArgs(),
				Resolve:     authenticated(s.grantOpportunities),
			},
			"grantFeedbacks": &graphql.Field{
				Type:    GrantFeedbackPageType,
				Args:    queryInputArgs(),
				Resolve: authenticated(s.grantFeedbacks),
			},
			"grantFeedbackById": &graphql.Field{
				Type:    GrantFeedbackType,
				Args:    idArgs("id"),
				Resolve: authenticated(s.grantFeedbackByID),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createFoundation": &graphql.Field{
				Type:    FoundationType,
				Args:    inputArgs("foundationInput", FoundationInput, ""),
				Resolve: authenticated(s.audited("foundations", s.createFoundation)),
			},
			"updateFoundation": &graphql.Field{
				Type:    FoundationType,
				Args:    inputArgs("foundationInput", FoundationInput, "foundationId"),
				Resolve: authenticated(s.audited("foundations", s.updateFoundation)),
			},
			"deleteFoundation": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    idArgs("foundationId"),
				Resolve: authenticated(s.audited("foundations", s.deleteFoundation)),
			},
			"createGrant": &graphql.Field{
				Type:    GrantType,
				Args:    inputArgs("grantInput", GrantInput, ""),
				Resolve: authenticated(s.audited("grants", s.createGrant)),
			},
			"updateGrant": &graphql.Field{
				Type:    GrantType,
				Args:    inputArgs("grantInput", GrantInput, "grantId"),
				Resolve: authenticated(s.audited("grants", s.updateGrant)),
			},
			"deleteGrant": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    idArgs("grantId"),
				Resolve: authenticated(s.audited("grants", s.deleteGrant)),
			},
			"createGrantFeedback": &graphql.Field{
				Type:    GrantFeedbackType,
				Args:    inputArgs("grantFeedbackInput", GrantFeedbackInput, ""),
				Resolve: authenticated(s.audited("grant_feedbacks", s.createGrantFeedback)),
			},
			"updateGrantFeedback": &graphql.Field{
				Type:    GrantFeedbackType,
				Args:    inputArgs("grantFeedbackInput", GrantFeedbackInput, "grantFeedbackId"),
				Resolve: authenticated(s.audited("grant_feedbacks", s.updateGrantFeedback)),
			},
			"deleteGrantFeedback": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    idArgs("grantFeedbackId"),
				Resolve: authenticated(s.audited("grant_feedbacks", s.deleteGrantFeedback)),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
