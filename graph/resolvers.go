package graph

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/vee-grants/vee-api/services"
	"github.com/vee-grants/vee-api/utils/auth"
	"github.com/vee-grants/vee-api/utils/validation"
)

// Services bundles the dependencies of the GraphQL resolvers.
type Services struct {
	Foundations *services.FoundationService
	Grants      *services.GrantService
	Feedbacks   *services.GrantFeedbackService
	Audit       *services.AuditService
	Validator   *validation.Validator
}

type resolverFn func(p graphql.ResolveParams, userID uuid.UUID) (interface{}, error)

// authenticated rejects anonymous callers before next runs.
func authenticated(next resolverFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		userID, ok := auth.UserIDFromContext(p.Context)
		if !ok {
			return nil, ErrNotAuthenticated
		}

		result, err := next(p, userID)
		if err != nil {
			return nil, publicError(err)
		}
		return result, nil
	}
}

// audited records every successful run of next against resource.
// A failed audit write is logged and does not fail the mutation.
func (s Services) audited(resource string, next resolverFn) resolverFn {
	return func(p graphql.ResolveParams, userID uuid.UUID) (interface{}, error) {
		result, err := next(p, userID)
		if err != nil || s.Audit == nil {
			return result, err
		}

		entry := services.AuditEntry{
			UserID:    userID,
			Operation: p.Info.FieldName,
			Resource:  resource,
			Variables: p.Args,
			IPAddress: clientIP(p.Context),
		}
		if err := s.Audit.Record(context.WithoutCancel(p.Context), entry); err != nil {
			log.Errorw("Failed to record audit log", "operation", entry.Operation, "error", err)
		}
		return result, nil
	}
}

func (s Services) validate(in interface{}) error {
	if s.Validator == nil {
		return nil
	}
	return s.Validator.ValidateStruct(in)
}

func (s Services) foundations(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := queryInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Foundations.List(p.Context, in)
}

func (s Services) foundationByID(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	return s.Foundations.Get(p.Context, idArg(p.Args, "id"))
}

func (s Services) createFoundation(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := foundationInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Foundations.Create(p.Context, in)
}

func (s Services) updateFoundation(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := foundationInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Foundations.Update(p.Context, idArg(p.Args, "foundationId"), in)
}

func (s Services) deleteFoundation(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	if err := s.Foundations.Delete(p.Context, idArg(p.Args, "foundationId")); err != nil {
		return nil, err
	}
	return true, nil
}

func (s Services) grants(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := queryInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Grants.List(p.Context, in)
}

func (s Services) grantByID(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	return s.Grants.Get(p.Context, idArg(p.Args, "id"))
}

func (s Services) grantMatches(p graphql.ResolveParams, userID uuid.UUID) (interface{}, error) {
	in := queryInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Grants.Matches(p.Context, userID, in)
}

func (s Services) grantOpportunities(p graphql.ResolveParams, userID uuid.UUID) (interface{}, error) {
	in := queryInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Grants.Opportunities(p.Context, userID, in)
}

func (s Services) createGrant(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := grantInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Grants.Create(p.Context, in)
}

func (s Services) updateGrant(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := grantInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Grants.Update(p.Context, idArg(p.Args, "grantId"), in)
}

func (s Services) deleteGrant(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	if err := s.Grants.Delete(p.Context, idArg(p.Args, "grantId")); err != nil {
		return nil, err
	}
	return true, nil
}

func (s Services) grantFeedbacks(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := queryInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Feedbacks.List(p.Context, in)
}

func (s Services) grantFeedbackByID(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	return s.Feedbacks.Get(p.Context, idArg(p.Args, "id"))
}

func (s Services) createGrantFeedback(p graphql.ResolveParams, userID uuid.UUID) (interface{}, error) {
	in := grantFeedbackInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Feedbacks.Create(p.Context, userID, in)
}

func (s Services) updateGrantFeedback(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	in := grantFeedbackInputArg(p.Args)
	if err := s.validate(in); err != nil {
		return nil, err
	}
	return s.Feedbacks.Update(p.Context, idArg(p.Args, "grantFeedbackId"), in)
}

func (s Services) deleteGrantFeedback(p graphql.ResolveParams, _ uuid.UUID) (interface{}, error) {
	if err := s.Feedbacks.Delete(p.Context, idArg(p.Args, "grantFeedbackId")); err != nil {
		return nil, err
	}
	return true, nil
}
