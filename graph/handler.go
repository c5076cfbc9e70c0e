package graph

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/vee-grants/vee-api/utils/response"
)

// Handler serves GraphQL over POST
type Handler struct {
	schema graphql.Schema
}

// NewHandler creates a new GraphQL handler
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve executes one GraphQL request. Resolver failures are reported in
// the errors array of a 200 response.
func (h *Handler) Serve(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Query) == "" {
		return response.BadRequest(c, "Must provide query string")
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        withClientIP(c.UserContext(), c.IP()),
	})

	return c.Status(fiber.StatusOK).JSON(result)
}
