package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// BakeryOutput is a single bakery.
type BakeryOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BakedGoodOutput is a single baked good.
type BakedGoodOutput struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BakeryID int64   `json:"bakery_id"`
}

// ListBakeriesInput is the input schema for the list_bakeries tool.
type ListBakeriesInput struct{}

// ListBakeriesOutput is the output schema for the list_bakeries tool.
type ListBakeriesOutput struct {
	Bakeries []BakeryOutput `json:"bakeries"`
	Count    int            `json:"count"`
}

// ListBakedGoodsInput is the input schema for the list_baked_goods tool.
type ListBakedGoodsInput struct {
	BakeryID int64 `json:"bakery_id,omitempty" jsonschema:"only list goods of this bakery (omit for all)"`
}

// ListBakedGoodsOutput is the output schema for the list_baked_goods tool.
type ListBakedGoodsOutput struct {
	BakedGoods []BakedGoodOutput `json:"baked_goods"`
	Count      int               `json:"count"`
}

// CreateBakedGoodInput is the input schema for the create_baked_good tool.
type CreateBakedGoodInput struct {
	Name     string  `json:"name" jsonschema:"unique name of the baked good"`
	Price    float64 `json:"price" jsonschema:"price of the baked good"`
	BakeryID int64   `json:"bakery_id" jsonschema:"ID of the bakery that sells it"`
}

// RenameBakeryInput is the input schema for the rename_bakery tool.
type RenameBakeryInput struct {
	ID   int64  `json:"id" jsonschema:"ID of the bakery to rename"`
	Name string `json:"name" jsonschema:"new unique name"`
}

// DeleteBakedGoodInput is the input schema for the delete_baked_good tool.
type DeleteBakedGoodInput struct {
	ID int64 `json:"id" jsonschema:"ID of the baked good to delete"`
}

// MessageOutput reports the outcome of an operation with no other result.
type MessageOutput struct {
	Message string `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_bakeries",
		Description: "List all bakeries",
	}, s.handleListBakeries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_baked_goods",
		Description: "List baked goods, optionally for a single bakery",
	}, s.handleListBakedGoods)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_baked_good",
		Description: "Create a baked good for an existing bakery",
	}, s.handleCreateBakedGood)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rename_bakery",
		Description: "Change the name of a bakery",
	}, s.handleRenameBakery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_baked_good",
		Description: "Delete a baked good by ID",
	}, s.handleDeleteBakedGood)
}

func (s *Server) handleListBakeries(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListBakeriesInput,
) (*mcp.CallToolResult, ListBakeriesOutput, error) {
	bakeries, err := s.ports.Bakeries.List(ctx)
	if err != nil {
		return nil, ListBakeriesOutput{}, err
	}

	output := ListBakeriesOutput{
		Bakeries: make([]BakeryOutput, len(bakeries)),
		Count:    len(bakeries),
	}
	for i := range bakeries {
		output.Bakeries[i] = toBakeryOutput(&bakeries[i])
	}
	return nil, output, nil
}

func (s *Server) handleListBakedGoods(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListBakedGoodsInput,
) (*mcp.CallToolResult, ListBakedGoodsOutput, error) {
	var (
		goods []domain.BakedGood
		err   error
	)
	if input.BakeryID != 0 {
		goods, err = s.ports.BakedGoods.ListByBakery(ctx, input.BakeryID)
	} else {
		goods, err = s.ports.BakedGoods.List(ctx)
	}
	if err != nil {
		return nil, ListBakedGoodsOutput{}, err
	}

	return nil, toBakedGoodsOutput(goods), nil
}

func (s *Server) handleCreateBakedGood(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateBakedGoodInput,
) (*mcp.CallToolResult, BakedGoodOutput, error) {
	created, err := s.ports.BakedGoods.Create(ctx, domain.BakedGood{
		Name:     input.Name,
		Price:    input.Price,
		BakeryID: input.BakeryID,
	})
	if err != nil {
		return nil, BakedGoodOutput{}, err
	}
	return nil, toBakedGoodOutput(created), nil
}

func (s *Server) handleRenameBakery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenameBakeryInput,
) (*mcp.CallToolResult, BakeryOutput, error) {
	bakery, err := s.ports.Bakeries.Rename(ctx, input.ID, input.Name)
	if err != nil {
		return nil, BakeryOutput{}, err
	}
	return nil, toBakeryOutput(bakery), nil
}

func (s *Server) handleDeleteBakedGood(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteBakedGoodInput,
) (*mcp.CallToolResult, MessageOutput, error) {
	if err := s.ports.BakedGoods.Delete(ctx, input.ID); err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: "Baked good deleted"}, nil
}

func toBakeryOutput(b *domain.Bakery) BakeryOutput {
	return BakeryOutput{ID: b.ID, Name: b.Name}
}

func toBakedGoodOutput(g *domain.BakedGood) BakedGoodOutput {
	return BakedGoodOutput{ID: g.ID, Name: g.Name, Price: g.Price, BakeryID: g.BakeryID}
}

func toBakedGoodsOutput(goods []domain.BakedGood) ListBakedGoodsOutput {
	output := ListBakedGoodsOutput{
		BakedGoods: make([]BakedGoodOutput, len(goods)),
		Count:      len(goods),
	}
	for i := range goods {
		output.BakedGoods[i] = toBakedGoodOutput(&goods[i])
	}
	return output
}
