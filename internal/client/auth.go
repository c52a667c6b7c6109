package client

import (
	"context"
	"fmt"

	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/pkg/api"
)

type AuthCaller interface {
	AddGold(ctx context.Context, userID string, amount uint64) error
	AddDiamonds(ctx context.Context, userID string, amount uint64) error
}

type authCaller struct {
	apiGenerator api.Generator
}

func NewAuthCaller(endpoints ...string) *authCaller {
	return &authCaller{apiGenerator: api.NewGenerator(endpoints...)}
}

func (c *authCaller) AddGold(ctx context.Context, userID string, amount uint64) error {
	resp, err := c.apiGenerator.New("/addGold").
		Body(api.JSON{"user_id": userID, "gold": amount}).
		POST(ctx)
	if err != nil {
		return err
	}

	if resp.Code != 200 {
		return fmt.Errorf("invalid status code %d", resp.Code)
	}

	return resp.DecodeData(&model.AddGoldResponse{})
}

func (c *authCaller) AddDiamonds(ctx context.Context, userID string, amount uint64) error {
	resp, err := c.apiGenerator.New("/addDiamonds").
		Body(api.JSON{"user_id": userID, "diamonds": amount}).
		POST(ctx)
	if err != nil {
		return err
	}

	if resp.Code != 200 {
		return fmt.Errorf("invalid status code %d", resp.Code)
	}

	return resp.DecodeData(&model.AddDiamondsResponse{})
}
