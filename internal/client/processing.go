package client

import (
	"context"
	"fmt"
	"time"

	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/pkg/api"
)

type ProcessingCaller interface {
	TrackSignIn(ctx context.Context, userID string) error
}

type processingCaller struct {
	apiGenerator api.Generator
}

func NewProcessingCaller(endpoints ...string) *processingCaller {
	return &processingCaller{apiGenerator: api.NewGenerator(endpoints...)}
}

func (c *processingCaller) TrackSignIn(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.apiGenerator.New("/trackSignIn").
		Body(api.JSON{"user_id": userID}).
		POST(ctx)
	if err != nil {
		return err
	}

	if resp.Code != 200 {
		return fmt.Errorf("invalid status code %d", resp.Code)
	}

	return resp.DecodeData(&model.TrackSignInResponse{})
}
