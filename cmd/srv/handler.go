package main

import (
	"context"

	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/pkg/router"
	"github.com/questlane/backend/pkg/xcontext"
)

// newHealthHandler reports service health after a database ping.
func newHealthHandler(service string) router.HandlerFunc[model.HealthRequest, model.HealthResponse] {
	return func(ctx context.Context, req *model.HealthRequest) (*model.HealthResponse, error) {
		db, err := xcontext.DB(ctx).DB()
		if err != nil {
			return nil, err
		}

		if err := db.PingContext(ctx); err != nil {
			return nil, err
		}

		return &model.HealthResponse{Status: "healthy", Service: service}, nil
	}
}
