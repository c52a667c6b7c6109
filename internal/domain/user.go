package domain

import (
	"context"
	"errors"

	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/enum"
	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	UpdateUser(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	AddGold(context.Context, *model.AddGoldRequest) (*model.AddGoldResponse, error)
	AddDiamonds(context.Context, *model.AddDiamondsRequest) (*model.AddDiamondsResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) *userDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUserResponse(model.ConvertUser(user))
	return &resp, nil
}

func (d *userDomain) UpdateUser(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	status, err := enum.ToEnum[entity.UserStatusType](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	user, err := d.userRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.UpdateStatus(ctx, user.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user status: %v", err)
		return nil, errorx.Unknown
	}

	user.Status = status
	resp := model.UpdateUserResponse(model.ConvertUser(user))
	return &resp, nil
}

func (d *userDomain) AddGold(
	ctx context.Context, req *model.AddGoldRequest,
) (*model.AddGoldResponse, error) {
	if req.Gold == 0 {
		return nil, errorx.New(errorx.BadRequest, "Number of gold must be positive")
	}

	if err := d.userRepo.AddGold(ctx, req.UserID, req.Gold); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot add gold: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddGoldResponse{}, nil
}

func (d *userDomain) AddDiamonds(
	ctx context.Context, req *model.AddDiamondsRequest,
) (*model.AddDiamondsResponse, error) {
	if req.Diamonds == 0 {
		return nil, errorx.New(errorx.BadRequest, "Number of diamonds must be positive")
	}

	if err := d.userRepo.AddDiamond(ctx, req.UserID, req.Diamonds); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot add diamonds: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddDiamondsResponse{}, nil
}
