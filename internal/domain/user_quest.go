package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/questlane/backend/internal/client"
	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserQuestDomain interface {
	AssignQuest(context.Context, *model.AssignQuestRequest) (*model.AssignQuestResponse, error)
	GetUserQuests(context.Context, *model.GetUserQuestsRequest) (*model.GetUserQuestsResponse, error)
	CompleteQuest(context.Context, *model.CompleteQuestRequest) (*model.CompleteQuestResponse, error)
	ClaimQuest(context.Context, *model.ClaimQuestRequest) (*model.ClaimQuestResponse, error)
	TrackSignIn(context.Context, *model.TrackSignInRequest) (*model.TrackSignInResponse, error)
}

type userQuestDomain struct {
	userQuestRepo repository.UserQuestRepository
	catalogCaller client.CatalogCaller
	authCaller    client.AuthCaller
}

func NewUserQuestDomain(
	userQuestRepo repository.UserQuestRepository,
	catalogCaller client.CatalogCaller,
	authCaller client.AuthCaller,
) *userQuestDomain {
	return &userQuestDomain{
		userQuestRepo: userQuestRepo,
		catalogCaller: catalogCaller,
		authCaller:    authCaller,
	}
}

func (d *userQuestDomain) AssignQuest(
	ctx context.Context, req *model.AssignQuestRequest,
) (*model.AssignQuestResponse, error) {
	if req.UserID == "" || req.QuestID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty user id or quest id")
	}

	quest, err := d.catalogCaller.GetQuest(ctx, req.QuestID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest from catalog: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	count, err := d.userQuestRepo.Count(ctx, req.UserID, req.QuestID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count user quests: %v", err)
		return nil, errorx.Unknown
	}

	if count >= int64(quest.Duplication) {
		return nil, errorx.New(errorx.BadRequest,
			"Quest duplication limit reached for this user")
	}

	userQuest := &entity.UserQuest{
		Base:     entity.Base{ID: uuid.NewString()},
		UserID:   req.UserID,
		QuestID:  req.QuestID,
		Status:   entity.UserQuestInProgress,
		Progress: 0,
	}

	if err := d.userQuestRepo.Create(ctx, userQuest); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot assign quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AssignQuestResponse{
		Message:  "Quest assigned successfully",
		UserID:   req.UserID,
		QuestID:  req.QuestID,
		Status:   string(entity.UserQuestInProgress),
		Progress: 0,
	}, nil
}

func (d *userQuestDomain) GetUserQuests(
	ctx context.Context, req *model.GetUserQuestsRequest,
) (*model.GetUserQuestsResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty user id")
	}

	userQuests, err := d.userQuestRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user quests: %v", err)
		return nil, errorx.Unknown
	}

	modelUserQuests := []model.UserQuest{}
	for i := range userQuests {
		modelUserQuests = append(modelUserQuests, model.ConvertUserQuest(&userQuests[i]))
	}

	return &model.GetUserQuestsResponse{UserQuests: modelUserQuests}, nil
}

func (d *userQuestDomain) CompleteQuest(
	ctx context.Context, req *model.CompleteQuestRequest,
) (*model.CompleteQuestResponse, error) {
	quest, err := d.catalogCaller.GetQuest(ctx, req.QuestID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest from catalog: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	userQuest, err := d.userQuestRepo.GetLatest(ctx, req.UserID, req.QuestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Quest not assigned to this user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user quest: %v", err)
		return nil, errorx.Unknown
	}

	switch userQuest.Status {
	case entity.UserQuestClaimed:
		return nil, errorx.New(errorx.BadRequest, "Quest already claimed")
	case entity.UserQuestCompleted:
		return nil, errorx.New(errorx.BadRequest,
			"Quest already completed. Please claim your reward.")
	}

	if userQuest.Progress < quest.Streak {
		return nil, errorx.New(errorx.BadRequest,
			"Quest not yet completed. Progress: %d/%d", userQuest.Progress, quest.Streak)
	}

	if quest.AutoClaim {
		err := d.userQuestRepo.UpdateByID(ctx, userQuest.ID, entity.UserQuestClaimed, quest.Streak)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update user quest: %v", err)
			return nil, errorx.Unknown
		}

		if _, err := d.grantReward(ctx, req.UserID, quest.RewardID); err != nil {
			return nil, err
		}

		return &model.CompleteQuestResponse{
			Message: "Quest completed and reward granted automatically",
		}, nil
	}

	err = d.userQuestRepo.UpdateByID(ctx, userQuest.ID, entity.UserQuestCompleted, userQuest.Progress)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CompleteQuestResponse{
		Message: "Quest completed. Please claim your reward.",
	}, nil
}

func (d *userQuestDomain) ClaimQuest(
	ctx context.Context, req *model.ClaimQuestRequest,
) (*model.ClaimQuestResponse, error) {
	quest, err := d.catalogCaller.GetQuest(ctx, req.QuestID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest from catalog: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	userQuest, err := d.userQuestRepo.GetLatest(ctx, req.UserID, req.QuestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Quest not assigned to this user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user quest: %v", err)
		return nil, errorx.Unknown
	}

	if userQuest.Status == entity.UserQuestClaimed {
		return nil, errorx.New(errorx.BadRequest, "Quest reward already claimed")
	}

	if userQuest.Status != entity.UserQuestCompleted {
		return nil, errorx.New(errorx.BadRequest, "Quest is not completed yet")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.userQuestRepo.UpdateByID(ctx, userQuest.ID, entity.UserQuestClaimed, userQuest.Progress)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user quest: %v", err)
		return nil, errorx.Unknown
	}

	reward, err := d.grantReward(ctx, req.UserID, quest.RewardID)
	if err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.ClaimQuestResponse{
		Message: "Quest claimed and reward granted successfully",
		Reward:  *reward,
	}, nil
}

func (d *userQuestDomain) TrackSignIn(
	ctx context.Context, req *model.TrackSignInRequest,
) (*model.TrackSignInResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty user id")
	}

	quests, err := d.catalogCaller.GetListQuest(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests from catalog: %v", err)
		return nil, errorx.Unknown
	}

	if len(quests) == 0 {
		return &model.TrackSignInResponse{Messages: []string{"No quests available"}}, nil
	}

	messages := []string{}
	for _, quest := range quests {
		msg, err := d.trackQuest(ctx, req.UserID, quest)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot track quest %s: %v", quest.ID, err)
			continue
		}

		if msg != "" {
			messages = append(messages, msg)
		}
	}

	if len(messages) == 0 {
		messages = []string{"Sign-in tracked successfully"}
	}

	return &model.TrackSignInResponse{Messages: messages}, nil
}

// trackQuest advances a single quest for the signing-in user. It returns an
// empty message for quests that need no action.
func (d *userQuestDomain) trackQuest(
	ctx context.Context, userID string, quest model.Quest,
) (string, error) {
	userQuest, err := d.userQuestRepo.GetLatest(ctx, userID, quest.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}

		// Not assigned yet, auto-assign with initial progress of 1 if the
		// duplication limit allows.
		count, err := d.userQuestRepo.Count(ctx, userID, quest.ID)
		if err != nil {
			return "", err
		}

		if count >= int64(quest.Duplication) {
			return "", nil
		}

		err = d.userQuestRepo.Create(ctx, &entity.UserQuest{
			Base:     entity.Base{ID: uuid.NewString()},
			UserID:   userID,
			QuestID:  quest.ID,
			Status:   entity.UserQuestInProgress,
			Progress: 1,
		})
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("Quest '%s' assigned! Progress: 1/%d", quest.Title, quest.Streak), nil
	}

	if userQuest.Status == entity.UserQuestClaimed {
		return "", nil
	}

	newProgress := userQuest.Progress + 1
	if newProgress < quest.Streak {
		err := d.userQuestRepo.UpdateByID(ctx, userQuest.ID, userQuest.Status, newProgress)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("Progress for quest '%s': %d/%d",
			quest.Title, newProgress, quest.Streak), nil
	}

	if quest.AutoClaim {
		err := d.userQuestRepo.UpdateByID(ctx, userQuest.ID, entity.UserQuestClaimed, quest.Streak)
		if err != nil {
			return "", err
		}

		if _, err := d.grantReward(ctx, userID, quest.RewardID); err != nil {
			return fmt.Sprintf("Quest '%s' completed but failed to grant reward", quest.Title), nil
		}

		return fmt.Sprintf("Quest '%s' completed and reward granted!", quest.Title), nil
	}

	err = d.userQuestRepo.UpdateByID(ctx, userQuest.ID, entity.UserQuestCompleted, newProgress)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Quest '%s' completed! Please claim your reward.", quest.Title), nil
}

// grantReward fetches the reward definition from the catalog and applies it
// to the user balance through the auth service.
func (d *userQuestDomain) grantReward(
	ctx context.Context, userID, rewardID string,
) (*model.Reward, error) {
	reward, err := d.catalogCaller.GetReward(ctx, rewardID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reward from catalog: %v", err)
		return nil, errorx.New(errorx.Internal, "Reward details not found")
	}

	switch entity.RewardItemType(reward.Item) {
	case entity.GoldItem:
		err = d.authCaller.AddGold(ctx, userID, reward.Quantity)
	case entity.DiamondItem:
		err = d.authCaller.AddDiamonds(ctx, userID, reward.Quantity)
	default:
		return nil, errorx.New(errorx.Internal, "Unknown reward item %s", reward.Item)
	}

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot grant reward to user: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to grant reward")
	}

	return reward, nil
}
