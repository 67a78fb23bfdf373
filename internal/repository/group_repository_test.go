package repository_test

import (
	"context"
	"testing"

	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
	"github.com/ndewijer/TradeLog-Backend/internal/repository"
	"github.com/ndewijer/TradeLog-Backend/internal/testutil"
)

func TestGroupRepository_GetGroups_Order(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewGroupRepository(db)

	first := testutil.NewGroup().CreatedOn(testutil.DaysFromNow(-5)).Build(t, db)
	second := testutil.NewGroup().CreatedOn(testutil.DaysFromNow(-1)).Build(t, db)

	groups, err := repo.GetGroups(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(groups) != 2 || groups[0].ID != second.ID || groups[1].ID != first.ID {
		t.Errorf("Expected newest first, got %+v", groups)
	}
}

func TestGroupRepository_UpdateGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewGroupRepository(db)
	ctx := context.Background()
	group := testutil.NewGroup().WithNotes("old").Build(t, db)

	group.Name = "Renamed"
	group.StrategyType = model.StrategyRatioCalendarSpread
	group.Notes = nil
	group.UpdatedAt = testutil.DaysFromNow(1)

	if err := repo.UpdateGroup(ctx, &group); err != nil {
		t.Fatalf("UpdateGroup() failed: %v", err)
	}

	got, err := repo.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup() failed: %v", err)
	}
	if got.Name != "Renamed" || got.StrategyType != model.StrategyRatioCalendarSpread || got.Notes != nil {
		t.Errorf("Unexpected group after update: %+v", got)
	}
	if !got.UpdatedAt.Equal(group.UpdatedAt) || !got.CreatedAt.Equal(testutil.Now) {
		t.Errorf("Unexpected timestamps: created %s updated %s", got.CreatedAt, got.UpdatedAt)
	}
}

func TestGroupRepository_InsertGroup_InvalidStrategy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewGroupRepository(db)

	group := model.Group{
		ID:           testutil.MakeID(),
		Name:         "Bad",
		StrategyType: model.StrategyType("IRON_CONDOR"),
		CreatedAt:    testutil.Now,
		UpdatedAt:    testutil.Now,
	}

	err := repo.InsertGroup(context.Background(), &group)
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Fatalf("Expected conflict from CHECK constraint, got %v", err)
	}
}

func TestGroupRepository_Delete(t *testing.T) {
	t.Run("DeleteGroup reports missing groups", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewGroupRepository(db)

		err := repo.DeleteGroup(context.Background(), testutil.MakeID())
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			t.Fatalf("Expected not found, got %v", err)
		}
	})

	t.Run("DeleteGroupIfExists tolerates missing groups", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewGroupRepository(db)
		group := testutil.NewGroup().Build(t, db)

		deleted, err := repo.DeleteGroupIfExists(context.Background(), group.ID)
		if err != nil || !deleted {
			t.Fatalf("First delete = %v, %v; want true, nil", deleted, err)
		}

		deleted, err = repo.DeleteGroupIfExists(context.Background(), group.ID)
		if err != nil || deleted {
			t.Fatalf("Second delete = %v, %v; want false, nil", deleted, err)
		}
	})
}
