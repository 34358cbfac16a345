package db

import (
	"context"
	"testing"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/utils"
)

// TestUserLifecycle 这个测试需要实际的数据库连接 CI环境默认跳过
func TestUserLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	if DB == nil {
		t.Skip("database not initialized, run with a configured MySQL instance")
	}

	ctx := context.Background()
	userId := utils.NewID()
	hashed, err := utils.Crypt("Sup3rSecret!")
	if err != nil {
		t.Fatalf("crypt failed: %v", err)
	}
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    userId,
		UserName:  "lifecycle_test_user",
		FullName:  "Lifecycle Test",
		Email:     "lifecycle@test.local",
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	defer DB.Where("user_id = ?", userId).Delete(&model.User{})

	t.Run("CheckUser", func(t *testing.T) {
		got, err := CheckUser(ctx, "lifecycle_test_user", "", "Sup3rSecret!")
		if err != nil {
			t.Fatalf("CheckUser failed: %v", err)
		}
		if got.UserId != userId {
			t.Errorf("UserId = %d, want %d", got.UserId, userId)
		}
	})

	t.Run("RemoveDuplicate", func(t *testing.T) {
		if err := RemoveDuplicate(ctx, "lifecycle_test_user", "other@test.local"); err == nil {
			t.Error("duplicate username not rejected")
		}
	})

	t.Run("UpdateAccount", func(t *testing.T) {
		err := UpdateAccount(ctx, userId, map[string]interface{}{"full_name": "Renamed"})
		if err != nil {
			t.Fatalf("UpdateAccount failed: %v", err)
		}
		got, err := GetUser(ctx, userId)
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got.FullName != "Renamed" {
			t.Errorf("FullName = %q, want Renamed", got.FullName)
		}
	})
}
