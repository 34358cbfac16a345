package service

import (
	"context"
	"time"

	"PlayTube.com/cmd/model"
	"PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

type UpdateAccountParam struct {
	FullName string
	Email    string
}

// UpdateAccount 全名和邮箱都可选 但至少要改一个 用户名注册后不可变
func (s *UpdateUserService) UpdateAccount(userId int64, req *UpdateAccountParam) (*model.User, error) {
	if req.FullName == "" && req.Email == "" {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}
	updates := map[string]interface{}{
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if err := db.UpdateAccount(s.ctx, userId, updates); err != nil {
		return nil, err
	}
	return db.GetUser(s.ctx, userId)
}
