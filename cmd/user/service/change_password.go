package service

import (
	"context"

	"PlayTube.com/cmd/user/dal/db"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type ChangePasswordService struct {
	ctx context.Context
}

func NewChangePasswordService(ctx context.Context) *ChangePasswordService {
	return &ChangePasswordService{ctx: ctx}
}

type ChangePasswordParam struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

func (s *ChangePasswordService) ChangePassword(userId int64, req *ChangePasswordParam) error {
	// 1. 参数验证
	if req.NewPassword != req.ConfirmPassword {
		return errno.ParamErr.WithMessage("new password and confirm password do not match")
	}
	if req.OldPassword == req.NewPassword {
		return errno.ParamErr.WithMessage("new password must differ from the old one")
	}
	if err := s.validatePasswordStrength(req.NewPassword); err != nil {
		return err
	}

	// 2. 验证旧密码
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "get user failed")
	}
	if err, valid := utils.VerifyPassword(req.OldPassword, user.Password); !valid {
		return errors.Wrapf(errno.AuthorizationFailedErr.WithMessage("old password is wrong"), "verify failed,err:%v", err)
	}

	// 3. 加密并更新新密码
	hashed, err := utils.Crypt(req.NewPassword)
	if err != nil {
		return errors.WithMessage(err, "crypt new password failed")
	}
	if err := db.UpdateUserPassword(s.ctx, userId, hashed); err != nil {
		return err
	}
	hlog.Infof("user %d changed password", userId)
	return nil
}

// validatePasswordStrength 验证密码强度
func (s *ChangePasswordService) validatePasswordStrength(password string) error {
	if len(password) < 6 {
		return errno.ParamErr.WithMessage("password must be at least 6 characters")
	}
	if len(password) > 20 {
		return errno.ParamErr.WithMessage("password must be at most 20 characters")
	}

	hasDigit := false
	hasLetter := false
	for _, char := range password {
		if char >= '0' && char <= '9' {
			hasDigit = true
		}
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') {
			hasLetter = true
		}
	}
	if !hasDigit {
		return errno.ParamErr.WithMessage("password must contain at least one digit")
	}
	if !hasLetter {
		return errno.ParamErr.WithMessage("password must contain at least one letter")
	}
	return nil
}
