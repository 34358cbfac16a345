package db

import (
	"context"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/errno"
	"PlayTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

// CheckUser 用户名或邮箱二选一登录 密码校验放在DAL里和用户查询一起完成
func CheckUser(ctx context.Context, username, email, password string) (*model.User, error) {
	var user model.User
	db := DB.WithContext(ctx).Model(&model.User{})
	if username != "" {
		db = db.Where("Binary user_name=?", username)
	} else if email != "" {
		db = db.Where("email=?", email)
	} else {
		return nil, errno.ParamErr.WithMessage("username or email is required")
	}
	if err := db.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("user does not exist")
		}
		return nil, errors.Wrapf(err, "CheckUser failed,err:%v", err)
	}
	if err, flag := utils.VerifyPassword(password, user.Password); !flag {
		return nil, errors.Wrapf(errno.AuthorizationFailedErr.WithMessage("password wrong"), "verify failed,err:%v", err)
	}
	return &user, nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id=?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed,err:%v", err)
	}
	return count > 0, nil
}

func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id=?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("user does not exist")
		}
		return nil, errors.Wrapf(err, "GetUser failed,err:%v", err)
	}
	return &user, nil
}

func GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("Binary user_name=?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("channel does not exist")
		}
		return nil, errors.Wrapf(err, "GetUserByName failed,err:%v", err)
	}
	return &user, nil
}

func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsersByIds failed,err:%v", err)
	}
	return users, nil
}

// RemoveDuplicate 注册前查重 用户名和邮箱都不允许重复
func RemoveDuplicate(ctx context.Context, username, email string) error {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name=? Or email=?", username, email).Count(&count).Error; err != nil {
		return errors.Wrap(err, "Query user failed!")
	}
	if count > 0 {
		return errno.DuplicateErr.WithMessage("user with email or username already exists")
	}
	return nil
}

func UpdateAccount(ctx context.Context, userId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id=?", userId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateAccount failed,err: %v", err)
	}
	return nil
}

// UpdateUserPassword 专门用于更新用户密码
func UpdateUserPassword(ctx context.Context, userId int64, newPassword string) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id=?", userId).Update("password", newPassword).Error; err != nil {
		return errors.Wrapf(err, "UpdateUserPassword failed,err: %v", err)
	}
	return nil
}

func UpdateAvatarUrl(ctx context.Context, userId int64, avatarUrl string) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id=?", userId).Update("avatar_url", avatarUrl).Error; err != nil {
		return errors.Wrapf(err, "UpdateAvatarUrl failed,err:%v", err)
	}
	return nil
}

func UpdateCoverUrl(ctx context.Context, userId int64, coverUrl string) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id=?", userId).Update("cover_url", coverUrl).Error; err != nil {
		return errors.Wrapf(err, "UpdateCoverUrl failed,err:%v", err)
	}
	return nil
}

func UpdateRefreshToken(ctx context.Context, userId int64, token string) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id=?", userId).Update("refresh_token", token).Error; err != nil {
		return errors.Wrapf(err, "UpdateRefreshToken failed,err:%v", err)
	}
	return nil
}
