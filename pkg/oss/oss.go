package oss

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"PlayTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
)

var (
	minioClient *minio.Client
	publicHost  string
)

func ensureBucket(ctx context.Context, bucketName string) error {
	location := "us-east-1" // MinIO默认区域，根据实际情况修改
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadVideo 上传视频文件 返回公开访问地址
func UploadVideo(ctx context.Context, path, objectKey string) (string, error) {
	bucketName := constants.VideoBucket
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}
	objectName := "video/" + objectKey + ".mp4"
	_, err := minioClient.FPutObject(ctx, bucketName, objectName, path,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		hlog.Info(err)
		return "", err
	}
	return publicURL(bucketName, objectName), nil
}

// UploadImage 上传图片（头像/封面/缩略图）contentType决定后缀
func UploadImage(ctx context.Context, data []byte, dataSize int64, objectKey, contentType string) (string, error) {
	bucketName := constants.PictureBucket
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	case "image/webp":
		suffix = ".webp"
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}

	objectName := objectKey + suffix
	_, err := minioClient.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), dataSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.Info("Failed to upload image: ", err)
		return "", err
	}
	return publicURL(bucketName, objectName), nil
}

// DeleteByUrl 根据之前返回的公开地址反推bucket和object并删除
// 删除失败只记录日志 数据库记录已删除时远端对象成为孤儿是设计上接受的
func DeleteByUrl(ctx context.Context, rawUrl string) error {
	if rawUrl == "" {
		return nil
	}
	u, err := url.Parse(rawUrl)
	if err != nil {
		return err
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("cannot resolve object key from url: %s", rawUrl)
	}
	bucketName, objectName := parts[0], parts[1]
	if err := minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		hlog.Infof("Failed to delete %s/%s: %v", bucketName, objectName, err)
		return err
	}
	return nil
}

func publicURL(bucketName, objectName string) string {
	return fmt.Sprintf("http://%s/%s/%s", publicHost, bucketName, objectName)
}
