package oss

import (
	"os"

	"PlayTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func InitMinio() error {
	// 优先读环境变量 便于容器部署时覆盖配置文件
	endpoint := getEnvOrDefault("MINIO_ENDPOINT", config.ConfigInfo.Minio.Endpoint)
	accessKeyID := getEnvOrDefault("MINIO_ACCESS_KEY", config.ConfigInfo.Minio.AccessKey)
	secretAccessKey := getEnvOrDefault("MINIO_SECRET_KEY", config.ConfigInfo.Minio.SecretKey)
	useSSL := config.ConfigInfo.Minio.UseSSL
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		useSSL = v == "true"
	}

	publicHost = getEnvOrDefault("MINIO_PUBLIC_HOST", config.ConfigInfo.Minio.PublicHost)
	if publicHost == "" {
		publicHost = endpoint
	}

	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", endpoint, accessKeyID)

	var err error
	minioClient, err = minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	hlog.Info("Connect Minio Success")
	return nil
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
