package oss

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"playtube.com/config"
)

var minioClient *minio.Client

func Init() error {
	var err error
	minioClient, err = minio.New(config.ConfigInfo.Minio.Endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			config.ConfigInfo.Minio.AccessKey,
			config.ConfigInfo.Minio.SecretKey, ""),
		Secure: config.ConfigInfo.Minio.UseSSL,
	})
	return err
}
