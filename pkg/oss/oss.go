package oss

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"

	"playtube.com/config"
)

const (
	VideoBucket   = "video"
	PictureBucket = "picture"

	defaultRegion = "us-east-1"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: defaultRegion})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func publicUrl(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicEndpoint, bucketName, objectName)
}

// UploadVideo stores the local file under video/<vid>/video.mp4 and returns
// its public URL. The upload is attempted once; the caller decides what a
// failure means.
func UploadVideo(ctx context.Context, path string, vid int64) (string, error) {
	if err := ensureBucket(ctx, VideoBucket); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("video/%d/video.mp4", vid)
	_, err := minioClient.FPutObject(ctx, VideoBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		hlog.CtxErrorf(ctx, "upload video failed: %v", err)
		return "", err
	}
	return publicUrl(VideoBucket, objectName), nil
}

// UploadThumbnail stores the local image under video/<vid>/cover.jpg.
func UploadThumbnail(ctx context.Context, path string, vid int64) (string, error) {
	if err := ensureBucket(ctx, VideoBucket); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("video/%d/cover.jpg", vid)
	_, err := minioClient.FPutObject(ctx, VideoBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		hlog.CtxErrorf(ctx, "upload thumbnail failed: %v", err)
		return "", err
	}
	return publicUrl(VideoBucket, objectName), nil
}

func imageSuffix(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
}

// UploadUserImage stores an avatar or cover image for the user. kind is
// "avatar" or "cover". The previous object of either suffix is removed first
// so the user keeps exactly one.
func UploadUserImage(ctx context.Context, data []byte, uid int64, kind, contentType string) (string, error) {
	deleteUserImage(ctx, uid, kind)

	if err := ensureBucket(ctx, PictureBucket); err != nil {
		return "", err
	}
	suffix, err := imageSuffix(contentType)
	if err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("%s/%d%s", kind, uid, suffix)
	_, err = minioClient.PutObject(ctx, PictureBucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return publicUrl(PictureBucket, objectName), nil
}

func deleteUserImage(ctx context.Context, uid int64, kind string) {
	for _, suffix := range []string{".jpg", ".png"} {
		key := fmt.Sprintf("%s/%d%s", kind, uid, suffix)
		err := minioClient.RemoveObject(ctx, PictureBucket, key, minio.RemoveObjectOptions{})
		if err != nil {
			hlog.CtxWarnf(ctx, "failed to delete %s: %v", key, err)
		}
	}
}

// DeleteVideoObjects removes the media and cover of a deleted video.
// Best effort: failures are logged, the video row is already gone.
func DeleteVideoObjects(ctx context.Context, vid int64) {
	for _, key := range []string{
		fmt.Sprintf("video/%d/video.mp4", vid),
		fmt.Sprintf("video/%d/cover.jpg", vid),
	} {
		err := minioClient.RemoveObject(ctx, VideoBucket, key, minio.RemoveObjectOptions{})
		if err != nil {
			hlog.CtxWarnf(ctx, "failed to delete %s: %v", key, err)
		}
	}
}
