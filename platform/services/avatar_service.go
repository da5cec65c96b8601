package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/anatomypro/backend/platform"
)

const maxAvatarBytes = 2 << 20

var avatarContentTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// AvatarService stores profile pictures in an S3 compatible object store.
type AvatarService struct {
	client *s3.Client
	bucket string
	region string
	root   string
}

func NewAvatarService(ctx context.Context, cfg platform.StorageConfig) (*AvatarService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	return &AvatarService{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
		root:   strings.Trim(cfg.Root, "/"),
	}, nil
}

// Upload stores an avatar for the user and returns its public URL.
func (as *AvatarService) Upload(ctx context.Context, userID int64, contentType string, data []byte) (string, error) {
	ext, ok := avatarContentTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidArgument, contentType)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", ErrInvalidArgument)
	}
	if len(data) > maxAvatarBytes {
		return "", fmt.Errorf("%w: avatar exceeds %d bytes", ErrInvalidArgument, maxAvatarBytes)
	}

	key := fmt.Sprintf("%s/avatars/%d%s", as.root, userID, ext)
	_, err := as.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &as.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", as.bucket, as.region, key), nil
}

// Delete removes every stored avatar variant for the user. Missing
// objects are not an error.
func (as *AvatarService) Delete(ctx context.Context, userID int64) error {
	var failures []string
	for _, ext := range avatarContentTypes {
		key := fmt.Sprintf("%s/avatars/%d%s", as.root, userID, ext)
		if _, err := as.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: &as.bucket,
			Key:    &key,
		}); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(failures) == len(avatarContentTypes) {
		return fmt.Errorf("failed to delete avatar: %s", strings.Join(failures, "; "))
	}
	return nil
}
