// Package storage hands out presigned S3 upload URLs for profile images.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/bloghub/internal/server/models"
	"github.com/google/uuid"
)

// UploadExpiry is how long a presigned avatar upload stays valid.
const UploadExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	newObjectID = uuid.NewString
	now         = time.Now
)

type Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
}

type AvatarStore struct {
	cfg Config
}

func NewAvatarStore(cfg Config) *AvatarStore {
	return &AvatarStore{cfg: cfg}
}

// AvatarKey is the object key for a new image of account id.
func AvatarKey(id int64) string {
	return fmt.Sprintf("avatars/%d/%s", id, newObjectID())
}

func (s *AvatarStore) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// objectURL is the address the uploaded image is served from.
func (s *AvatarStore) objectURL(key string) string {
	if s.cfg.BaseEndpoint != "" {
		return strings.TrimRight(s.cfg.BaseEndpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

// PresignAvatarUpload returns a presigned PUT for a fresh key under the
// account's avatar prefix.
func (s *AvatarStore) PresignAvatarUpload(ctx context.Context, accountID int64, contentType string) (*models.AvatarUpload, error) {
	pc, err := s.presignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.cfg.Bucket
	key := AvatarKey(accountID)

	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(pc, ctx, in, s3.WithPresignExpires(UploadExpiry))
	if err != nil {
		return nil, err
	}

	return &models.AvatarUpload{
		Key:       key,
		UploadURL: req.URL,
		ObjectURL: s.objectURL(key),
		ExpiresAt: now().Add(UploadExpiry),
	}, nil
}
