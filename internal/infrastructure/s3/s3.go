package s3

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"image-hosting-api/config"
	"image-hosting-api/internal/domain/image"
)

type Client struct {
	logger        *zap.Logger
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	publicBase    string
	presignExpiry time.Duration
}

func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.S3,

) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &Client{
		logger:        logger,
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.BucketImages,
		publicBase:    strings.TrimRight(cfg.PublicBaseURL, "/"),
		presignExpiry: cfg.PresignExpiry,
	}, nil
}

// PresignUpload returns a time-boxed PUT URL for exactly one key and
// content type. Nothing is written to the bucket here.
func (c *Client) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := c.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &c.bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(c.presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// StatObject asks the store whether the object exists, without reading its
// bytes. Returns (nil, nil) for a missing key; any other failure is a real
// storage error.
func (c *Client) StatObject(ctx context.Context, key string) (*image.ObjectInfo, error) {
	out, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	info := &image.ObjectInfo{
		ContentType: aws.ToString(out.ContentType),
	}
	if out.ContentLength != nil && *out.ContentLength > 0 {
		info.SizeBytes = uint64(*out.ContentLength)
	}

	return info, nil
}

// DeleteObject removes the object at key. A key that is already absent
// counts as success: the goal state holds either way.
func (c *Client) DeleteObject(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	})
	if err != nil && isNotFound(err) {
		return nil
	}

	return err
}

func (c *Client) GetPublicURL(key string) string {
	return c.publicBase + "/" + key
}

func (c *Client) GetBucket() string { return c.bucket }

func isNotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
