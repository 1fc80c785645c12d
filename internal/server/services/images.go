package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/storefront/internal/common"
	sc "github.com/dmitrijs2005/storefront/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const (
	imagePrefix    = "images/"
	presignExpires = 15 * time.Minute
)

// PresignedUpload describes where a client should PUT an image and the
// public URL the image will be served from afterwards.
type PresignedUpload struct {
	Key      string
	URL      string
	ImageURL string
}

// ImageService stores product images in an S3-compatible bucket.
type ImageService struct {
	config *sc.Config
	now    func() time.Time
}

func NewImageService(config *sc.Config) *ImageService {
	return &ImageService{config: config, now: time.Now}
}

func (s *ImageService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}
	return newS3PresignClient(client), nil
}

// objectName builds "<field>_<unix millis><ext>" from the uploaded file name.
func (s *ImageService) objectName(field, fileName string) string {
	return fmt.Sprintf("%s_%d%s", field, s.now().UnixMilli(), strings.ToLower(filepath.Ext(fileName)))
}

func (s *ImageService) imageURL(name string) string {
	return strings.TrimRight(s.config.ImageBaseURL, "/") + "/" + name
}

// Upload stores body and returns the public image URL. body must be
// seekable so the request payload can be signed.
func (s *ImageService) Upload(ctx context.Context, field, fileName, contentType string, body io.ReadSeeker) (string, error) {
	if fileName == "" || body == nil {
		return "", fmt.Errorf("%w: no file uploaded", common.ErrInvalidInput)
	}
	if field == "" {
		field = "product"
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	name := s.objectName(field, fileName)
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(imagePrefix + name),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := putObject(client, ctx, in); err != nil {
		return "", fmt.Errorf("error storing image: %w", err)
	}

	return s.imageURL(name), nil
}

// PresignUpload returns a presigned PUT for a new product image.
func (s *ImageService) PresignUpload(ctx context.Context, fileName string) (*PresignedUpload, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrInvalidInput)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	name := s.objectName("product", fileName)
	key := imagePrefix + name

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpires))
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{Key: key, URL: req.URL, ImageURL: s.imageURL(name)}, nil
}

// PresignDownload returns a presigned GET for a stored image name.
func (s *ImageService) PresignDownload(ctx context.Context, name string) (string, error) {
	if name == "" || name != path.Base(name) || name == ".." {
		return "", fmt.Errorf("%w: bad image name %q", common.ErrInvalidInput, name)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(imagePrefix + name),
	}, s3.WithPresignExpires(presignExpires))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
