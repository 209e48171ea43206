package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/kingrain94/catalog-api/internal/config"
)

// API is the subset of the S3 client used here.
//
//go:generate mockery --name API --structname S3API --output ../../mocks
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3ImageStore struct {
	client API
	config *config.S3Config
}

func NewS3ImageStore(client API, config *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		client: client,
		config: config,
	}
}

// ObjectKey places every image under the owning tenant's prefix:
// {tenantID}/products/{productID}/{uuid}{ext}
func ObjectKey(tenantID, productID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/products/%s/%s%s", tenantID, productID, uuid.New().String(), ext)
}

// UploadProductImage stores the image and returns its object key and public URL.
func (s *S3ImageStore) UploadProductImage(ctx context.Context, tenantID, productID, filename, contentType string, body io.Reader) (string, string, error) {
	key := ObjectKey(tenantID, productID, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return key, s.config.ObjectURL(key), nil
}

func (s *S3ImageStore) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from S3: %w", err)
	}
	return nil
}
