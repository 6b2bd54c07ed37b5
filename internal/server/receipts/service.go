// Package receipts attaches receipt images to expenses through S3-compatible
// object storage. The server never proxies image bytes: clients upload and
// download directly via short-lived presigned URLs.
package receipts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spenttribe/internal/common"
	sc "spenttribe/internal/server/config"
	"spenttribe/internal/server/expenses"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignValidity = 15 * time.Minute

type Service struct {
	repo   expenses.Repository
	config *sc.Config
}

func NewService(repo expenses.Repository, config *sc.Config) *Service {
	return &Service{
		repo:   repo,
		config: config,
	}
}

// randomStorageKey spreads receipt objects over date-based prefixes.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("receipts/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// Attach reserves a storage key for a receipt on the expense and returns a
// presigned PUT URL for the client to upload the image to. Only the owning
// user may attach; a missing or foreign expense yields common.ErrorNotFound.
func (s *Service) Attach(ctx context.Context, expenseID, userID string) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := randomStorageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", fmt.Errorf("error presigning put: %w", err)
	}

	if err := s.repo.SetReceiptKey(ctx, expenseID, userID, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrorNotFound
		}
		return "", "", fmt.Errorf("error storing receipt key: %w", err)
	}

	return key, req.URL, nil
}

// URL returns a presigned GET URL for the expense's receipt. Any household
// member may fetch it; an expense without a receipt yields
// common.ErrorNotFound.
func (s *Service) URL(ctx context.Context, expenseID string) (string, error) {

	e, err := s.repo.GetByID(ctx, expenseID)
	if err != nil {
		return "", err
	}
	if e.ReceiptKey == "" {
		return "", common.ErrorNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &e.ReceiptKey,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", fmt.Errorf("error presigning get: %w", err)
	}

	return req.URL, nil
}
