package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/config"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/model"
)

// MinioSource serves contract fixtures stored as JSON objects in a bucket:
// contracts.json for the collection, contracts/<id>.json for details.
type MinioSource struct {
	client *minio.Client
	bucket string
}

func NewMinioSource(cfg *config.MinioConfig) (*MinioSource, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioSource{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// EnsureBucket verifies the fixture bucket exists.
func (s *MinioSource) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("fixture bucket %q does not exist", s.bucket)
	}
	return nil
}

// FetchAll reads the full contract collection object.
func (s *MinioSource) FetchAll(ctx context.Context) ([]model.Contract, error) {
	data, err := s.readObject(ctx, "contracts.json")
	if err != nil {
		return nil, fmt.Errorf("fetch contracts: %w", err)
	}

	var contracts []model.Contract
	if err := json.Unmarshal(data, &contracts); err != nil {
		return nil, fmt.Errorf("decode contracts: %w", err)
	}
	return contracts, nil
}

// FetchOne reads a single contract detail object. Returns ErrNotFound when
// the object does not exist.
func (s *MinioSource) FetchOne(ctx context.Context, id string) (*model.ContractDetail, error) {
	data, err := s.readObject(ctx, fmt.Sprintf("contracts/%s.json", id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch contract %s: %w", id, err)
	}

	var detail model.ContractDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("decode contract %s: %w", id, err)
	}
	return &detail, nil
}

func (s *MinioSource) readObject(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// GetObject defers existence checks to the first read.
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
