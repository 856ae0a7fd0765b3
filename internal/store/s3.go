// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	awsx "github.com/staranto/memoctlgo/internal/aws"
	"github.com/staranto/memoctlgo/internal/cachedir"
)

// s3API is the subset of the S3 client the store needs.
type s3API interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
}

// S3Store keeps entries as objects under s3://bucket/prefix.
type S3Store struct {
	bucket string
	prefix string
	client s3API
}

// NewS3Store builds a store backed by the given bucket and key prefix.
// Credentials and region come from the ambient AWS config chain.
func NewS3Store(ctx context.Context, bucket, prefix string) (*S3Store, error) {
	cfg, err := awsx.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Store{
		bucket: bucket,
		prefix: prefix,
		client: awsx.NewS3(cfg),
	}, nil
}

func (s *S3Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.bucket),
		Key:    awsv2.String(s.objectKey(key)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read S3 object body: %w", err)
	}
	return data, true, nil
}

func (s *S3Store) Write(ctx context.Context, key string, data []byte) error {
	objKey := s.objectKey(key)

	// First write wins.
	if _, err := s.client.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(s.bucket),
		Key:    awsv2.String(objKey),
	}); err == nil {
		return nil
	}

	if _, err := s.client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(s.bucket),
		Key:    awsv2.String(objKey),
		Body:   bytes.NewReader(data),
	}); err != nil {
		return fmt.Errorf("failed to put S3 object: %w", err)
	}
	return nil
}

func (s *S3Store) objectKey(key string) string {
	return path.Join(s.prefix, cachedir.EncodeKey(key))
}

func (s *S3Store) String() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}

func (s *S3Store) Type() string {
	return "s3"
}
