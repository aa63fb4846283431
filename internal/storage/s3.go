package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/dmitrijs2005/finkeeper/internal/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Test seams, replaceable in unit tests to avoid touching real object
// storage.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3API is the subset of the S3 client the gateway uses.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Config holds connection parameters for an S3-compatible bucket
// (AWS or MinIO).
type S3Config struct {
	BaseEndpoint string
	Region       string
	Bucket       string
	AccessKeyID  string
	SecretKey    string

	// Prefix is the key prefix under which vault files live.
	Prefix string
	// Key is the object key of this session's vault file, relative to Prefix.
	Key string
}

// S3Gateway persists the vault as a single object in a bucket and can list
// sibling vault files under the same prefix.
type S3Gateway struct {
	client s3API
	cfg    S3Config
}

func NewS3Gateway(ctx context.Context, cfg S3Config) (*S3Gateway, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%w: loading aws config: %w", common.ErrPersistence, err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = cfg.BaseEndpoint != ""
	})

	return &S3Gateway{client: client, cfg: cfg}, nil
}

func (g *S3Gateway) objectKey() string {
	return path.Join(g.cfg.Prefix, g.cfg.Key)
}

func (g *S3Gateway) Read(ctx context.Context) ([]byte, error) {
	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.cfg.Bucket),
		Key:    aws.String(g.objectKey()),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: getting %s: %w", common.ErrPersistence, g.objectKey(), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", common.ErrPersistence, g.objectKey(), err)
	}
	return data, nil
}

func (g *S3Gateway) Write(ctx context.Context, data []byte) error {
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.cfg.Bucket),
		Key:         aws.String(g.objectKey()),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: putting %s: %w", common.ErrPersistence, g.objectKey(), err)
	}
	return nil
}

// List enumerates vault files under the configured prefix, newest first.
func (g *S3Gateway) List(ctx context.Context) ([]FileInfo, error) {
	prefix := g.cfg.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	out, err := g.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.cfg.Bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", common.ErrPersistence, prefix, err)
	}

	files := make([]FileInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		info := FileInfo{ID: key, Name: path.Base(key)}
		if obj.LastModified != nil {
			info.ModifiedTime = *obj.LastModified
		}
		files = append(files, info)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedTime.After(files[j].ModifiedTime)
	})
	return files, nil
}
