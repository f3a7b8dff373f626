package upload

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
	BackendNone  = "none"
)

// Archive keeps a copy of every infrastructure file submitted for analysis.
type Archive interface {
	// Put stores content under analysisID and returns where it was written.
	Put(ctx context.Context, analysisID, fileName string, content []byte) (string, error)
}

type Settings struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
}

func objectName(analysisID, fileName string) (string, error) {
	if analysisID == "" {
		return "", fmt.Errorf("analysis id is required")
	}
	name := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return analysisID + "-" + name, nil
}

type localArchive struct {
	dir string
}

func NewLocalArchive(dir string) (Archive, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localArchive{dir: dir}, nil
}

func (a *localArchive) Put(_ context.Context, analysisID, fileName string, content []byte) (string, error) {
	name, err := objectName(analysisID, fileName)
	if err != nil {
		return "", err
	}

	target := filepath.Join(a.dir, name)
	if err := os.WriteFile(target, content, 0o600); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return target, nil
}

type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Archive struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewS3Archive(client PutObjectAPI, bucket, prefix string) (Archive, error) {
	if bucket == "" {
		return nil, fmt.Errorf("upload bucket is required")
	}
	return &s3Archive{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

func NewS3ArchiveFromConfig(cfg awssdk.Config, bucket, prefix string) (Archive, error) {
	return NewS3Archive(s3.NewFromConfig(cfg), bucket, prefix)
}

func (a *s3Archive) Put(ctx context.Context, analysisID, fileName string, content []byte) (string, error) {
	name, err := objectName(analysisID, fileName)
	if err != nil {
		return "", err
	}

	key := name
	if a.prefix != "" {
		key = path.Join(a.prefix, name)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(a.bucket),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(content),
		ContentType: awssdk.String("text/plain"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3://%s/%s: %w", a.bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}

// Discard is an archive that keeps nothing.
type Discard struct{}

func (Discard) Put(_ context.Context, _, _ string, _ []byte) (string, error) {
	return "", nil
}
