package gcslib

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSClient struct {
	client *storage.Client
}

func NewGCSClient(client *storage.Client) GCSClient {
	return GCSClient{
		client: client,
	}
}

func LoadGCS(ctx context.Context, opts ...option.ClientOption) (GCSClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return GCSClient{}, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return NewGCSClient(client), nil
}

func (g GCSClient) Close() error {
	return g.client.Close()
}

func ObjectKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}

	return fmt.Sprintf("%s/%s", prefix, name)
}

// Upload writes [data] to gs://bucket/prefix/name and returns that URI.
func (g GCSClient) Upload(ctx context.Context, bucket, prefix, name, contentType string, data []byte) (string, error) {
	objectKey := ObjectKey(prefix, name)
	writer := g.client.Bucket(bucket).Object(objectKey).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write file to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", bucket, objectKey), nil
}
