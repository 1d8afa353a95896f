package supabase

import (
	"bytes"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, anonKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", anonKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadImage stores an image under a timestamped path and returns the
// storage path and its public URL.
func (s *StorageClient) UploadImage(filename string, data []byte) (string, string, error) {
	// Namespace by upload time so re-uploads of the same filename never clash.
	storagePath := fmt.Sprintf("projects/%d_%s", time.Now().UnixMilli(), path.Base(filename))

	contentType := http.DetectContentType(data)
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	return storagePath, s.PublicURL(storagePath), nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

// PathFromPublicURL maps a public object URL back to its path inside the
// bucket. Returns false for URLs that do not belong to this bucket.
func (s *StorageClient) PathFromPublicURL(publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(publicURL, prefix), true
}

// DeleteByPublicURL removes the blob a stored image URL points at.
func (s *StorageClient) DeleteByPublicURL(publicURL string) error {
	storagePath, ok := s.PathFromPublicURL(publicURL)
	if !ok {
		return fmt.Errorf("url %q is not in bucket %q", publicURL, s.bucket)
	}
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}
