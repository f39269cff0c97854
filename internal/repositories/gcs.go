package repositories

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

// CloudStorageRepository stores exported statements and serves settlement files.
type CloudStorageRepository interface {
	NewWriter(ctx context.Context, payload *models.CloudStoragePayload) io.WriteCloser
	NewReader(ctx context.Context, payload *models.CloudStoragePayload) (io.ReadCloser, error)
	WriteStream(ctx context.Context, payload *models.CloudStoragePayload, data <-chan []byte) models.WriteStreamResult
	WriteCSV(ctx context.Context, payload *models.CloudStoragePayload, rows [][]string) (url string, err error)
	GetURL(payload *models.CloudStoragePayload) (url string)
	IsObjectExist(ctx context.Context, payload *models.CloudStoragePayload) (isExist bool, url string)
	Close() error
}

type cloudStorageClient struct {
	config *config.CloudStorageConfig
	client *storage.Client
}

func NewCloudStorageRepository(cfg *config.Config, opts ...option.ClientOption) (CloudStorageRepository, error) {
	if cfg.CloudStorageConfig.BucketName == "" {
		return nil, fmt.Errorf("failed to init cloud storage bucket name not set")
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return &cloudStorageClient{client: client, config: &cfg.CloudStorageConfig}, nil
}

func (cs *cloudStorageClient) object(payload *models.CloudStoragePayload) *storage.ObjectHandle {
	return cs.client.Bucket(cs.config.BucketName).Object(payload.GetFilePath())
}

func (cs *cloudStorageClient) GetURL(payload *models.CloudStoragePayload) (url string) {
	return fmt.Sprintf("%s/%s/%s", cs.config.BaseURL, cs.config.BucketName, payload.GetFilePath())
}

func (cs *cloudStorageClient) NewWriter(ctx context.Context, payload *models.CloudStoragePayload) io.WriteCloser {
	writer := cs.object(payload).NewWriter(ctx)
	writer.ContentType = "text/csv"
	writer.ContentDisposition = fmt.Sprintf("attachment; filename=%s", payload.Filename)
	return writer
}

func (cs *cloudStorageClient) WriteStream(ctx context.Context, payload *models.CloudStoragePayload, data <-chan []byte) models.WriteStreamResult {
	ch := make(chan error)
	r := models.NewWriteStreamResult(ch, cs.GetURL(payload))

	go func() {
		writer := cs.NewWriter(ctx, payload)
		defer func() {
			if err := writer.Close(); err != nil {
				ch <- err
			}
			close(ch)
		}()

		// keep draining after a failed write so the sender never blocks
		var writeErr error
		for v := range data {
			if writeErr != nil {
				continue
			}
			_, writeErr = writer.Write(v)
		}
		if writeErr != nil {
			ch <- writeErr
		}
	}()

	return r
}

// WriteCSV uploads rows as one CSV object, streaming one encoded row at a time.
func (cs *cloudStorageClient) WriteCSV(ctx context.Context, payload *models.CloudStoragePayload, rows [][]string) (url string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	data := make(chan []byte)
	result := cs.WriteStream(ctx, payload, data)

	var encodeErr error
	for _, row := range rows {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if encodeErr = w.Write(row); encodeErr == nil {
			w.Flush()
			encodeErr = w.Error()
		}
		if encodeErr != nil {
			break
		}
		data <- buf.Bytes()
	}
	close(data)

	url, err = result.Wait()
	if err = errors.Join(encodeErr, err); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", payload.GetFilePath(), err)
	}

	return url, nil
}

func (cs *cloudStorageClient) NewReader(ctx context.Context, payload *models.CloudStoragePayload) (io.ReadCloser, error) {
	rc, err := cs.object(payload).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object in bucket: %w", err)
	}

	return rc, nil
}

func (cs *cloudStorageClient) IsObjectExist(ctx context.Context, payload *models.CloudStoragePayload) (isExist bool, url string) {
	_, err := cs.object(payload).Attrs(ctx)
	if err == nil {
		isExist = true
		url = cs.GetURL(payload)
	}

	return
}

func (cs *cloudStorageClient) Close() error {
	return cs.client.Close()
}
