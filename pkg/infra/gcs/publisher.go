package gcs

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/h2oman/phoenix/pkg/domain/interfaces"
)

type publisher struct {
	client *storage.Client
	bucket string
}

// NewPublisher creates a publisher uploading release artifacts to the GCS
// bucket that hosts the update feed. Credentials come from the ambient
// application-default environment.
func NewPublisher(ctx context.Context, bucket string) (interfaces.Publisher, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}
	return &publisher{client: client, bucket: bucket}, nil
}

// Upload streams one artifact into the bucket under objectName.
func (p *publisher) Upload(ctx context.Context, objectName string, body io.Reader) error {
	w := p.client.Bucket(p.bucket).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return goerr.Wrap(err, "failed to upload artifact",
			goerr.V("bucket", p.bucket), goerr.V("object", objectName))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize artifact upload",
			goerr.V("bucket", p.bucket), goerr.V("object", objectName))
	}
	return nil
}
