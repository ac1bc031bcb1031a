package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/config"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
)

// S3Archiver writes finished conversation summaries to an S3 bucket so
// they outlive database retention.
type S3Archiver struct {
	client *s3.Client
	bucket string
}

func NewS3Archiver(cfg *config.Config) *S3Archiver {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &S3Archiver{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

func (a *S3Archiver) ArchiveSummary(
	ctx context.Context,
	summary *models.ConversationSummary,
) error {

	body, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("summaries/%s/%s.json", summary.ContactNumber, summary.ID)

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	return err
}
