package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"

	"indicators/internal/config"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archive uploads documents to a single bucket. In offline mode it talks to
// a local S3-compatible emulator with path-style addressing.
type Archive struct {
	api             putObjectAPI
	bucket          string
	offlineEndpoint string
}

func NewArchive(ctx context.Context, cfg config.ObjectStore, offline bool) (*Archive, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if offline {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.OfflineKey, cfg.OfflineSecret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if offline {
			o.BaseEndpoint = aws.String(cfg.OfflineEndpoint)
			o.UsePathStyle = true
		}
	})

	if offline {
		log.WithField("endpoint", cfg.OfflineEndpoint).Info("object store runs against local emulator")
		return newArchive(client, cfg.Bucket, cfg.OfflineEndpoint), nil
	}
	return newArchive(client, cfg.Bucket, ""), nil
}

func newArchive(api putObjectAPI, bucket, offlineEndpoint string) *Archive {
	return &Archive{
		api:             api,
		bucket:          bucket,
		offlineEndpoint: strings.TrimSuffix(offlineEndpoint, "/"),
	}
}

func (a *Archive) Upload(ctx context.Context, key string, contentType string, body []byte) error {
	_, err := a.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", key, a.bucket, err)
	}
	return nil
}

// URL returns where an uploaded key can be fetched from. It does not check
// that the object exists.
func (a *Archive) URL(key string) string {
	if a.offlineEndpoint != "" {
		return a.offlineEndpoint + "/" + a.bucket + "/" + key
	}
	return "https://" + a.bucket + ".s3.amazonaws.com/" + key
}
