// Package filestore keeps profile pictures in S3. Clients send images as
// base64 data URIs; we store the decoded bytes under a unique key and hand
// back a public URL through the CDN host.
package filestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrBadImage = errors.New("image must be a base64 data URI")

type Options struct {
	Region  string
	Bucket  string
	CDNHost string
}

type ProfilePictureStore struct {
	client *s3.Client
	bucket string
	cdn    string
}

func New(opts Options) *ProfilePictureStore {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(opts.Region))
	if err != nil {
		log.Fatal("loading aws config error: " + err.Error())
	}
	return &ProfilePictureStore{
		client: s3.NewFromConfig(cfg),
		bucket: opts.Bucket,
		cdn:    opts.CDNHost,
	}
}

// Upload decodes a "data:<mime>;base64,<data>" payload, stores it and returns
// the object key.
func (ps *ProfilePictureStore) Upload(ctx context.Context, dataURI, prefix string) (string, error) {
	parts := strings.Split(dataURI, ",")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return "", ErrBadImage
	}

	mediaType := strings.TrimPrefix(parts[0], "data:")
	contentType := strings.SplitN(mediaType, ";", 2)[0]

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrBadImage
	}

	key := fmt.Sprintf("profile-pictures/%s-%d%s", prefix, time.Now().UnixNano(), extensionFor(contentType))
	_, err = ps.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", errors.New("uploading profile picture error: " + err.Error())
	}
	return key, nil
}

// URL renders the public view URL for a stored key; empty key means no
// picture is set.
func (ps *ProfilePictureStore) URL(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", ps.cdn, key)
}

// Delete removes a stored picture, used when a new one replaces it.
func (ps *ProfilePictureStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := ps.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(ps.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.New("deleting profile picture error: " + err.Error())
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
