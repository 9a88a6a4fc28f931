package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"talent_bridge_backend/internal/config"
	"talent_bridge_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PlanLocation tells the caller how to deliver a plan file: either a local
// path to stream or a URL to redirect to.
type PlanLocation struct {
	FileName    string
	LocalPath   string
	RedirectURL string
}

// StorageProvider holds the plan files, keyed "<locale>/<PlanName>.pdf".
type StorageProvider interface {
	Locate(ctx context.Context, key string) (PlanLocation, error)
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

type LocalStorageProvider struct {
	Root string
}

func (p *LocalStorageProvider) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if strings.Contains(key, "..") || clean == "/" {
		return "", util.ErrPlanNotFound
	}
	return filepath.Join(p.Root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (p *LocalStorageProvider) Locate(ctx context.Context, key string) (PlanLocation, error) {
	dst, err := p.resolve(key)
	if err != nil {
		return PlanLocation{}, err
	}
	info, err := os.Stat(dst)
	if os.IsNotExist(err) || (err == nil && info.IsDir()) {
		return PlanLocation{}, util.ErrPlanNotFound
	}
	if err != nil {
		return PlanLocation{}, err
	}
	return PlanLocation{FileName: path.Base(key), LocalPath: dst}, nil
}

func (p *LocalStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	dst, err := p.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

// MinioStorageProvider serves plans through short-lived presigned URLs.
type MinioStorageProvider struct {
	Bucket string
	Expiry time.Duration
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	expiry := time.Duration(cfg.PresignMinutes) * time.Minute
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &MinioStorageProvider{Bucket: cfg.MinioBucket, Expiry: expiry, Client: client}, nil
}

func (p *MinioStorageProvider) Locate(ctx context.Context, key string) (PlanLocation, error) {
	if _, err := p.Client.StatObject(ctx, p.Bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return PlanLocation{}, util.ErrPlanNotFound
		}
		return PlanLocation{}, fmt.Errorf("stat plan %s: %w", key, err)
	}

	name := path.Base(key)
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", name))
	u, err := p.Client.PresignedGetObject(ctx, p.Bucket, key, p.Expiry, params)
	if err != nil {
		return PlanLocation{}, fmt.Errorf("presign plan %s: %w", key, err)
	}
	return PlanLocation{FileName: name, RedirectURL: u.String()}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := p.Client.PutObject(ctx, p.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// NewStorageProvider builds the provider selected by cfg.Type.
func NewStorageProvider(cfg *config.StorageConfig) (StorageProvider, error) {
	switch cfg.Type {
	case util.StorageMinio:
		return NewMinioStorageProvider(cfg)
	case util.StorageLocal, "":
		return &LocalStorageProvider{Root: cfg.LocalPath}, nil
	}
	return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
}
