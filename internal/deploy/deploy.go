package deploy

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/assets"
)

// Cache policies sent with uploaded objects.
const (
	CacheImmutable = "public, max-age=31536000, immutable"
	CachePage      = "public, max-age=0, must-revalidate"
	CacheDefault   = "public, max-age=3600"
)

// Options configures an upload.
type Options struct {
	Bucket string

	// Prefix is prepended to every key, without leading or trailing slashes.
	Prefix string

	// DryRun lists the objects without uploading.
	DryRun bool

	Logger *slog.Logger

	// OnUpload is called after each object is uploaded.
	OnUpload func(Object)
}

// Object describes one uploaded file.
type Object struct {
	Key          string
	Path         string
	ContentType  string
	CacheControl string
	Size         int64
}

// Result summarizes an upload.
type Result struct {
	Objects  []Object
	Bytes    int64
	Duration time.Duration
}

// Run uploads every file under dir.
func Run(ctx context.Context, client Client, dir string, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Bucket == "" {
		return nil, errors.New("E310").WithDetail("no bucket configured")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	objects, err := Plan(dir, opts.Prefix)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return nil, errors.New("E310").Wrap(err)
		}
		if !opts.DryRun {
			if err := put(ctx, client, opts.Bucket, obj); err != nil {
				return nil, err
			}
		}
		res.Objects = append(res.Objects, obj)
		res.Bytes += obj.Size
		opts.Logger.Debug("uploaded object", "bucket", opts.Bucket, "key", obj.Key, "bytes", obj.Size, "dry_run", opts.DryRun)
		if opts.OnUpload != nil {
			opts.OnUpload(obj)
		}
	}

	res.Duration = time.Since(start)
	opts.Logger.Info("deploy complete",
		"bucket", opts.Bucket,
		"objects", len(res.Objects),
		"bytes", res.Bytes,
		"duration", res.Duration,
	)
	return res, nil
}

func put(ctx context.Context, client Client, bucket string, obj Object) error {
	f, err := os.Open(obj.Path)
	if err != nil {
		return errors.New("E310").Wrap(err)
	}
	defer f.Close()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(obj.Key),
		Body:          f,
		ContentLength: aws.Int64(obj.Size),
		ContentType:   aws.String(obj.ContentType),
		CacheControl:  aws.String(obj.CacheControl),
	})
	if err != nil {
		return errors.New("E310").WithDetailf("put s3://%s/%s", bucket, obj.Key).Wrap(err)
	}
	return nil
}

// Plan lists the objects for every regular file under dir, assets first and
// pages last, each group sorted by key.
func Plan(dir, prefix string) ([]Object, error) {
	prefix = strings.Trim(prefix, "/")

	var objects []Object
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		objects = append(objects, Object{
			Key:          path.Join(prefix, rel),
			Path:         p,
			ContentType:  ContentType(rel),
			CacheControl: CacheControl(rel),
			Size:         info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.New("E310").WithLocation(dir, 0, 0).Wrap(err)
	}

	sort.SliceStable(objects, func(i, j int) bool {
		pi, pj := isPage(objects[i].Key), isPage(objects[j].Key)
		if pi != pj {
			return !pi
		}
		return objects[i].Key < objects[j].Key
	})
	return objects, nil
}

func isPage(name string) bool {
	return path.Ext(name) == ".html"
}

// CacheControl picks the cache policy for name.
func CacheControl(name string) string {
	switch {
	case assets.IsFingerprinted(name):
		return CacheImmutable
	case isPage(name):
		return CachePage
	}
	return CacheDefault
}
