package deploy

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantk/website/internal/config"
	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/internal/logging"
)

type putCall struct {
	Bucket       string
	Key          string
	ContentType  string
	CacheControl string
	Body         string
	Length       int64
}

type fakeClient struct {
	mu   sync.Mutex
	puts []putCall
	fail string
}

func (c *fakeClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if aws.ToString(in.Key) == c.fail {
		return nil, stderrors.New("access denied")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts = append(c.puts, putCall{
		Bucket:       aws.ToString(in.Bucket),
		Key:          aws.ToString(in.Key),
		ContentType:  aws.ToString(in.ContentType),
		CacheControl: aws.ToString(in.CacheControl),
		Body:         string(body),
		Length:       aws.ToInt64(in.ContentLength),
	})
	return &s3.PutObjectOutput{}, nil
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	}
	return dir
}

var site = map[string]string{
	"index.html":                 "<html>home</html>",
	"writings/index.html":        "<html>list</html>",
	"sitemap.xml":                "<urlset/>",
	"api/posts.json":             "[]",
	"static/styles.0123abcd.css": "body{}",
	"static/favicon.svg":         "<svg/>",
}

func TestRunUploadsEveryFile(t *testing.T) {
	dir := writeTree(t, site)
	client := &fakeClient{}

	var seen []string
	res, err := Run(context.Background(), client, dir, Options{
		Bucket:   "example-site",
		Prefix:   "/www/",
		Logger:   logging.NewNop(),
		OnUpload: func(o Object) { seen = append(seen, o.Key) },
	})
	require.NoError(t, err)

	want := []string{
		"www/api/posts.json",
		"www/sitemap.xml",
		"www/static/favicon.svg",
		"www/static/styles.0123abcd.css",
		"www/index.html",
		"www/writings/index.html",
	}
	assert.Equal(t, want, seen)
	require.Len(t, client.puts, len(want))
	assert.Len(t, res.Objects, len(want))

	var total int64
	for _, data := range site {
		total += int64(len(data))
	}
	assert.Equal(t, total, res.Bytes)

	byKey := make(map[string]putCall)
	for _, p := range client.puts {
		assert.Equal(t, "example-site", p.Bucket)
		assert.Equal(t, int64(len(p.Body)), p.Length)
		byKey[p.Key] = p
	}
	assert.Equal(t, "<html>home</html>", byKey["www/index.html"].Body)
	assert.Equal(t, "text/html; charset=utf-8", byKey["www/index.html"].ContentType)
	assert.Equal(t, CachePage, byKey["www/index.html"].CacheControl)
	assert.Equal(t, CacheImmutable, byKey["www/static/styles.0123abcd.css"].CacheControl)
	assert.Equal(t, "text/css; charset=utf-8", byKey["www/static/styles.0123abcd.css"].ContentType)
	assert.Equal(t, CacheDefault, byKey["www/static/favicon.svg"].CacheControl)
	assert.Equal(t, "application/xml", byKey["www/sitemap.xml"].ContentType)
}

func TestRunDryRun(t *testing.T) {
	client := &fakeClient{}
	res, err := Run(context.Background(), client, writeTree(t, site), Options{
		Bucket: "b",
		DryRun: true,
		Logger: logging.NewNop(),
	})
	require.NoError(t, err)
	assert.Empty(t, client.puts)
	assert.Len(t, res.Objects, len(site))
	assert.Equal(t, "api/posts.json", res.Objects[0].Key)
}

func TestRunRequiresBucket(t *testing.T) {
	_, err := Run(context.Background(), &fakeClient{}, t.TempDir(), Options{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.New("E310")))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{}
	_, err := Run(ctx, client, writeTree(t, site), Options{Bucket: "b", Logger: logging.NewNop()})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
	assert.Empty(t, client.puts)
}

func TestRunPutError(t *testing.T) {
	client := &fakeClient{fail: "index.html"}
	_, err := Run(context.Background(), client, writeTree(t, site), Options{Bucket: "b", Logger: logging.NewNop()})
	require.Error(t, err)

	coded, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "E310", coded.Code)
	assert.Contains(t, coded.Detail, "s3://b/index.html")
}

func TestPlanMissingDir(t *testing.T) {
	_, err := Plan(filepath.Join(t.TempDir(), "missing"), "")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"index.html":          "text/html; charset=utf-8",
		"a/b/app.1a2b3c4d.js": "text/javascript; charset=utf-8",
		"IMAGE.PNG":           "image/png",
		"robots.txt":          "text/plain; charset=utf-8",
		"blob":                "application/octet-stream",
	}
	for name, want := range tests {
		assert.Equal(t, want, ContentType(name), name)
	}
}

func TestCacheControl(t *testing.T) {
	assert.Equal(t, CacheImmutable, CacheControl("static/app.1a2b3c4d.js"))
	assert.Equal(t, CachePage, CacheControl("writings/index.html"))
	assert.Equal(t, CacheDefault, CacheControl("static/styles.css"))
	assert.Equal(t, CacheDefault, CacheControl("sitemap.xml"))
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestEnvCredentials(t *testing.T) {
	creds, err := EnvCredentials(env(map[string]string{
		EnvAccessKeyID:     "AKID",
		EnvSecretAccessKey: "secret",
		EnvSessionToken:    "token",
	})).Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKID", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
	assert.Equal(t, "token", creds.SessionToken)

	_, err = EnvCredentials(env(nil)).Retrieve(context.Background())
	assert.True(t, stderrors.Is(err, errors.New("E310")))
}

func TestNewClient(t *testing.T) {
	keys := map[string]string{EnvAccessKeyID: "AKID", EnvSecretAccessKey: "secret"}

	client, err := NewClient(config.DeployConfig{Bucket: "b", Region: "eu-west-1"}, env(keys))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", client.Options().Region)
	assert.False(t, client.Options().UsePathStyle)

	keys[EnvRegion] = "us-west-2"
	client, err = NewClient(config.DeployConfig{Bucket: "b", Endpoint: "http://localhost:9000"}, env(keys))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", client.Options().Region)
	assert.True(t, client.Options().UsePathStyle)
	assert.Equal(t, "http://localhost:9000", aws.ToString(client.Options().BaseEndpoint))

	delete(keys, EnvRegion)
	_, err = NewClient(config.DeployConfig{Bucket: "b"}, env(keys))
	assert.Error(t, err)

	_, err = NewClient(config.DeployConfig{Bucket: "b", Region: "eu-west-1"}, env(nil))
	assert.Error(t, err)
}
