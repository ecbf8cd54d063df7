package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/vedantk/website/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "site.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default static export directory.
	DefaultOutput = "dist"

	// DefaultStaticPrefix is the URL prefix static assets are served under.
	DefaultStaticPrefix = "/static"
)

// Config represents the complete site.json configuration.
type Config struct {
	// Site contains the site identity used in page heads and the sitemap.
	Site SiteConfig `json:"site"`

	// Server contains HTTP server settings.
	Server ServerConfig `json:"server"`

	// Content contains the locations of posts and book highlights.
	Content ContentConfig `json:"content"`

	// Static contains static file serving configuration.
	Static StaticConfig `json:"static"`

	// Build contains static export settings.
	Build BuildConfig `json:"build"`

	// Deploy contains S3 upload settings.
	Deploy DeployConfig `json:"deploy"`

	// Metrics contains Prometheus endpoint settings.
	Metrics MetricsConfig `json:"metrics"`

	// Log contains process logger settings.
	Log LogConfig `json:"log"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig describes the site itself.
type SiteConfig struct {
	// Title is appended to page titles ("Blogs | Title").
	Title string `json:"title,omitempty"`

	// Author is rendered in the footer and the author meta tag.
	Author string `json:"author,omitempty"`

	// BaseURL is the absolute origin used for canonical links and the
	// sitemap (e.g., "https://example.com").
	BaseURL string `json:"baseURL,omitempty"`

	// Description is the fallback meta description.
	Description string `json:"description,omitempty"`

	// Lang is the html lang attribute.
	Lang string `json:"lang,omitempty"`

	// Links are shown in the footer.
	Links []LinkConfig `json:"links,omitempty"`
}

// LinkConfig is one footer link.
type LinkConfig struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// ContentConfig contains content locations, relative to the config file.
type ContentConfig struct {
	// Writings is the directory of markdown posts.
	Writings string `json:"writings,omitempty"`

	// Books is the book highlights JSON file.
	Books string `json:"books,omitempty"`
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files. Empty serves the
	// assets embedded in the binary.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for static files.
	Prefix string `json:"prefix,omitempty"`

	// CacheControl is sent for static files that are not fingerprinted.
	CacheControl string `json:"cacheControl,omitempty"`
}

// BuildConfig contains static export settings.
type BuildConfig struct {
	// Output is the export directory.
	Output string `json:"output,omitempty"`

	// Fingerprint renames CSS and JS assets with a content hash.
	Fingerprint bool `json:"fingerprint,omitempty"`
}

// DeployConfig contains S3 upload settings. Credentials come from the
// standard AWS environment variables, never from this file.
type DeployConfig struct {
	Bucket   string `json:"bucket,omitempty"`
	Region   string `json:"region,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// MetricsConfig contains Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// LiveReload injects the reload client and serves the reload socket.
	LiveReload bool `json:"liveReload,omitempty"`

	// Watch lists extra directories watched for changes.
	Watch []string `json:"watch,omitempty"`

	// Interval is the polling interval and notification debounce
	// (e.g., "500ms").
	Interval string `json:"interval,omitempty"`

	// Poll forces polling instead of filesystem notifications.
	Poll bool `json:"poll,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{
		Site: SiteConfig{
			Title: "Vedant",
			Lang:  "en",
		},
		Dev: DevConfig{
			LiveReload: true,
		},
	}
	c.applyDefaults()
	return c
}

// Load reads site.json from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. A missing file
// yields an error matching fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").WithLocation(path, 0, 0).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New("E120").Wrap(err)
		var syntaxErr *json.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			line, col := position(data, syntaxErr.Offset)
			e.WithLocation(path, line, col).WithSource(strings.Split(string(data), "\n"), 2)
		} else {
			e.WithLocation(path, 0, 0)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOptional is Load that falls back to defaults when site.json does not
// exist. The returned bool reports whether a file was read.
func LoadOptional(dir string) (*Config, bool, error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		cfg = New()
		cfg.configPath = filepath.Join(dir, ConfigFileName)
		return cfg, false, nil
	}
	return nil, false, err
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	col = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("E122").WithDetail("no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo atomically writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E122").Wrap(err)
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.New("E122").WithLocation(path, 0, 0).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Site.Lang == "" {
		c.Site.Lang = "en"
	}
	c.Site.BaseURL = strings.TrimSuffix(c.Site.BaseURL, "/")

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}

	if c.Content.Writings == "" {
		c.Content.Writings = "content/writings"
	}
	if c.Content.Books == "" {
		c.Content.Books = "content/books.json"
	}

	if c.Static.Prefix == "" {
		c.Static.Prefix = DefaultStaticPrefix
	}
	if c.Static.CacheControl == "" {
		c.Static.CacheControl = "public, max-age=3600"
	}

	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{"content", "web/static"}
	}
	if c.Dev.Interval == "" {
		c.Dev.Interval = "500ms"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return errors.New("E121").WithLocation(c.configPath, 0, 0).WithDetailf(format, args...)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return invalid("server.port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return invalid("server.shutdownTimeout: %v", err)
	}
	if _, err := c.DevInterval(); err != nil {
		return invalid("dev.interval: %v", err)
	}

	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return invalid("site.baseURL must be an absolute URL, got %q", c.Site.BaseURL)
		}
	}

	if !strings.HasPrefix(c.Static.Prefix, "/") || c.Static.Prefix == "/" || strings.HasSuffix(c.Static.Prefix, "/") {
		return invalid("static.prefix must look like /static, got %q", c.Static.Prefix)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return invalid("metrics.path must start with /, got %q", c.Metrics.Path)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalid("log.format must be text or json, got %q", c.Log.Format)
	}

	if strings.TrimSpace(c.Build.Output) == "" {
		return invalid("build.output is empty")
	}
	return nil
}

// ValidateDeploy checks the settings needed by the deploy command.
func (c *Config) ValidateDeploy() error {
	if c.Deploy.Bucket == "" {
		return errors.New("E121").WithDetail("deploy.bucket is required").
			WithSuggestion(fmt.Sprintf("Set deploy.bucket in %s.", ConfigFileName))
	}
	if c.Deploy.Region == "" && c.Deploy.Endpoint == "" {
		return errors.New("E121").WithDetail("deploy.region or deploy.endpoint is required")
	}
	return nil
}

// Address returns the listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the local URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ShutdownTimeout parses server.shutdownTimeout.
func (c *Config) ShutdownTimeout() (time.Duration, error) {
	return parsePositiveDuration(c.Server.ShutdownTimeout)
}

// DevInterval parses dev.interval.
func (c *Config) DevInterval() (time.Duration, error) {
	return parsePositiveDuration(c.Dev.Interval)
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", s)
	}
	return d, nil
}

// resolve makes path relative to the config directory unless absolute.
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// WritingsPath returns the resolved posts directory.
func (c *Config) WritingsPath() string {
	return c.resolve(c.Content.Writings)
}

// BooksPath returns the resolved book highlights file.
func (c *Config) BooksPath() string {
	return c.resolve(c.Content.Books)
}

// StaticPath returns the resolved static directory, or "" for the
// embedded assets.
func (c *Config) StaticPath() string {
	return c.resolve(c.Static.Dir)
}

// OutputPath returns the resolved export directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

// WatchPaths returns the resolved watch directories.
func (c *Config) WatchPaths() []string {
	paths := make([]string, len(c.Dev.Watch))
	for i, p := range c.Dev.Watch {
		paths[i] = c.resolve(p)
	}
	return paths
}

// AbsoluteURL joins the base URL and path. Without a base URL the path is
// returned unchanged.
func (c *Config) AbsoluteURL(path string) string {
	if c.Site.BaseURL == "" {
		return path
	}
	return c.Site.BaseURL + path
}
