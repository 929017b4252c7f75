package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Output   OutputConfig   `yaml:"output"`
	Limits   LimitsConfig   `yaml:"limits"`
	Quality  QualityConfig  `yaml:"quality"`
	Releases ReleasesConfig `yaml:"releases"`
	Site     SiteConfig     `yaml:"site"`
}

// SourceConfig describes where XML documentation exports are found.
type SourceConfig struct {
	// Root is the checkout of the documented source tree (used for local
	// version resolution and as the glob base).
	Root string `yaml:"root"`
	// Glob matches XML documentation exports relative to Root.
	Glob string `yaml:"glob"`
	// Exclude skips any matched path containing one of these substrings.
	// Reference assemblies live under ref/ and carry no doc comments.
	Exclude []string `yaml:"exclude,omitempty"`
	// MaxFiles bounds how many matched files are processed per run.
	MaxFiles int `yaml:"max_files"`
}

// OutputConfig describes where generated Markdown is written.
type OutputConfig struct {
	APIDir       string `yaml:"api_dir"`       // top-level api directory (index.md, versions.md)
	GeneratedDir string `yaml:"generated_dir"` // per-assembly reference pages
	VersionsDir  string `yaml:"versions_dir"`  // version-scoped reference pages
}

// LimitsConfig bounds the size of single-version reference pages.
type LimitsConfig struct {
	MaxTypes    int `yaml:"max_types"`
	MaxMembers  int `yaml:"max_members"` // per kind, per type
	MaxExamples int `yaml:"max_examples"`
}

// QualityConfig controls the documentation density check.
type QualityConfig struct {
	// MinSummaryLength is the minimum summary length (exclusive) for a member
	// to count as substantially documented.
	MinSummaryLength int `yaml:"min_summary_length"`
	// MinDocumentedRatio: a file with documented/total below this ratio is
	// flagged as low quality.
	MinDocumentedRatio float64 `yaml:"min_documented_ratio"`
}

// ReleasesConfig configures the external release listing.
type ReleasesConfig struct {
	Repository string `yaml:"repository"` // owner/name
	APIURL     string `yaml:"api_url,omitempty"`
}

// SiteConfig describes what the deployment validator expects in a built site.
type SiteConfig struct {
	CriticalPages      []string           `yaml:"critical_pages,omitempty"`
	ImportantPages     []string           `yaml:"important_pages,omitempty"`
	AssetPaths         []string           `yaml:"asset_paths,omitempty"`
	NavSections        []string           `yaml:"nav_sections,omitempty"`
	ExpectedAssemblies []string           `yaml:"expected_assemblies,omitempty"`
	Fallback           []FallbackAssembly `yaml:"fallback,omitempty"`
}

// FallbackAssembly is the hand-authored placeholder content for one assembly.
type FallbackAssembly struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	KeyClasses  []string `yaml:"key_classes,omitempty"`
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env file if present; existing environment wins.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment variables from .env")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Source.Root == "" {
		c.Source.Root = "belay-source"
	}
	if c.Source.Glob == "" {
		c.Source.Glob = "src/*/bin/Release/net8.0/*.xml"
	}
	if len(c.Source.Exclude) == 0 {
		c.Source.Exclude = []string{"ref"}
	}
	if c.Source.MaxFiles == 0 {
		c.Source.MaxFiles = 10
	}
	if c.Output.APIDir == "" {
		c.Output.APIDir = "api"
	}
	if c.Output.GeneratedDir == "" {
		c.Output.GeneratedDir = "api/generated"
	}
	if c.Output.VersionsDir == "" {
		c.Output.VersionsDir = "api/versions"
	}
	if c.Limits.MaxTypes == 0 {
		c.Limits.MaxTypes = 15
	}
	if c.Limits.MaxMembers == 0 {
		c.Limits.MaxMembers = 5
	}
	if c.Limits.MaxExamples == 0 {
		c.Limits.MaxExamples = 2
	}
	if c.Quality.MinSummaryLength == 0 {
		c.Quality.MinSummaryLength = 20
	}
	if c.Quality.MinDocumentedRatio == 0 {
		c.Quality.MinDocumentedRatio = 0.30
	}
	if c.Releases.Repository == "" {
		c.Releases.Repository = "belay-dotnet/Belay.NET"
	}
	if c.Releases.APIURL == "" {
		c.Releases.APIURL = "https://api.github.com"
	}
	if len(c.Site.CriticalPages) == 0 {
		c.Site.CriticalPages = []string{
			"index.html",
			"guide/getting-started.html", // guide has no index, starts with getting-started
			"examples/index.html",
			"api/index.html",
			"hardware/index.html",
		}
	}
	if len(c.Site.ImportantPages) == 0 {
		c.Site.ImportantPages = []string{
			"guide/getting-started.html",
			"examples/first-connection.html",
			"api/index.html",
		}
	}
	if len(c.Site.AssetPaths) == 0 {
		c.Site.AssetPaths = []string{"assets", "_app", "images", "logo.svg"}
	}
	if len(c.Site.NavSections) == 0 {
		c.Site.NavSections = []string{"guide", "examples", "api", "hardware"}
	}
	if len(c.Site.ExpectedAssemblies) == 0 {
		c.Site.ExpectedAssemblies = []string{"Belay.Core", "Belay.Attributes", "Belay.Sync"}
	}
	if len(c.Site.Fallback) == 0 {
		c.Site.Fallback = defaultFallbackAssemblies()
	}
}

func defaultFallbackAssemblies() []FallbackAssembly {
	return []FallbackAssembly{
		{
			Name:        "Belay.Core",
			Description: "Core library providing device communication, method execution, and session management",
			KeyClasses: []string{
				"**Device** - Main device connection and communication class",
				"  - `ConnectAsync(string port)` - Connect to device on specified port",
				"  - `ExecuteAsync<T>(string code)` - Execute Python code and return typed result",
				"  - `StartAsync()` - Initialize device communication",
				"**TaskExecutor** - Handles [Task] attribute method execution",
				"  - `ExecuteTaskAsync(MethodInfo, object[])` - Execute attributed method on device",
				"  - Supports caching, timeouts, and result serialization",
				"**EnhancedExecutor** - Advanced method interception framework",
				"  - Pipeline-based execution with validation stages",
				"  - Method interception caching and deployment optimization",
				"**SerialDeviceCommunication** - USB/Serial device communication",
				"  - `SendAsync(string)` - Send commands to device",
				"  - `ReceiveAsync()` - Receive responses from device",
				"  - Automatic protocol detection and flow control",
			},
		},
		{
			Name:        "Belay.Attributes",
			Description: "Attribute definitions for marking methods for device execution",
			KeyClasses: []string{
				"TaskAttribute - Execute methods as remote tasks with caching and timeout",
				"ThreadAttribute - Background thread execution on device",
				"SetupAttribute - Device initialization methods",
				"TeardownAttribute - Device cleanup methods",
				"ThreadPriority - Priority levels for thread execution",
			},
		},
		{
			Name:        "Belay.Sync",
			Description: "File synchronization and device file system operations",
			KeyClasses: []string{
				"DeviceFileSystem - File operations on MicroPython device",
				"DeviceExtensions - Extension methods for device file operations",
			},
		},
	}
}

// Init creates a default configuration file at the given path.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	cfg := Default()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	header := "# docbuild configuration\n# Environment variables are expanded with ${VAR} syntax.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
