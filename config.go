package main

import (
	"strings"

	"github.com/spf13/viper"
)

type SiteOptions struct {
	Title           string       `mapstructure:"title"`
	Description     string       `mapstructure:"description"`
	Base            string       `mapstructure:"base"`
	LastUpdated     bool         `mapstructure:"last_updated"`
	IgnoreDeadLinks bool         `mapstructure:"ignore_dead_links"`
	SocialLinks     []SocialLink `mapstructure:"social_links"`
}

type SearchConfig struct {
	Provider    string   `mapstructure:"provider"`
	Fields      []string `mapstructure:"fields"`
	StoreFields []string `mapstructure:"store_fields"`
	BoostTitle  float64  `mapstructure:"boost_title"`
	Prefix      bool     `mapstructure:"prefix"`
	Fuzzy       float64  `mapstructure:"fuzzy"`
}

type OutlineConfig struct {
	Levels []int  `mapstructure:"levels"`
	Label  string `mapstructure:"label"`
}

type BuildConfig struct {
	Command string `mapstructure:"command"`
	Dir     string `mapstructure:"dir"`
}

// Config holds everything needed to turn a sidebar directory into a site
// configuration. Values come from .sidebars.{yaml,toml,json}, SIDEBARS_* env
// vars and CLI flags.
type Config struct {
	SidebarDir   string        `mapstructure:"sidebar_dir"`
	Splitter     string        `mapstructure:"splitter"`
	DocsDir      string        `mapstructure:"docs_dir"`
	Output       string        `mapstructure:"output"`
	Format       string        `mapstructure:"format"`
	SectionLabel string        `mapstructure:"section_label"`
	VersionLabel string        `mapstructure:"version_label"`
	Verbose      bool          `mapstructure:"verbose"`
	Site         SiteOptions   `mapstructure:"site"`
	Search       SearchConfig  `mapstructure:"search"`
	Outline      OutlineConfig `mapstructure:"outline"`
	Build        BuildConfig   `mapstructure:"build"`
}

// bindEnv maps SIDEBARS_* variables onto config keys. Nested keys use an
// underscore, so SIDEBARS_SITE_BASE sets site.base.
func bindEnv() {
	viper.SetEnvPrefix("SIDEBARS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func setDefaults() {
	viper.SetDefault("sidebar_dir", "docs/.vitepress/crystal")
	viper.SetDefault("splitter", defaultSplitter)
	viper.SetDefault("docs_dir", "docs")
	viper.SetDefault("output", "docs/.vitepress/site.json")
	viper.SetDefault("format", "")
	viper.SetDefault("section_label", "Cql API")
	viper.SetDefault("version_label", "Version")
	viper.SetDefault("verbose", false)

	viper.SetDefault("site.title", "Cql Documentation")
	viper.SetDefault("site.description", "")
	viper.SetDefault("site.base", "/cql/")
	viper.SetDefault("site.last_updated", true)
	viper.SetDefault("site.ignore_dead_links", true)
	viper.SetDefault("site.social_links", []map[string]interface{}{
		{"icon": "github", "link": "https://github.com/azutoolkit/cql"},
	})

	viper.SetDefault("search.provider", "minisearch")
	viper.SetDefault("search.fields", []string{"title", "description", "content"})
	viper.SetDefault("search.store_fields", []string{"title", "description"})
	viper.SetDefault("search.boost_title", 2.0)
	viper.SetDefault("search.prefix", true)
	viper.SetDefault("search.fuzzy", 0.2)

	viper.SetDefault("outline.levels", []int{2, 6})
	viper.SetDefault("outline.label", "On this page")

	viper.SetDefault("build.command", "")
	viper.SetDefault("build.dir", ".")
}

// LoadConfig reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func LoadConfig() (Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Splitter == "" {
		return Config{}, configErrorf("splitter cannot be empty")
	}
	return cfg, nil
}
