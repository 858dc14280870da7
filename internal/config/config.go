package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the fixed settings of a report run.
type Config struct {
	InputPath   string `mapstructure:"input_path"`
	OutputDir   string `mapstructure:"output_dir"`
	ChartFile   string `mapstructure:"chart_file"`
	ReportFile  string `mapstructure:"report_file"`
	LabelColumn string `mapstructure:"label_column"`
	ValueColumn string `mapstructure:"value_column"`
	TopN        int    `mapstructure:"top_n"`

	// Chart canvas
	ChartWidth  int    `mapstructure:"chart_width"`
	ChartHeight int    `mapstructure:"chart_height"`
	ChartTitle  string `mapstructure:"chart_title"`
	ChartYLabel string `mapstructure:"chart_y_label"`
}

// ChartPath is the chart location inside the output directory.
func (c *Config) ChartPath() string { return filepath.Join(c.OutputDir, c.ChartFile) }

// ReportPath is the report location inside the output directory.
func (c *Config) ReportPath() string { return filepath.Join(c.OutputDir, c.ReportFile) }

// Load resolves the run settings from defaults.
// The program deliberately reads no config file and no environment.
func Load() (*Config, error) {
	v := viper.New()

	// Paths
	v.SetDefault("input_path", filepath.Join("data", "medals_total.csv"))
	v.SetDefault("output_dir", "output")
	v.SetDefault("chart_file", "total_medals_by_top_50_countries.svg")
	v.SetDefault("report_file", "summary_report.md")
	// Columns
	v.SetDefault("label_column", "country")
	v.SetDefault("value_column", "Total")
	v.SetDefault("top_n", 50)
	// Chart defaults
	v.SetDefault("chart_width", 1000)
	v.SetDefault("chart_height", 600)
	v.SetDefault("chart_title", "Total Medals by Top 50 Countries")
	v.SetDefault("chart_y_label", "Total Medals")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.TopN <= 0 {
		return nil, fmt.Errorf("invalid top_n: %d", c.TopN)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return nil, fmt.Errorf("invalid chart size: %dx%d", c.ChartWidth, c.ChartHeight)
	}
	return &c, nil
}
