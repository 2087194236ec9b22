package types

// Config represents the application configuration that can be loaded from a file.
// Keys mirror the long command-line flag names.
type Config struct {
	ConsumptionFile     string   `json:"consumption_file" yaml:"consumption_file" toml:"consumption_file"`
	GenerationFile      string   `json:"generation_file" yaml:"generation_file" toml:"generation_file"`
	Mode                string   `json:"mode" yaml:"mode" toml:"mode"`
	Order               string   `json:"order" yaml:"order" toml:"order"`
	PrivateRate         *float64 `json:"private_rate,omitempty" yaml:"private_rate,omitempty" toml:"private_rate,omitempty"`
	MarketRate          *float64 `json:"market_rate,omitempty" yaml:"market_rate,omitempty" toml:"market_rate,omitempty"`
	BonusRate           *float64 `json:"bonus_rate,omitempty" yaml:"bonus_rate,omitempty" toml:"bonus_rate,omitempty"`
	BonusThreshold      *float64 `json:"bonus_threshold,omitempty" yaml:"bonus_threshold,omitempty" toml:"bonus_threshold,omitempty"`
	StandingChargeDaily *float64 `json:"standing_charge,omitempty" yaml:"standing_charge,omitempty" toml:"standing_charge,omitempty"`
	ReportName          string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType          []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir                 string   `json:"dir" yaml:"dir" toml:"dir"`
	Chart               *bool    `json:"chart,omitempty" yaml:"chart,omitempty" toml:"chart,omitempty"`
	S3Bucket            string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix            string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	AWSProfile          string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	LogLevel            string   `json:"log_level" yaml:"log_level" toml:"log_level"`
}
