package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile          string
	ConsumptionFile     string
	GenerationFile      string
	Mode                string
	Order               string
	PrivateRate         float64
	MarketRate          float64
	BonusRate           float64
	BonusThreshold      float64
	StandingChargeDaily float64
	ReportName          string
	ReportType          []string
	Dir                 string
	Chart               bool
	S3Bucket            string
	S3Prefix            string
	AWSProfile          string
	LogLevel            string

	// Changed holds the long names of the flags set explicitly on the
	// command line. Those win over values from the config file.
	Changed map[string]bool
}

// SplitArgs represents the arguments of the split command.
type SplitArgs struct {
	TotalVolume float64
	SleevedPct  float64
	ExportVol   float64
	PrivateRate float64
	GridRate    float64
	SpillRate   float64
	ReportName  string
	ReportType  []string
	Dir         string
	Chart       bool
}

// IsSet reports whether the named flag was given explicitly.
func (a *CLIArgs) IsSet(flag string) bool {
	return a.Changed != nil && a.Changed[flag]
}
