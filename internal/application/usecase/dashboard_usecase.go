package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/calculator"
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/repository"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
	"github.com/diillson/energy-revenue-dashboard-go/pkg/console"
)

// StorageFactory cria o repositório de publicação para um bucket.
// O bucket só é conhecido depois de mesclar flags e arquivo de configuração.
type StorageFactory func(bucket, prefix, profile string) repository.StorageRepository

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	inputRepo  repository.InputRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	storage    StorageFactory
	console    types.ConsoleInterface
	log        *logger.Logger
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	inputRepo repository.InputRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	storage StorageFactory,
	console types.ConsoleInterface,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		inputRepo:  inputRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		storage:    storage,
		console:    console,
		log:        log,
	}
}

// ParseMode valida o modo de alocação. Vazio significa greedy.
func ParseMode(mode string) (entity.AllocationMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", string(entity.ModeGreedy):
		return entity.ModeGreedy, nil
	case string(entity.ModeManual):
		return entity.ModeManual, nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrUnknownMode, mode)
}

// ParseOrder valida a ordem de processamento. Vazio significa a ordem do arquivo.
func ParseOrder(order string) (entity.RecordOrder, error) {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", string(entity.OrderInput):
		return entity.OrderInput, nil
	case string(entity.OrderPriority):
		return entity.OrderPriority, nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrUnknownOrder, order)
}

// RatesFromArgs monta as tarifas de exportação a partir dos argumentos.
func RatesFromArgs(args *types.CLIArgs) entity.Rates {
	return entity.Rates{
		PrivateRate:         args.PrivateRate,
		MarketRate:          args.MarketRate,
		BonusRate:           args.BonusRate,
		BonusThreshold:      args.BonusThreshold,
		StandingChargeDaily: args.StandingChargeDaily,
	}
}

// BuildReport carrega as tabelas de entrada e executa uma passada de alocação.
func (uc *DashboardUseCase) BuildReport(args *types.CLIArgs) (entity.AllocationReport, error) {
	mode, err := ParseMode(args.Mode)
	if err != nil {
		return entity.AllocationReport{}, err
	}
	order, err := ParseOrder(args.Order)
	if err != nil {
		return entity.AllocationReport{}, err
	}

	if args.ConsumptionFile == "" {
		return entity.AllocationReport{}, types.ErrNoConsumptionInput
	}
	if args.GenerationFile == "" {
		return entity.AllocationReport{}, types.ErrNoGenerationInput
	}

	status := uc.console.Status("Loading consumption records...")
	records, err := uc.inputRepo.LoadConsumption(args.ConsumptionFile)
	if err != nil {
		status.Stop()
		return entity.AllocationReport{}, fmt.Errorf("error loading consumption file: %w", err)
	}

	status.Update("Loading generation records...")
	generation, err := uc.inputRepo.LoadGeneration(args.GenerationFile)
	status.Stop()
	if err != nil {
		return entity.AllocationReport{}, fmt.Errorf("error loading generation file: %w", err)
	}

	if len(records) == 0 {
		return entity.AllocationReport{}, types.ErrNoRecords
	}
	if len(generation) == 0 {
		uc.console.LogWarning("Generation file has no rows. All consumption will be supplied from the grid")
	}

	if mode == entity.ModeManual {
		if missing := lo.CountBy(records, func(r entity.ConsumptionRecord) bool { return !r.HasSplit() }); missing > 0 {
			uc.console.LogInfo("%d of %d records have no pre-assigned split and will be taken from the grid", missing, len(records))
		}
	}

	pool := entity.NewGenerationPool(generation)
	uc.log.Infow("allocation started",
		"mode", mode, "order", order, "records", len(records), "pool_kwh", pool.Total)

	report := calculator.Run(records, *pool, RatesFromArgs(args), calculator.Options{
		Mode:  mode,
		Order: order,
		Trace: uc.traceStep,
	})

	uc.log.Infow("allocation finished",
		"transferred_kwh", report.Summary.Transferred,
		"spilled_kwh", report.Summary.Spilled,
		"over_allocated", report.OverAllocatedCount())

	return report, nil
}

func (uc *DashboardUseCase) traceStep(step calculator.Step) {
	uc.log.Debugw("allocation step",
		"index", step.Index,
		"mpan", step.MPAN,
		"consumption_kwh", step.Consumption,
		"from_generation_kwh", step.FromGeneration,
		"from_grid_kwh", step.FromGrid,
		"pool_remaining_kwh", step.PoolRemaining,
	)
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	report, err := uc.BuildReport(args)
	if err != nil {
		return err
	}

	uc.console.Print(uc.allocationTable(report).Render())
	uc.console.Print(uc.summaryTable(report).Render())
	uc.reportAnomalies(report)

	if args.Chart {
		uc.console.DisplayRevenueBars("Export Revenue", revenueBars(report))
	}

	uc.exportReports(ctx, reportTarget{
		name:    args.ReportName,
		types:   args.ReportType,
		dir:     args.Dir,
		bucket:  args.S3Bucket,
		prefix:  args.S3Prefix,
		profile: args.AWSProfile,
		label:   "allocation report",
		toCSV:   func(name, dir string) ([]string, error) { return uc.exportRepo.ExportAllocationToCSV(report, name, dir) },
		toJSON:  func(name, dir string) (string, error) { return uc.exportRepo.ExportAllocationToJSON(report, name, dir) },
		toPDF:   func(name, dir string) (string, error) { return uc.exportRepo.ExportAllocationToPDF(report, name, dir) },
	})

	return nil
}

// allocationTable cria a tabela por MPAN com uma linha de totais no final.
func (uc *DashboardUseCase) allocationTable(report entity.AllocationReport) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("MPAN")
	table.AddColumn("Consumption (kWh)")
	table.AddColumn("From Generation (kWh)")
	table.AddColumn("From Grid (kWh)")
	table.AddColumn("Match %")
	table.AddColumn("Generation Cost")
	table.AddColumn("Grid Cost")
	table.AddColumn("Total Cost")
	table.AddColumn("Flags")

	for _, r := range report.Results {
		table.AddRow(
			r.MPAN,
			kwh(r.Consumption),
			kwh(r.FromGeneration),
			kwh(r.FromGrid),
			fmt.Sprintf("%.2f%%", r.MatchPercent),
			console.FormatPounds(r.CostFromGeneration),
			console.FormatPounds(r.CostFromGrid),
			console.FormatPounds(r.TotalCost),
			resultFlags(r),
		)
	}

	sum := func(f func(entity.AllocationResult) float64) float64 { return lo.SumBy(report.Results, f) }
	totalConsumption := sum(func(r entity.AllocationResult) float64 { return r.Consumption })
	totalGeneration := sum(func(r entity.AllocationResult) float64 { return r.FromGeneration })

	table.AddRow(
		console.BrightCyan("Total"),
		kwh(totalConsumption),
		kwh(totalGeneration),
		kwh(sum(func(r entity.AllocationResult) float64 { return r.FromGrid })),
		fmt.Sprintf("%.2f%%", calculator.MatchPercent(totalGeneration, totalConsumption)),
		console.FormatPounds(sum(func(r entity.AllocationResult) float64 { return r.CostFromGeneration })),
		console.FormatPounds(sum(func(r entity.AllocationResult) float64 { return r.CostFromGrid })),
		console.FormatPounds(sum(func(r entity.AllocationResult) float64 { return r.TotalCost })),
		"",
	)

	return table
}

func resultFlags(r entity.AllocationResult) string {
	var flags []string
	if r.OverAllocated {
		flags = append(flags, console.BrightRed("OVER"))
	}
	if r.BonusEligible {
		flags = append(flags, console.BrightGreen("BONUS"))
	}
	return strings.Join(flags, " ")
}

// summaryTable cria a tabela do resumo de exportação.
func (uc *DashboardUseCase) summaryTable(report entity.AllocationReport) types.TableInterface {
	s := report.Summary
	table := uc.console.CreateTable()
	table.AddColumn("Export Summary")
	table.AddColumn("Value")

	table.AddRow("Mode", string(report.Mode))
	table.AddRow("Total Generation", kwh(s.TotalGeneration)+" kWh")
	table.AddRow("Transferred", kwh(s.Transferred)+" kWh")
	table.AddRow("Spilled", console.BrightYellow(kwh(s.Spilled)+" kWh"))
	table.AddRow(fmt.Sprintf("Private Revenue (%gp/kWh)", report.Rates.PrivateRate), console.FormatPounds(s.PrivateRevenue))
	table.AddRow(fmt.Sprintf("Market Revenue (%gp/kWh)", report.Rates.MarketRate), console.FormatPounds(s.MarketRevenue))
	if report.Rates.BonusRate > 0 {
		table.AddRow(fmt.Sprintf("Match Bonus (%gp/kWh)", report.Rates.BonusRate), console.FormatPounds(s.BonusRevenue))
	}
	table.AddRow("Total Export Revenue", console.FormatPounds(s.TotalExportRevenue))
	if report.Rates.StandingChargeDaily > 0 {
		table.AddRow(fmt.Sprintf("Standing Charge (%gp/day)", report.Rates.StandingChargeDaily), console.FormatPounds(-s.StandingCharge))
	}
	table.AddRow("Net Revenue", console.BrightMagenta(console.FormatPounds(s.NetRevenue)))

	return table
}

// reportAnomalies avisa sobre registros e pools inconsistentes. Nada aqui interrompe a execução.
func (uc *DashboardUseCase) reportAnomalies(report entity.AllocationReport) {
	for _, r := range report.Results {
		if r.OverAllocated {
			uc.console.LogWarning("MPAN %s: generation %s + grid %s kWh exceeds consumption of %s kWh",
				r.MPAN, kwh(r.FromGeneration), kwh(r.FromGrid), kwh(r.Consumption))
		}
	}

	if report.Summary.Oversubscribed {
		claimed := lo.SumBy(report.Results, func(r entity.AllocationResult) float64 { return r.FromGeneration })
		uc.console.LogWarning("Generation claimed by records (%s kWh) exceeds the pool (%s kWh). Nothing is spilled",
			kwh(claimed), kwh(report.Summary.TotalGeneration))
	}
}

// revenueBars monta as barras do gráfico. Encargos entram como valores negativos.
func revenueBars(report entity.AllocationReport) []types.RevenueBar {
	s := report.Summary
	bars := []types.RevenueBar{
		{Label: "Private", Amount: s.PrivateRevenue},
		{Label: "Market", Amount: s.MarketRevenue},
	}
	if report.Rates.BonusRate > 0 {
		bars = append(bars, types.RevenueBar{Label: "Match Bonus", Amount: s.BonusRevenue})
	}
	if s.StandingCharge > 0 {
		bars = append(bars, types.RevenueBar{Label: "Standing Charge", Amount: -s.StandingCharge})
	}
	return append(bars, types.RevenueBar{Label: "Net", Amount: s.NetRevenue})
}

func kwh(v float64) string {
	if math.Abs(v) < 0.0005 {
		v = 0
	}
	return fmt.Sprintf("%.3f", v)
}
