package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iamNilotpal/romsum/internal/core/domain"
	"github.com/iamNilotpal/romsum/internal/core/services/image"
	"github.com/iamNilotpal/romsum/internal/core/services/manifest"
	"github.com/iamNilotpal/romsum/pkg/errors"
	"github.com/iamNilotpal/romsum/pkg/logger"
)

var (
	sumMode         string
	sumAllowOdd     bool
	sumJSON         bool
	sumJobs         uint8
	sumManifestPath string
)

var sumCmd = &cobra.Command{
	Use:   "sum [flags] image...",
	Short: "Compute image checksums",
	Long: `Compute the 16-bit checksum and complement of each image and print them
to stdout, one line per image. A single "-" reads the image from stdin.

Example:
  romsum sum game.sfc
  romsum sum --mode word-wise roms/*.bin
  romsum sum --manifest sums.yaml roms/*.sfc.zst
  romsum sum --json game.sfc
  cat game.sfc | romsum sum -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSum,
}

func init() {
	sumCmd.Flags().StringVar(&sumMode, "mode", "", "accumulation mode: byte-wise, word-wise or mirror")
	sumCmd.Flags().BoolVar(&sumAllowOdd, "allow-odd", false, "word-wise: drop a trailing unpaired byte instead of failing")
	sumCmd.Flags().BoolVar(&sumJSON, "json", false, "print results as a JSON array instead of plain lines")
	sumCmd.Flags().Uint8Var(&sumJobs, "jobs", 0, "concurrent images (0 uses the configured value)")
	sumCmd.Flags().StringVar(&sumManifestPath, "manifest", "", "also write the results to a manifest file")
}

func runSum(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		fallback := logger.New("romsum")
		defer fallback.Sync()
		fallback.Errorw("configuration error", "error", err)
		return err
	}
	defer log.Sync()

	opts := cfg.Options()
	if sumMode != "" {
		opts.Sum.Mode = domain.Mode(sumMode)
	}
	if cmd.Flags().Changed("allow-odd") {
		opts.Sum.AllowOddLength = sumAllowOdd
	}
	if sumJobs > 0 {
		opts.Workers = sumJobs
	}

	svc, err := image.New(opts, log)
	if err != nil {
		logSetupError(log, err)
		return err
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := sumInputs(ctx, svc, args)
	if err != nil {
		log.Errorw("sum failed", "error", err)
		return err
	}

	if err := printResults(results); err != nil {
		log.Errorw("output failed", "error", err)
		return err
	}

	if sumManifestPath != "" {
		if err := manifest.New(svc, log).Write(sumManifestPath, results); err != nil {
			log.Errorw("manifest write failed", "manifest", sumManifestPath, "error", err)
			return err
		}
	}

	return nil
}

func printResults(results []*domain.Result) error {
	if !sumJSON {
		for _, result := range results {
			fmt.Printf("0x%04x 0x%04x  %s\n", result.Checksum, result.Complement, result.Name)
		}
		return nil
	}

	type jsonResult struct {
		Name       string `json:"name"`
		Size       int64  `json:"size"`
		Mode       string `json:"mode"`
		Checksum   string `json:"checksum"`
		Complement string `json:"complement"`
	}

	out := make([]jsonResult, 0, len(results))
	for _, result := range results {
		out = append(out, jsonResult{
			Name:       result.Name,
			Size:       result.Size,
			Mode:       string(result.Mode),
			Checksum:   fmt.Sprintf("0x%04x", result.Checksum),
			Complement: fmt.Sprintf("0x%04x", result.Complement),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results : %w", err)
	}

	fmt.Println(string(data))
	return nil
}

func sumInputs(ctx context.Context, svc *image.Service, args []string) ([]*domain.Result, error) {
	if len(args) == 1 && args[0] == "-" {
		result, err := svc.SumReader(ctx, os.Stdin, "-")
		if err != nil {
			return nil, err
		}
		return []*domain.Result{result}, nil
	}

	for _, arg := range args {
		if arg == "-" {
			return nil, fmt.Errorf("stdin must be the only input")
		}
	}

	return svc.SumAll(ctx, args)
}

func logSetupError(log *zap.SugaredLogger, err error) {
	if verr := errors.AsValidationError(err); verr != nil {
		log.Errorw("invalid options", "field", verr.Field, "value", verr.Value, "error", verr.Err)
		return
	}
	log.Errorw("service setup error", "error", err)
}
