package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iamNilotpal/romsum/internal/core/services/image"
	"github.com/iamNilotpal/romsum/internal/core/services/manifest"
	"github.com/iamNilotpal/romsum/pkg/logger"
)

var verifyManifestPath string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check images against a checksum manifest",
	Long: `Recompute the checksum of every image recorded in a manifest and report
each entry as OK, FAILED, or MISSING. Entries are verified under the mode
they were summed with, so a manifest mixing modes verifies correctly.

Relative image names resolve against the current working directory.

Example:
  romsum verify --manifest sums.yaml`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyManifestPath, "manifest", "romsums.yaml", "manifest file to verify against")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		fallback := logger.New("romsum")
		defer fallback.Sync()
		fallback.Errorw("configuration error", "error", err)
		return err
	}
	defer log.Sync()

	svc, err := image.New(cfg.Options(), log)
	if err != nil {
		logSetupError(log, err)
		return err
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := manifest.New(svc, log).Verify(ctx, verifyManifestPath)
	if err != nil {
		log.Errorw("verify failed", "manifest", verifyManifestPath, "error", err)
		return err
	}

	failed := 0
	for _, result := range results {
		switch {
		case result.OK:
			fmt.Printf("%s: OK\n", result.Entry.Name)
		case result.Missing:
			failed++
			fmt.Printf("%s: MISSING\n", result.Entry.Name)
		case result.Err != nil:
			failed++
			fmt.Printf("%s: ERROR (%v)\n", result.Entry.Name, result.Err)
		case result.Checksum == uint16(result.Entry.Checksum):
			// Sum still matches, so the size must have changed. Zero padding
			// is the usual culprit; it leaves both sums untouched.
			failed++
			fmt.Printf("%s: FAILED (size %d, expected %d)\n", result.Entry.Name, result.Size, result.Entry.Size)
		default:
			failed++
			fmt.Printf("%s: FAILED (expected 0x%04x, got 0x%04x)\n",
				result.Entry.Name, uint16(result.Entry.Checksum), result.Checksum)
		}
	}

	if failed > 0 {
		log.Errorw("verification failed", "manifest", verifyManifestPath, "failed", failed, "total", len(results))
		return fmt.Errorf("%d of %d images failed verification", failed, len(results))
	}

	log.Infow("verification passed", "manifest", verifyManifestPath, "images", len(results))
	return nil
}
