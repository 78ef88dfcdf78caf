package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vrgreentek/greentek-site/internal/inquiries/repository"
	"github.com/vrgreentek/greentek-site/internal/inquiries/service"
)

func newInquiryService(repo repository.Repository, log *zap.Logger) *service.InquiryService {
	// Purging never consults the limiter.
	return service.NewInquiryService(repo, nil, log)
}

func newInquiriesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "Maintain stored contact inquiries",
	}

	var olderThan time.Duration
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete inquiries older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, retention, closeFn, err := e.openPurger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if cmd.Flags().Changed("older-than") {
				retention = olderThan
			}

			n, err := p.Purge(cmd.Context(), retention)
			if err != nil {
				return fmt.Errorf("purge inquiries: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d inquiries older than %s\n", n, retention)
			return nil
		},
	}
	purge.Flags().DurationVar(&olderThan, "older-than", 0, "Override INQUIRY_RETENTION (e.g. 2160h)")

	cmd.AddCommand(purge)
	return cmd
}
