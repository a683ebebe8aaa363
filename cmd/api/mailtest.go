package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierca1/ligue-crm/internal/config"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
)

var mailTestCmd = &cobra.Command{
	Use:   "mail-test",
	Short: "Send the SMTP test message to the configured account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		sender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword).
			WithSender(cfg.SMTPFromName, cfg.SMTPReplyTo)

		to, err := sender.SendTest()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "test email sent to %s\n", to)
		return nil
	},
}
