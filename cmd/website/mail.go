package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firstengineering/website/pkg/email"
	"github.com/firstengineering/website/svc/contact"
)

func newMailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Mail delivery tools",
	}
	cmd.AddCommand(newMailTestCmd())
	return cmd
}

func newMailTestCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a sample contact notification through the configured provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			sender, err := email.NewSender(cfg.Mail)
			if err != nil {
				return fmt.Errorf("mail: %w", err)
			}

			cfg.Contact.ToEmail = to
			svc := contact.NewService(cfg.Contact, sender, contact.WithLogger(log))
			id, err := svc.Submit(cmd.Context(), samplePayload())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sent %s via %s to %s\n", id, cfg.Mail.Provider, to)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient address")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func samplePayload() contact.Payload {
	return contact.Payload{
		Name:    "Website Mail Test",
		Email:   "mail-test@example.com",
		Phone:   "07300 805194",
		Subject: "Mail delivery test",
		Message: "This is a test message sent with `website mail test`.\nIf you can read it, delivery works.",
	}
}
