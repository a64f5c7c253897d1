package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <service> <username>",
		Short: "Add a service",
		Long:  "Add stores a new entry. The password is prompted for. Existing entries for the same service are kept.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Add(cmd.Context(), args[0], args[1]); err != nil {
				c.log.Error().Err(err).Str("service", args[0]).Msg("add failed")
				return err
			}
			fmt.Fprintln(c.out, tui.RenderSuccess(app.MsgServiceAdded))
			return nil
		},
	}
}

func (c *cli) getCmd() *cobra.Command {
	var copyPassword bool

	cmd := &cobra.Command{
		Use:   "get <service>",
		Short: "Get a service information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, ok, err := c.app.Get(cmd.Context(), args[0])
			if err != nil {
				c.log.Error().Err(err).Str("service", args[0]).Msg("get failed")
				return err
			}
			if !ok {
				fmt.Fprintln(c.out, tui.RenderNotFound(args[0]))
				return nil
			}

			fmt.Fprintln(c.out, tui.RenderCredential(cred))
			if copyPassword {
				c.copy(cred.Password)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyPassword, "copy", false, "Copy the password to the clipboard")
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.List(cmd.Context())
			if err != nil {
				c.log.Error().Err(err).Msg("list failed")
				return err
			}
			fmt.Fprintln(c.out, tui.RenderList(entries))
			return nil
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <service>",
		Short: "Delete a service",
		Long:  "Delete removes every entry stored for the service.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.app.Delete(cmd.Context(), args[0])
			if err != nil {
				c.log.Error().Err(err).Str("service", args[0]).Msg("delete failed")
				return err
			}
			msg := app.MsgServiceDeleted
			if removed == 0 {
				msg += " (" + app.MsgNothingDeleted + ")"
			}
			fmt.Fprintln(c.out, tui.RenderSuccess(msg))
			return nil
		},
	}
}

func (c *cli) generateCmd() *cobra.Command {
	var copySecret bool

	cmd := &cobra.Command{
		Use:   "generate [length]",
		Short: "Generate a password",
		Long:  "Generate prints a random password. The default length comes from generator.length (16 unless configured).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length := c.app.GeneratorLength()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid length %q: %w", args[0], err)
				}
				length = n
			}

			secret, err := c.app.Generate(length)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, tui.RenderSecret(secret))
			if copySecret {
				c.copy(secret)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copySecret, "copy", false, "Copy the password to the clipboard")
	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetupAnnotation: "true"},
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(c.out, tui.RenderBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
		},
	}
}

// copy puts s on the clipboard. A missing clipboard is reported but does not
// fail the command, the value was already printed.
func (c *cli) copy(s string) {
	if err := c.copyToClipboard(s); err != nil {
		c.log.Warn().Err(err).Msg("clipboard write failed")
		fmt.Fprintln(c.errOut, tui.RenderError(fmt.Errorf("%s: %w", app.MsgClipboardUnavailable, err)))
		return
	}
	fmt.Fprintln(c.out, tui.RenderSuccess(app.MsgCopiedToClipboard))
}
