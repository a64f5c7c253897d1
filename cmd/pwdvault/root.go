package main

import (
	"errors"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

const skipSetupAnnotation = "skip-setup"

// cli holds the state shared by all commands of one invocation.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags     *config.Flags
	cfg       *config.StructuredConfig
	log       *logger.Logger
	logCloser io.Closer
	app       *client.App

	copyToClipboard func(string) error
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{
		in:              in,
		out:             out,
		errOut:          errOut,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pwdvault",
		Short: "Local encrypted password vault",
		Long: `pwdvault keeps service/username/password entries in one file encrypted
with AES-256-GCM under a key derived from your master password with Argon2id.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.addCmd(),
		c.getCmd(),
		c.listCmd(),
		c.deleteCmd(),
		c.generateCmd(),
		c.versionCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipSetupAnnotation] != "" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return err
	}
	c.cfg = cfg

	c.log, c.logCloser, err = logger.NewFileLogger("pwdvault", cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		return err
	}
	c.log.Debug().
		Str("command", cmd.Name()).
		Str("vault", cfg.Vault.Path).
		Str("backend", cfg.Vault.Backend).
		Msg("starting")

	c.app = client.NewApp(cfg, &prompter{in: c.in, out: c.errOut}, c.log)
	return nil
}

// execute runs the command line args and always releases the session, also
// when the command failed.
func (c *cli) execute(args []string) error {
	root := c.rootCmd()
	root.SetArgs(args)

	err := root.Execute()
	return errors.Join(err, c.teardown())
}

func (c *cli) teardown() error {
	var errs []error
	if c.app != nil {
		errs = append(errs, c.app.Close())
	}
	if c.logCloser != nil {
		errs = append(errs, c.logCloser.Close())
	}
	c.app, c.logCloser = nil, nil
	return errors.Join(errs...)
}

// prompter reads secrets from the command input.
type prompter struct {
	in  io.Reader
	out io.Writer
}

func (p *prompter) Secret(label string) (string, error) {
	return tui.PromptSecret(p.in, p.out, label)
}
