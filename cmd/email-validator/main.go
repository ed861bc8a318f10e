// Command email-validator verifies email addresses from the command
// line or stdin and prints one JSON verdict per address.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	emailvalidator "github.com/neptun2000/email-validator"
)

type options struct {
	helo           string
	from           string
	connectTimeout time.Duration
	commandTimeout time.Duration
	probePublic    bool
	suggest        bool
	workers        int
	verbose        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "email-validator [address ...]",
		Short: "verify email addresses over DNS and SMTP",
		Long: `email-validator runs each address through syntax, domain, MX/DMARC
and SMTP mailbox checks and prints one JSON verdict per address.

Addresses are taken from the arguments, or from stdin (one per line)
when no arguments are given or the single argument is "-".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.helo, "helo", "", "client name sent in HELO")
	flags.StringVar(&opts.from, "from", "", "sender used in MAIL FROM")
	flags.DurationVar(&opts.connectTimeout, "connect-timeout", 5*time.Second, "SMTP connect timeout")
	flags.DurationVar(&opts.commandTimeout, "command-timeout", 10*time.Second, "SMTP per-command timeout")
	flags.BoolVar(&opts.probePublic, "probe-public", false, "probe mailboxes on public providers instead of assuming deliverability")
	flags.BoolVar(&opts.suggest, "suggest", false, "suggest likely intended domains for unresolvable ones")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent verifications per batch (0 = default)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log signal failures to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	log := zerolog.Nop()
	if opts.verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			With().Timestamp().Logger()
	}

	v := emailvalidator.New().
		WithSMTP(emailvalidator.SMTPOptions{
			HeloHost:             opts.helo,
			MailFrom:             opts.from,
			ConnectTimeout:       opts.connectTimeout,
			CommandTimeout:       opts.commandTimeout,
			ProbePublicProviders: opts.probePublic,
		}).
		WithDomain(emailvalidator.DomainOptions{SuggestTypos: opts.suggest}).
		WithBatch(emailvalidator.BatchOptions{Workers: opts.workers}).
		WithLogger(log)
	defer func() { _ = v.Close() }()

	emails, err := collectAddresses(cmd, args)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return fmt.Errorf("no addresses to verify")
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	ctx := cmd.Context()

	// respect the batch cap by chunking the input
	const chunk = 100
	for start := 0; start < len(emails); start += chunk {
		end := start + chunk
		if end > len(emails) {
			end = len(emails)
		}
		verdicts, err := v.VerifyBatch(ctx, emails[start:end])
		if err != nil {
			return err
		}
		for _, verdict := range verdicts {
			if err := enc.Encode(verdict); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectAddresses takes addresses from the arguments, or from stdin
// when none are given or the single argument is "-".
func collectAddresses(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}

	var emails []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			emails = append(emails, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return emails, nil
}
