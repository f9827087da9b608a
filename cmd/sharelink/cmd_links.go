package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/sharelink/internal/actions"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/scheduler"
	"github.com/MrSnakeDoc/sharelink/internal/sources/contacts"
	"github.com/MrSnakeDoc/sharelink/internal/state"
)

// Swapped in tests.
var (
	newCopier = func() actions.Copier { return actions.NewSystemClipboard() }
	newOpener = func() actions.URLOpener { return actions.NewBrowserOpener() }
)

type linksOptions struct {
	platform     string
	message      string
	result       string
	resultFile   string
	contacts     []string
	contactsFile string
	copy         bool
	open         bool
	delay        time.Duration
	logLevel     string
}

func newLinksCmd() *cobra.Command {
	opts := &linksOptions{}

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Generate deep links once and print them",
		Example: `  sharelink links --platform whatsapp --result-file wordle.txt \
    --contact "Mom=+1 (234) 567-8900" --contact "Wordle Gang=Wordle Gang"

  pbpaste | sharelink links --result-file - --platform telegram --contact Alice=@alice --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.platform, "platform", "p", string(domain.PlatformWhatsApp), "whatsapp, sms or telegram")
	f.StringVarP(&opts.message, "message", "m", state.DefaultCustomMessage, "custom message placed before the result")
	f.StringVarP(&opts.result, "result", "r", "", "puzzle result text")
	f.StringVar(&opts.resultFile, "result-file", "", `read the result from a file ("-" for stdin)`)
	f.StringArrayVarP(&opts.contacts, "contact", "c", nil, "recipient as name=info (repeatable)")
	f.StringVar(&opts.contactsFile, "contacts-file", os.Getenv("SHARELINK_CONTACTS_FILE"), "YAML contacts seed file")
	f.BoolVar(&opts.copy, "copy", false, `copy "name: url" lines to the clipboard`)
	f.BoolVar(&opts.open, "open", false, "open every link, one after another")
	f.DurationVar(&opts.delay, "delay", scheduler.DefaultOpenDelay, "delay between opened links")
	f.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	cmd.MarkFlagsMutuallyExclusive("result", "result-file")

	return cmd
}

func runLinks(cmd *cobra.Command, opts *linksOptions) error {
	log := logger.New(opts.logLevel, true)
	defer func() { _ = log.Sync() }()

	platform, err := domain.ParsePlatform(opts.platform)
	if err != nil {
		return err
	}

	result, err := readResult(cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}

	store := state.NewStore(opts.message, platform)
	store.SetResult(result)

	if opts.contactsFile != "" {
		if _, err := contacts.NewImporter(opts.contactsFile, log).Import(store); err != nil {
			return err
		}
	}
	for _, raw := range opts.contacts {
		name, info, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid --contact %q, want name=info", raw)
		}
		if _, ok := store.AddContact(name, info); !ok {
			log.Warn("skipping contact with empty name or info", logger.String("contact", raw))
		}
	}

	store.SelectAll()
	links, err := store.Generate()
	if err != nil {
		if errors.Is(err, state.ErrNoSelection) {
			return errors.New("no contacts given, use --contact or --contacts-file")
		}
		return fmt.Errorf("nothing to generate: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, l := range links {
		fmt.Fprintf(out, "%s [%s/%s]: %s\n", l.Contact.Name, l.Platform, l.Kind, l.URL)
		if l.Note != "" {
			fmt.Fprintf(out, "  note: %s\n", l.Note)
		}
	}
	if skipped := store.Count() - len(links); skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d contact(s) cannot be reached over %s\n", skipped, platform.Label())
	}

	if opts.copy && len(links) > 0 {
		if _, err := actions.CopyLinks(newCopier(), links); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "copied %d link(s) to the clipboard\n", len(links))
	}

	if opts.open && len(links) > 0 {
		lo := scheduler.NewLinkOpener(newOpener(), log, opts.delay)
		lo.OpenAll(links)
		lo.Wait()
		lo.Stop()
	}

	return nil
}

func readResult(stdin io.Reader, opts *linksOptions) (string, error) {
	if opts.resultFile == "" {
		return opts.result, nil
	}

	var (
		data []byte
		err  error
	)
	if opts.resultFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.resultFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read result: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
