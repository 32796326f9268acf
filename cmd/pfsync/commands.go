package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/pfsync/internal/adapters/memory"
	"github.com/fr0stylo/pfsync/internal/app/bootstrap"
	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/services"
	"github.com/fr0stylo/pfsync/pkg/webhookpublisher"
)

func (c *cli) syncCmd() *cobra.Command {
	var (
		page    int
		perPage int
		status  string
		all     bool
	)
	cmd := &cobra.Command{
		Use:       "sync <listings|agents>",
		Short:     "Import one page, or the whole catalog with --all",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"listings", "agents"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			if perPage <= 0 {
				perPage = c.cfg.Sync.PerPage
			}
			engine, err := c.engine(cmd.Context(), bootstrap.Options{})
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			if all {
				result := engine.Catalog(kind).RunAll(cmd.Context(), services.CatalogParams{StartPage: page, PerPage: perPage, Status: status})
				if err := c.printCatalog(result); err != nil {
					return err
				}
				if !result.Completed && result.StopReason != services.StopPageLimit {
					return fmt.Errorf("catalog sync stopped: %s", result.StopReason)
				}
				return nil
			}

			result := engine.Runner(kind).Run(cmd.Context(), services.RunParams{Page: page, PerPage: perPage, Status: status})
			if err := c.printRun(result); err != nil {
				return err
			}
			if !result.Success && result.Reason != services.ReasonNoEntities {
				return fmt.Errorf("sync failed: %s", result.Reason)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to import (start page with --all)")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "entities per page (default from PFSYNC_SYNC_PER_PAGE)")
	cmd.Flags().StringVar(&status, "status", "", "remote status filter")
	cmd.Flags().BoolVar(&all, "all", false, "walk pages until one changes nothing")
	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show last sync time, record count and lock state per kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			engine, err := c.engine(ctx, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			states, err := engine.State.ListSyncStates(ctx)
			if err != nil {
				return err
			}
			lastSync := make(map[domain.Kind]time.Time, len(states))
			for _, state := range states {
				lastSync[state.Kind] = state.LastSyncAt
			}

			type row struct {
				Kind       domain.Kind `json:"kind"`
				LastSyncAt *time.Time  `json:"lastSyncAt"`
				Records    int64       `json:"records"`
				Locked     bool        `json:"locked"`
			}
			rows := make([]row, 0, len(domain.Kinds))
			for _, kind := range domain.Kinds {
				r := row{Kind: kind}
				if at, ok := lastSync[kind]; ok {
					r.LastSyncAt = &at
				}
				if r.Records, err = engine.Records.CountByKind(ctx, kind); err != nil {
					return err
				}
				if r.Locked, err = engine.Lock.IsHeld(ctx, kind.LockKey()); err != nil {
					return err
				}
				rows = append(rows, r)
			}

			if c.json {
				return json.NewEncoder(c.out).Encode(rows)
			}
			w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tLAST SYNC\tRECORDS\tLOCKED")
			for _, r := range rows {
				last := "never"
				if r.LastSyncAt != nil {
					last = r.LastSyncAt.Local().Format(time.DateTime)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%t\n", r.Kind.Plural(), last, r.Records, r.Locked)
			}
			return w.Flush()
		},
	}
}

func (c *cli) unlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <listings|agents>",
		Short: "Force release a stuck sync lock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			engine, err := c.engine(cmd.Context(), bootstrap.Options{})
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			if holder, held, err := engine.Lock.Holder(cmd.Context(), kind.LockKey()); err == nil && held {
				c.log.Warn("releasing held lock", "kind", string(kind), "holder", holder)
			}
			if err := engine.Lock.Release(cmd.Context(), kind.LockKey()); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "released %s\n", kind.LockKey())
			return nil
		},
	}
}

func (c *cli) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Request an access token to verify API credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := c.engine(cmd.Context(), bootstrap.Options{KV: memory.NewKV(time.Now)})
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			token, err := engine.Client.Token(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "token ok, expires %s (in %s)\n", token.ExpiresAt.Local().Format(time.DateTime), time.Until(token.ExpiresAt).Round(time.Second))
			return nil
		},
	}
}

func (c *cli) printRun(result services.RunResult) error {
	if c.json {
		return json.NewEncoder(c.out).Encode(result)
	}
	if !result.Success {
		_, err := fmt.Fprintf(c.out, "%s page %d: %s\n", result.Kind.Plural(), result.Page, result.Reason)
		return err
	}
	_, err := fmt.Fprintf(c.out, "%s page %d: imported=%d updated=%d skipped=%d errors=%d total=%d (%dms)\n",
		result.Kind.Plural(), result.Page, result.Imported, result.Updated, result.Skipped, result.Errors, result.Total, result.DurationMS)
	return err
}

func (c *cli) printCatalog(result services.CatalogResult) error {
	if c.json {
		return json.NewEncoder(c.out).Encode(result)
	}
	for _, page := range result.Pages {
		if err := c.printRun(page); err != nil {
			return err
		}
	}
	t := result.Totals
	_, err := fmt.Fprintf(c.out, "%s total: imported=%d updated=%d skipped=%d errors=%d, stopped: %s\n",
		result.Kind.Plural(), t.Imported, t.Updated, t.Skipped, t.Errors, result.StopReason)
	return err
}

func (c *cli) webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Send test webhooks to a running server",
	}

	var (
		endpoint    string
		secret      string
		source      string
		cloudEvents bool
	)
	send := &cobra.Command{
		Use:   "send <type> [entity-id]",
		Short: "Sign and post a single webhook event",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = c.cfg.Webhook.Secret
			}
			event := webhookpublisher.Event{Type: args[0], Source: source}
			if len(args) == 2 {
				event.EntityID = args[1]
			}
			client := webhookpublisher.Client{Endpoint: endpoint, Secret: secret, CloudEvents: cloudEvents}
			resolved, err := client.Publish(cmd.Context(), event)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "sent %s %s\n", resolved, event.EntityID)
			return nil
		},
	}
	send.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "pfsync server base url")
	send.Flags().StringVar(&secret, "secret", "", "signing secret (default PFSYNC_WEBHOOK_SECRET)")
	send.Flags().StringVar(&source, "source", "", "CloudEvents source attribute")
	send.Flags().BoolVar(&cloudEvents, "cloudevents", false, "send a structured CloudEvent")
	cmd.AddCommand(send)
	return cmd
}
