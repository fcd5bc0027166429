package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mnogodumalon/kurs70/internal/app/features/dashboard"
	"github.com/mnogodumalon/kurs70/internal/app/store/livingapps"
	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/locale"
	"github.com/mnogodumalon/kurs70/internal/app/system/overview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errLoadFailed is returned after a failed load has been reported.
var errLoadFailed = errors.New("dashboard load failed")

type options struct {
	baseURL  string
	apiKey   string
	apps     livingapps.Apps
	timeZone string
	timeout  time.Duration
	asJSON   bool
	verbose  bool
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "kursstats",
		Short: "Print the course dashboard once",
		Long: `kursstats loads all five course collections from LivingApps once and
prints the dashboard figures: counts, payment split, upcoming courses and the
latest registrations. Flags default to the KURS_* environment variables the
server uses.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if missing := opts.apps.Missing(); len(missing) > 0 {
				return fmt.Errorf("missing app ids for: %v", missing)
			}
			client, err := livingapps.New(opts.baseURL, opts.apps, livingapps.WithAPIKey(opts.apiKey))
			if err != nil {
				return err
			}
			return run(cmd.Context(), client, opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.baseURL, "base-url", envOr("KURS_LIVINGAPPS_BASE_URL", livingapps.DefaultBaseURL), "LivingApps REST base URL")
	f.StringVar(&opts.apiKey, "api-key", os.Getenv("KURS_LIVINGAPPS_API_KEY"), "LivingApps API key")
	f.StringVar(&opts.apps.Kurse, "app-kurse", os.Getenv("KURS_LIVINGAPPS_APP_KURSE"), "app id of the Kurse collection")
	f.StringVar(&opts.apps.Dozenten, "app-dozenten", os.Getenv("KURS_LIVINGAPPS_APP_DOZENTEN"), "app id of the Dozenten collection")
	f.StringVar(&opts.apps.Teilnehmer, "app-teilnehmer", os.Getenv("KURS_LIVINGAPPS_APP_TEILNEHMER"), "app id of the Teilnehmer collection")
	f.StringVar(&opts.apps.Raeume, "app-raeume", os.Getenv("KURS_LIVINGAPPS_APP_RAEUME"), "app id of the Räume collection")
	f.StringVar(&opts.apps.Anmeldungen, "app-anmeldungen", os.Getenv("KURS_LIVINGAPPS_APP_ANMELDUNGEN"), "app id of the Anmeldungen collection")
	f.StringVar(&opts.timeZone, "time-zone", envOr("KURS_TIME_ZONE", locale.DefaultTimeZone), "IANA time zone for course dates")
	f.DurationVar(&opts.timeout, "timeout", 15*time.Second, "upper bound for the load")
	f.BoolVar(&opts.asJSON, "json", false, "print the JSON document served at /dashboard/stats.json")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log load details to stderr")

	return cmd
}

// run performs one load from src and writes the report to w. A failed load
// is still reported, then errLoadFailed is returned.
func run(ctx context.Context, src dataservice.Source, opts options, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	loc, err := locale.LoadLocation(opts.timeZone)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", opts.timeZone, err)
	}

	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sess := overview.NewSession(src, logger, overview.WithLocation(loc))
	defer sess.Close()
	loadErr := sess.Load(ctx)

	doc := dashboard.BuildStatsDocument(sess.State(), sess.ID, loc)
	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
	} else {
		printReport(w, doc, loadErr)
	}

	if loadErr != nil {
		return errLoadFailed
	}
	return nil
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paidStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	openStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func printReport(w io.Writer, doc dashboard.StatsDocument, loadErr error) {
	fmt.Fprintln(w, titleStyle.Render("Kursverwaltung · Übersicht"))

	if !doc.Loaded {
		msg := "Daten konnten nicht geladen werden"
		if loadErr != nil {
			msg += ": " + loadErr.Error()
		}
		fmt.Fprintln(w, errStyle.Render(msg))
		return
	}

	c := doc.Counts
	fmt.Fprintf(w, "Kurse: %d  Dozenten: %d  Teilnehmer: %d  Räume: %d  Anmeldungen: %d\n",
		c.Kurse, c.Dozenten, c.Teilnehmer, c.Raeume, c.Anmeldungen)
	fmt.Fprintf(w, "%s %d  %s %d\n", paidStyle.Render("Bezahlt:"), doc.Bezahlt, openStyle.Render("Offen:"), doc.Unbezahlt)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Bevorstehende Kurse"))
	if len(doc.UpcomingKurse) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  Keine bevorstehenden Kurse"))
	}
	for _, k := range doc.UpcomingKurse {
		line := fmt.Sprintf("  %-14s %s (%s)", k.Datum, k.Titel, k.Dozent)
		if k.PreisText != "" {
			line += "  " + k.PreisText
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Letzte Anmeldungen"))
	if len(doc.RecentAnmeldungen) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  Keine Anmeldungen vorhanden"))
	}
	for _, a := range doc.RecentAnmeldungen {
		badge := openStyle.Render("Offen")
		if a.Bezahlt {
			badge = paidStyle.Render("Bezahlt")
		}
		date := a.Datum
		if date == "" {
			date = locale.Placeholder
		}
		fmt.Fprintf(w, "  %-9s %s · %s  %s\n", date, a.Teilnehmer, a.Kurs, badge)
	}
}
