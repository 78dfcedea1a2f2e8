package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/ledgerexport/internal/adapter/http/dto"
	"github.com/iho/ledgerexport/internal/infrastructure/postgres"
)

// options are the persistent flags shared by every command.
type options struct {
	baseURL string
	token   string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "exportctl",
		Short:         "Balance history export CLI",
		Long:          `A command line interface for downloading balance history exports and managing the export database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", envOr("EXPORTCTL_URL", "http://localhost:8080"), "Base URL of the export API")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("EXPORTCTL_TOKEN"), "Bearer token")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Minute, "Request timeout")

	rootCmd.AddCommand(exportCmd(opts), accountingCmd(opts), migrateCmd())

	return rootCmd
}

func exportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Self-service exports",
	}

	var from, to, out string
	sumCmd := &cobra.Command{
		Use:   "sum",
		Short: "Download your balance history as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := windowQuery(from, to)
			if err != nil {
				return err
			}

			resp, err := opts.do(cmd.Context(), http.MethodGet, "/api/v1/export/transactions/sum?"+query.Encode(), nil)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			return save(cmd, resp, out, false)
		},
	}
	addWindowFlags(sumCmd, &from, &to)
	sumCmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")

	var tFrom, tTo, tOut string
	var filter activityFlags
	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Download the transactions that moved your balance as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := windowQuery(tFrom, tTo)
			if err != nil {
				return err
			}
			filter.apply(query)

			resp, err := opts.do(cmd.Context(), http.MethodGet, "/api/v1/export/transactions/?"+query.Encode(), nil)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			return save(cmd, resp, tOut, false)
		},
	}
	addWindowFlags(transactionsCmd, &tFrom, &tTo)
	transactionsCmd.Flags().StringVar(&tOut, "out", "", "Output file (default stdout)")
	transactionsCmd.Flags().StringVar(&filter.status, "status", "", "Only this status: pending, processing, accept or close")
	transactionsCmd.Flags().StringVar(&filter.direction, "direction", "", "Only this direction: inbound or outbound")
	transactionsCmd.Flags().StringVar(&filter.amountFrom, "amount-from", "", "Minimum amount")
	transactionsCmd.Flags().StringVar(&filter.amountTo, "amount-to", "", "Maximum amount")
	transactionsCmd.Flags().StringVar(&filter.currencyID, "currency-id", "", "Only this currency")

	cmd.AddCommand(sumCmd, transactionsCmd)
	return cmd
}

// activityFlags are the optional filters of export transactions.
type activityFlags struct {
	status, direction    string
	amountFrom, amountTo string
	currencyID           string
}

func (f activityFlags) apply(query url.Values) {
	setIf(query, dto.ParamStatus, f.status)
	setIf(query, dto.ParamDirection, f.direction)
	setIf(query, dto.ParamAmountFrom, f.amountFrom)
	setIf(query, dto.ParamAmountTo, f.amountTo)
	setIf(query, dto.ParamCurrencyID, f.currencyID)
}

// accountingFlags are the filters of the accounting overview.
type accountingFlags struct {
	role   string
	geoID  int64
	search string
}

func addAccountingFlags(cmd *cobra.Command) *accountingFlags {
	f := &accountingFlags{}
	cmd.Flags().StringVar(&f.role, "role", "", "Only accounts of this role")
	cmd.Flags().Int64Var(&f.geoID, "geo-id", 0, "Only accounts of this geo (ignored for agents)")
	cmd.Flags().StringVar(&f.search, "search", "", "Exact account id or name")
	return f
}

func (f *accountingFlags) query() url.Values {
	query := url.Values{}
	setIf(query, dto.ParamRole, f.role)
	if f.geoID != 0 {
		query.Set(dto.ParamGeoID, strconv.FormatInt(f.geoID, 10))
	}
	setIf(query, dto.ParamSearch, f.search)
	return query
}

func setIf(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func accountingCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounting",
		Short: "Accounting exports of named accounts",
	}

	var from, to, out string
	downloadCmd := &cobra.Command{
		Use:   "download <user-id>",
		Short: "Download an account's balance history as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := windowBody(from, to)
			if err != nil {
				return err
			}
			body, err := json.Marshal(req)
			if err != nil {
				return err
			}

			resp, err := opts.do(cmd.Context(), http.MethodPost, "/api/v1/admin/accounting/"+url.PathEscape(args[0]), bytes.NewReader(body))
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			return save(cmd, resp, out, true)
		},
	}
	addWindowFlags(downloadCmd, &from, &to)
	downloadCmd.Flags().StringVar(&out, "out", "", "Output file (default: the server-provided filename)")

	var limit int
	var sFrom, sTo string
	statementCmd := &cobra.Command{
		Use:   "statement <user-id>",
		Short: "Print an account's statement as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := windowQuery(sFrom, sTo)
			if err != nil {
				return err
			}
			if limit > 0 {
				query.Set(dto.ParamLimit, strconv.Itoa(limit))
			}

			path := "/api/v1/admin/accounting/" + url.PathEscape(args[0]) + "/statement?" + query.Encode()
			resp, err := opts.do(cmd.Context(), http.MethodGet, path, nil)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			var statement dto.StatementResponse
			if err := json.NewDecoder(resp.Body).Decode(&statement); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), statement)
		},
	}
	addWindowFlags(statementCmd, &sFrom, &sTo)
	statementCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows (default: server maximum)")

	var lastOffsetID int64
	var pageSize int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the accounting overview as JSON",
	}
	listFilter := addAccountingFlags(listCmd)
	listCmd.Flags().Int64Var(&lastOffsetID, "last-offset-id", 0, "Continue below this offset id (next_offset_id of the previous page)")
	listCmd.Flags().IntVar(&pageSize, "limit", 100, "Page size, 0 for every account")
	listCmd.RunE = func(cmd *cobra.Command, args []string) error {
		query := listFilter.query()
		if lastOffsetID > 0 {
			query.Set(dto.ParamLastOffsetID, strconv.FormatInt(lastOffsetID, 10))
		}
		query.Set(dto.ParamLimit, strconv.Itoa(pageSize))

		resp, err := opts.do(cmd.Context(), http.MethodGet, "/api/v1/admin/accounting/list?"+query.Encode(), nil)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		var page dto.AccountingListResponse
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), page)
	}

	var overviewOut string
	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Download the accounting overview as CSV",
	}
	overviewFilter := addAccountingFlags(overviewCmd)
	overviewCmd.Flags().StringVar(&overviewOut, "out", "", "Output file (default: the server-provided filename)")
	overviewCmd.RunE = func(cmd *cobra.Command, args []string) error {
		resp, err := opts.do(cmd.Context(), http.MethodGet, "/api/v1/admin/accounting/download?"+overviewFilter.query().Encode(), nil)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		return save(cmd, resp, overviewOut, true)
	}

	cmd.AddCommand(downloadCmd, statementCmd, listCmd, overviewCmd)
	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL, path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Primary database URL")
	cmd.PersistentFlags().StringVar(&path, "path", envOr("MIGRATIONS_PATH", "migrations"), "Migrations directory")

	// withMigrator opens the migrations for one subcommand and reports the
	// version it leaves the schema at.
	withMigrator := func(run func(*postgres.Migrator) (uint, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return errors.New("--database-url is required")
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
			mg, err := postgres.NewMigrator(databaseURL, path, logger)
			if err != nil {
				return err
			}
			defer mg.Close()

			version, err := run(mg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		}
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  withMigrator((*postgres.Migrator).Up),
	}
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE:  withMigrator((*postgres.Migrator).Down),
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: withMigrator(func(mg *postgres.Migrator) (uint, error) {
			version, _, err := mg.Version()
			return version, err
		}),
	}

	cmd.AddCommand(upCmd, downCmd, versionCmd)
	return cmd
}

func addWindowFlags(cmd *cobra.Command, from, to *string) {
	cmd.Flags().StringVar(from, "from", "", "Window start: unix seconds, RFC3339 or YYYY-MM-DD")
	cmd.Flags().StringVar(to, "to", "", "Window end (exclusive): unix seconds, RFC3339 or YYYY-MM-DD")
}

// do sends an authenticated request and turns non-2xx answers into errors.
func (o *options) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)

	req, err := http.NewRequestWithContext(ctx, method, o.baseURL+path, body)
	if err != nil {
		cancel()
		return nil, err
	}
	if o.token != "" {
		req.Header.Set("Authorization", "Bearer "+o.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("error making request: %w", err)
	}
	resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		var apiErr dto.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("request failed (status %d): %s: %s", resp.StatusCode, apiErr.Error, apiErr.Message)
		}
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

// save copies the response body to out. With useServerName, an empty out
// falls back to the attachment filename the server suggested.
func save(cmd *cobra.Command, resp *http.Response, out string, useServerName bool) error {
	if out == "" && useServerName {
		out = filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	}

	if out == "" || out == "-" {
		_, err := io.Copy(cmd.OutOrStdout(), resp.Body)
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	n, copyErr := io.Copy(f, resp.Body)
	if err := f.Close(); err != nil && copyErr == nil {
		copyErr = err
	}
	if copyErr != nil {
		return fmt.Errorf("download interrupted after %d bytes, %s may be truncated: %w", n, out, copyErr)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "saved %d bytes to %s (export %s)\n", n, out, resp.Header.Get("X-Export-Id"))
	return nil
}

func filenameFromDisposition(header string) string {
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := filepath.Base(params["filename"])
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// parseTime accepts unix seconds, RFC3339 or a date. Empty means unset.
func parseTime(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &v, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			v := t.Unix()
			return &v, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q: want unix seconds, RFC3339 or YYYY-MM-DD", s)
}

func windowBody(from, to string) (dto.ExportWindowRequest, error) {
	var req dto.ExportWindowRequest
	var err error
	if req.CreateTimestampFrom, err = parseTime(from); err != nil {
		return req, err
	}
	if req.CreateTimestampTo, err = parseTime(to); err != nil {
		return req, err
	}
	return req, nil
}

func windowQuery(from, to string) (url.Values, error) {
	req, err := windowBody(from, to)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if req.CreateTimestampFrom != nil {
		query.Set(dto.ParamFrom, strconv.FormatInt(*req.CreateTimestampFrom, 10))
	}
	if req.CreateTimestampTo != nil {
		query.Set(dto.ParamTo, strconv.FormatInt(*req.CreateTimestampTo, 10))
	}
	return query, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
