package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fiveverst/fiveverst-go/client"
	"github.com/fiveverst/fiveverst-go/internal/config"
	"github.com/fiveverst/fiveverst-go/internal/logger"
)

const commandTimeout = 2 * time.Minute

type rootOptions struct {
	cfg      *config.Config
	baseURL  string
	debug    bool
	username string
	password string
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "fiveverst",
		Short:         "Command line client for the 5 Verst athlete API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = opts.baseURL
			}
			if opts.debug {
				cfg.Debug = true
				cfg.LogLevel = zerolog.LevelDebugValue
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.cfg = cfg

			log.Logger = logger.NewConsole(cmd.ErrOrStderr(), cfg.Level())
			log.Debug().Str("base_url", cfg.BaseURL).Msg("debug logging enabled")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", client.DefaultBaseURL, "Base URL of the 5 Verst API (overrides FIVEVERST_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output including HTTP dumps")
	rootCmd.PersistentFlags().StringVar(&opts.username, "username", os.Getenv("FIVEVERST_USERNAME"), "Account username; other commands log in first when set")
	rootCmd.PersistentFlags().StringVar(&opts.password, "password", os.Getenv("FIVEVERST_PASSWORD"), "Account password")

	rootCmd.AddCommand(newLoginCmd(opts))
	rootCmd.AddCommand(newProfileCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newLocationsCmd(opts))
	rootCmd.AddCommand(newRegisterCmd(opts))

	return rootCmd
}

func (o *rootOptions) newClient() (*client.Client, error) {
	return client.New(append(o.cfg.ClientOptions(), client.WithLogger(log.Logger))...)
}

// session returns a client that is logged in when credentials were supplied.
func (o *rootOptions) session(ctx context.Context) (*client.Client, error) {
	c, err := o.newClient()
	if err != nil {
		return nil, err
	}
	if o.username == "" {
		return c, nil
	}
	if _, err := c.Login(ctx, client.LoginRequest{Username: o.username, Password: o.password}); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	log.Debug().Str("username", o.username).Msg("logged in")
	return c, nil
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and print the issued token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.username == "" || opts.password == "" {
				return fmt.Errorf("--username and --password are required")
			}
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			start := time.Now()
			resp, err := c.Login(ctx, client.LoginRequest{Username: opts.username, Password: opts.password})
			if err != nil {
				log.Error().Err(err).Str("username", opts.username).Dur("elapsed", time.Since(start)).Msg("login failed")
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newProfileCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in athlete's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			c, err := opts.session(ctx)
			if err != nil {
				return err
			}
			resp, err := c.GetAthleteProfile(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var athleteID int64

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated results for an athlete",
		RunE: func(cmd *cobra.Command, args []string) error {
			if athleteID <= 0 {
				return fmt.Errorf("--athlete-id must be positive")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			c, err := opts.session(ctx)
			if err != nil {
				return err
			}
			resp, err := c.GetAthleteStats(ctx, client.AthleteIDRequest{AthleteID: athleteID})
			if err != nil {
				log.Error().Err(err).Int64("athlete_id", athleteID).Msg("get stats failed")
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().Int64Var(&athleteID, "athlete-id", 0, "Athlete ID (required)")
	_ = cmd.MarkFlagRequired("athlete-id")
	return cmd
}

func newLocationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List event locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			c, err := opts.session(ctx)
			if err != nil {
				return err
			}
			resp, err := c.GetLocations(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new athlete account (password from --password)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.password == "" {
				return fmt.Errorf("--password is required")
			}
			req.Password = opts.password

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			resp, err := c.Register(ctx, req)
			if err != nil {
				log.Error().Err(err).Str("email", req.Email).Msg("register failed")
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&req.BirthDate, "birth-date", "", "Birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
