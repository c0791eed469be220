package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"activityBoard/internal/client/activities"
	"activityBoard/internal/models"
	"activityBoard/internal/view"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultAPIURL = "http://localhost:8000"
	apiURLEnv     = "ACTIVITIES_API_URL"
)

var ErrNotConfirmed = errors.New("refusing to unregister without confirmation, pass --yes")

type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Interactive reports whether In is attached to a terminal.
	Interactive func() bool
}

func DefaultOptions() Options {
	return Options{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		Interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

type globalFlags struct {
	apiURL  string
	timeout time.Duration
}

func (g *globalFlags) client() *activities.Client {
	return activities.New(g.apiURL, activities.WithHTTPClient(&http.Client{Timeout: g.timeout}))
}

func NewRootCommand(opts Options) *cobra.Command {
	flags := &globalFlags{}

	apiURL := os.Getenv(apiURLEnv)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	cmd := &cobra.Command{
		Use:           "activityctl",
		Short:         "Browse and manage activity sign-ups",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetIn(opts.In)
	cmd.SetOut(opts.Out)
	cmd.SetErr(opts.Err)

	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", apiURL, "base URL of the activities API (env "+apiURLEnv+")")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 10*time.Second, "per-request timeout")

	cmd.AddCommand(
		newListCommand(flags),
		newSignupCommand(flags),
		newUnregisterCommand(flags, opts),
	)

	return cmd
}

func newListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every activity with its participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roster, err := flags.client().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s (%w)", view.LoadFailedText, err)
			}

			RenderRoster(cmd.OutOrStdout(), roster)

			return nil
		},
	}
}

func newSignupCommand(flags *globalFlags) *cobra.Command {
	var activity, email string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Sign a student up for an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := flags.client().Signup(cmd.Context(), activity, email)
			if err != nil {
				return errors.New(view.SignupFailureText(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(msg))

			return nil
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "activity name")
	cmd.Flags().StringVar(&email, "email", "", "student email")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUnregisterCommand(flags *globalFlags, opts Options) *cobra.Command {
	var activity, email string
	var yes bool

	cmd := &cobra.Command{
		Use:   "unregister",
		Short: "Remove a student from an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				if opts.Interactive == nil || !opts.Interactive() {
					return ErrNotConfirmed
				}

				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), view.ConfirmPrompt(activity, email))
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}

				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			msg, err := flags.client().Unregister(cmd.Context(), activity, email)
			if err != nil {
				return errors.New(view.UnregisterFailureText(err))
			}

			if msg != "" {
				fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(msg))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "activity name")
	cmd.Flags().StringVar(&email, "email", "", "student email")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt+" [y/N] ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// RenderRoster writes the terminal version of the activity cards.
func RenderRoster(w io.Writer, roster models.Roster) {
	bold := color.New(color.Bold)

	for i, a := range roster {
		if i > 0 {
			fmt.Fprintln(w)
		}

		bold.Fprintln(w, a.Name)
		fmt.Fprintf(w, "  Description: %s\n", a.Description)
		fmt.Fprintf(w, "  Schedule:    %s\n", a.Schedule)
		fmt.Fprintf(w, "  Capacity:    %s\n", a.Capacity())
		fmt.Fprintln(w, "  Current Participants:")

		if len(a.Participants) == 0 {
			fmt.Fprintf(w, "    %s\n", view.NoParticipantsText)
			continue
		}

		for _, p := range a.Participants {
			fmt.Fprintf(w, "    - %s\n", p)
		}
	}
}
