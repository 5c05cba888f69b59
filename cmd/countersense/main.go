package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"countersense/internal/config"
	"countersense/internal/counter"
	"countersense/internal/logging"
	"countersense/internal/perception"
)

var (
	configPath string
	apiKey     string
	provider   string
	model      string
	offline    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "countersense",
	Short: "countersense - multilingual counter command resolver",
	Long: `countersense maps free-form English, Japanese and Korean commands
("카운터를 증가시켜줘", "set to 42", "リセットして") to one of four counter
operations: increment, decrement, set_counter, reset_counter.

A deterministic keyword-evidence pass corrects the upstream model when its
answer contradicts the normalized input, so the pipeline also works fully
offline (--offline).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// newResolver builds a resolver from config, flags, and the selected
// provider. --offline forces the keyword-evidence path with no upstream.
func newResolver(ctx context.Context) (*perception.Resolver, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.Upstream.APIKey = apiKey
	}
	if provider != "" {
		cfg.Upstream.Provider = provider
	}
	if model != "" {
		cfg.Upstream.Model = model
	}

	opts := []perception.Option{
		perception.WithPolicy(perception.Policy{ZeroSetIsReset: cfg.Policy.ZeroSetIsReset}),
		perception.WithLogger(logging.Get(logging.CategoryPerception)),
	}

	if offline || cfg.Upstream.Provider == "none" {
		return perception.NewResolver(nil, opts...), nil
	}

	var upstream perception.Upstream
	switch cfg.Upstream.Provider {
	case "gemini":
		upstream, err = perception.NewGeminiUpstream(ctx, cfg.Upstream.APIKey, cfg.Upstream.Model)
		if err != nil {
			return nil, err
		}
	case "openai":
		chatCfg := perception.DefaultChatConfig(cfg.Upstream.APIKey)
		if cfg.Upstream.Model != "" {
			chatCfg.Model = cfg.Upstream.Model
		}
		if cfg.Upstream.BaseURL != "" {
			chatCfg.BaseURL = cfg.Upstream.BaseURL
		}
		chatCfg.Timeout = cfg.UpstreamTimeout()
		upstream = perception.NewChatUpstream(chatCfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Upstream.Provider)
	}

	return perception.NewResolver(upstream, opts...), nil
}

func printCall(call perception.Call, ok bool) {
	if !ok {
		fmt.Println("could not parse command")
		return
	}
	out, _ := json.Marshal(call)
	fmt.Println(string(out))
}

var parseCmd = &cobra.Command{
	Use:   "parse <command...>",
	Short: "Resolve a single natural-language command",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver(cmd.Context())
		if err != nil {
			return err
		}

		call, ok, err := resolver.Resolve(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printCall(call, ok)
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively drive a counter with natural language",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver(cmd.Context())
		if err != nil {
			return err
		}
		log := logging.Get(logging.CategoryCLI)

		ctr := counter.New()
		fmt.Printf("counter = %d (ctrl-d to quit)\n", ctr.Value())

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			call, ok, err := resolver.Resolve(cmd.Context(), line)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			if !ok {
				fmt.Println("could not parse command")
				continue
			}

			value, err := ctr.Apply(call)
			if err != nil {
				fmt.Printf("rejected %s: %v\n", call.Name, err)
				continue
			}
			log.Sugar().Debugf("applied %s", call.Name)
			fmt.Printf("%s -> counter = %d\n", call.Name, value)
		}
		return scanner.Err()
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve one command per stdin line, concurrently",
	Long: `Reads commands from stdin, one per line, and resolves them with a
bounded number of concurrent pipeline calls. Output order matches input
order. The pipeline holds no mutable state, so this needs no locking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver(cmd.Context())
		if err != nil {
			return err
		}

		var lines []string
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		type result struct {
			call perception.Call
			ok   bool
		}
		results := make([]result, len(lines))

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(8)
		for i, line := range lines {
			g.Go(func() error {
				call, ok, err := resolver.Resolve(ctx, line)
				if err != nil {
					return fmt.Errorf("%q: %w", line, err)
				}
				results[i] = result{call: call, ok: ok}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, res := range results {
			fmt.Printf("%s\t", lines[i])
			printCall(res.call, res.ok)
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "upstream API key (overrides config and env)")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "upstream provider: gemini, openai, none")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "upstream model name")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "skip the upstream model, resolve from keyword evidence only")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(parseCmd, replCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
