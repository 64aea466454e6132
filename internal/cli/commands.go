// Package cli implements the interactive console for socwire. It lets
// an operator decode wire lines by hand, replay log renderings, and
// inspect the message log and decode counters while the relay runs.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"

	"github.com/socwire-project/socwire/internal/config"
	"github.com/socwire-project/socwire/internal/db"
	"github.com/socwire-project/socwire/internal/events"
	"github.com/socwire-project/socwire/internal/message"
	"github.com/socwire-project/socwire/internal/telemetry"
)

// CLI provides an interactive command-line interface.
type CLI struct {
	cfg      *config.Config
	eventBus *events.EventBus
	store    *db.MessageStore
	stats    *telemetry.Collector
}

// NewCLI creates a new CLI handler.
func NewCLI(cfg *config.Config, eventBus *events.EventBus, store *db.MessageStore, stats *telemetry.Collector) *CLI {
	return &CLI{
		cfg:      cfg,
		eventBus: eventBus,
		store:    store,
		stats:    stats,
	}
}

// Start begins the interactive CLI loop.
func (c *CLI) Start(ctx context.Context) {
	fmt.Println("\nsocwire CLI ready. Type 'help' for available commands.")
	fmt.Println("─────────────────────────────────────────────────────")

	reader := newLineReader()
	defer reader.Close()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := reader.ReadLine("socwire> ")
		if err != nil {
			if err == io.EOF {
				return
			}
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if err := c.execute(ctx, cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// execute processes a single CLI command.
func (c *CLI) execute(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help", "h", "?":
		c.printHelp()
	case "stats", "s":
		return c.cmdStats()
	case "recent", "r":
		return c.cmdRecent(args)
	case "decode", "d":
		return c.cmdDecode(args)
	case "render":
		return c.cmdRender(args)
	case "game", "g":
		return c.cmdGame(args)
	case "setconfig":
		return c.cmdSetConfig(ctx, args)
	case "quit", "exit", "q":
		fmt.Println("Shutting down socwire...")
		c.eventBus.Emit(ctx, events.Event{
			Type:   events.EventShutdown,
			Source: "cli",
		})
	default:
		fmt.Printf("Unknown command: '%s'. Type 'help' for available commands.\n", cmd)
	}
	return nil
}

// printHelp displays available commands.
func (c *CLI) printHelp() {
	fmt.Println("\n╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                      socwire CLI Commands                     ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Println("║  stats              Show decode counters per message kind    ║")
	fmt.Println("║  recent [n]         Show the n most recent logged messages   ║")
	fmt.Println("║  game <name> [n]    Show recent messages for one game        ║")
	fmt.Println("║  decode <line>      Decode a raw wire line                   ║")
	fmt.Println("║  render <text>      Parse a log rendering back to a message  ║")
	fmt.Println("║  setconfig <k> <v>  Update a configuration value             ║")
	fmt.Println("║  quit               Shutdown socwire                         ║")
	fmt.Println("║  help               Show this help message                   ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Println()
}

// cmdStats prints the in-memory counters and the store's per-kind totals.
func (c *CLI) cmdStats() error {
	snap := c.stats.Snapshot()

	fmt.Printf("\n  Uptime:   %ds\n", snap.UptimeSec)
	fmt.Printf("  Decoded:  %d\n", snap.Decoded)
	fmt.Printf("  Failed:   %d\n", snap.Failed)
	fmt.Printf("  Clients:  %d\n", snap.ActiveClients)

	counts, err := c.store.CountsByKind()
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Println("\n  Message log is empty.")
		fmt.Println()
		return nil
	}

	fmt.Println()
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Type", "Kind", "Stored"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)

	for _, kc := range counts {
		tw.Append([]string{
			strconv.Itoa(kc.TypeID),
			kc.Kind,
			strconv.FormatInt(kc.Count, 10),
		})
	}

	tw.Render()
	fmt.Println()
	return nil
}

// cmdRecent prints the most recent logged messages, newest first.
func (c *CLI) cmdRecent(args []string) error {
	limit := 20
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid count: %s", args[0])
		}
		limit = n
	}

	recs, err := c.store.Recent("", 0, limit)
	if err != nil {
		return err
	}

	c.printRecords(recs)
	return nil
}

// cmdGame prints recent messages scoped to one game.
func (c *CLI) cmdGame(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: game <name> [count]")
	}

	limit := 20
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid count: %s", args[1])
		}
		limit = n
	}

	recs, err := c.store.Recent(args[0], 0, limit)
	if err != nil {
		return err
	}

	c.printRecords(recs)
	return nil
}

func (c *CLI) printRecords(recs []db.MessageRecord) {
	if len(recs) == 0 {
		fmt.Println("No messages logged.")
		return
	}

	fmt.Println()
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Time", "Remote", "Kind", "Game", "Rendering"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)

	for _, rec := range recs {
		tw.Append([]string{
			rec.ReceivedAt.Format("15:04:05"),
			rec.Remote,
			rec.Kind,
			rec.Game,
			truncate(rec.Rendering, 60),
		})
	}

	tw.Render()
	fmt.Println()
}

// cmdDecode decodes one raw wire line and prints the result.
func (c *CLI) cmdDecode(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: decode <line>")
	}

	line := strings.Join(args, " ")
	m := message.Decode(line)
	if m == nil {
		return fmt.Errorf("line did not decode to a known message")
	}

	c.printMessage(m)
	return nil
}

// cmdRender parses a log rendering back into a message.
func (c *CLI) cmdRender(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: render <rendering>")
	}

	m, err := message.ParseRendering(strings.Join(args, " "))
	if err != nil {
		return err
	}

	c.printMessage(m)
	return nil
}

func (c *CLI) printMessage(m message.Message) {
	fmt.Printf("\n  Type:        %d (%s)\n", m.Type(), message.KindName(m.Type()))
	if gm, ok := m.(message.ForGame); ok {
		fmt.Printf("  Game:        %s\n", gm.GameName())
	}
	fmt.Printf("  Min version: %d\n", m.MinimumVersion())
	fmt.Printf("  Wire line:   %s\n", m.Command())
	fmt.Printf("  Rendering:   %s\n", m.String())
	fmt.Println()
}

func (c *CLI) cmdSetConfig(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: setconfig <key> <value>")
	}

	key := args[0]
	value := coerceValue(strings.Join(args[1:], " "))

	if err := c.cfg.UpdateField(key, value); err != nil {
		return err
	}

	if err := c.cfg.Save(); err != nil {
		return err
	}

	c.eventBus.Emit(ctx, events.Event{
		Type:    events.EventConfigChanged,
		Source:  "cli",
		Payload: events.ConfigChangedPayload{Key: key, Value: value},
	})

	log.Info().Str("key", key).Msg("config updated from CLI")
	fmt.Printf("Config updated: %s = %v\n", key, value)
	return nil
}

// coerceValue converts numeric and boolean strings so they land in the
// config's typed fields.
func coerceValue(s string) interface{} {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// lineReader is a simple cross-platform line reader.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader() *lineReader {
	return &lineReader{scanner: bufio.NewScanner(os.Stdin)}
}

func (lr *lineReader) ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return lr.scanner.Text(), nil
}

func (lr *lineReader) Close() error {
	return nil
}
