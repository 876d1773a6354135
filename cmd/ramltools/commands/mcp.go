package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/ramltools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: ramltools mcp\n\n")
		Writef(output, "Run an MCP (Model Context Protocol) server over stdio, exposing\n")
		Writef(output, "the parse and tokens tools to MCP clients.\n\n")
		Writef(output, "Defaults are configurable via RAMLTOOLS_* environment variables;\n")
		Writef(output, "see the server instructions reported to the client for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command: it serves MCP over stdio until the
// client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
