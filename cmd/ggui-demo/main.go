// Command ggui-demo wires runtime.Driver to the widget catalogue so the
// render core can be exercised end to end: construct the tree, run the main
// loop, quit from the switch widget.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ggui/backend"
	"ggui/color"
	"ggui/runtime"
	"ggui/style"
	"ggui/widget"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		transport      string
		wsAddr         string
		handshakeDir   string
		logPath        string
		publicTunnel   bool
		ngrokAuthtoken string
	)

	cmd := &cobra.Command{
		Use:   "ggui-demo",
		Short: "Run the GGUI reference demo: list, progress bar, text field, switch, canvas",
		RunE: func(cmd *cobra.Command, args []string) error {
			be, cleanup, err := resolveBackend(transport, wsAddr, handshakeDir)
			if err != nil {
				return err
			}
			defer cleanup()

			opts := runtime.Options{
				Backend:        be,
				LogPath:        logPath,
				PublicTunnel:   publicTunnel,
				NgrokAuthtoken: ngrokAuthtoken,
			}
			return runDemo(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&transport, "transport", "local", "terminal transport: local, tcp, or websocket")
	flags.StringVar(&wsAddr, "ws-addr", ":7890", "listen address for --transport websocket")
	flags.StringVar(&handshakeDir, "handshake-dir", ".", "directory to write the handshake file for --transport tcp")
	flags.StringVar(&logPath, "log", "ggui-demo.log", "report() log file path")
	flags.BoolVar(&publicTunnel, "tunnel", false, "expose the websocket transport publicly via ngrok (requires --transport websocket)")
	flags.StringVar(&ngrokAuthtoken, "ngrok-authtoken", "", "ngrok authtoken for --tunnel")

	return cmd
}

func resolveBackend(transport, wsAddr, handshakeDir string) (backend.TerminalBackend, func(), error) {
	switch transport {
	case "", "local":
		return backend.NewLocal(), func() {}, nil
	case "tcp":
		rb, err := backend.NewRemote(handshakeDir, 80, 24)
		if err != nil {
			return nil, nil, fmt.Errorf("ggui-demo: %w", err)
		}
		return rb, func() {}, nil
	case "websocket":
		ws := backend.NewWebSocket(wsAddr, 80, 24)
		return ws, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("ggui-demo: unknown --transport %q (want local, tcp, or websocket)", transport)
	}
}

// runDemo builds every widget up front and links them into the root's
// style chain via style.Childs, then hands the whole chain to runtime.Ggui,
// which blocks in the main loop until the quit switch is toggled off.
// Building the tree before the chain is embedded means the first frame
// already shows the full layout — no pause/resume batch is needed for
// startup composition.
func runDemo(opts runtime.Options) error {
	list := widget.NewList([]string{"alpha", "beta", "gamma", "delta"}, 20, 6,
		style.Position(1, 1, 0))

	bar := widget.NewProgressBar(20, style.Position(1, 8, 0))
	bar.SetPercent(0.35)

	field := widget.NewTextField(20, style.Position(1, 10, 0))

	sw := widget.NewSwitch(style.Position(1, 12, 0))
	sw.OnToggle(func(on bool) {
		if !on {
			runtime.Exit()
		}
	})

	canvas := widget.NewCanvas(10, 4, style.Position(24, 1, 0))
	for i := 0; i < 10; i++ {
		canvas.Set(i, 0, color.Ascii('-', color.Opaque(color.RGB{R: 200, G: 200, B: 200}), color.Transparent))
	}

	root := style.New(
		style.Width(style.Px(60)),
		style.Height(style.Px(20)),
		style.EnableBorder(true),
		style.Title("ggui-demo"),
		style.BackgroundColor(color.Opaque(color.RGB{R: 20, G: 20, B: 24})),
		style.Childs(list.Element, bar.Element, field.Element, sw.Element, canvas.Element),
	)

	if opts.PublicTunnel {
		tunnelCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		tunnel, err := backend.StartTunnel(tunnelCtx, opts.NgrokAuthtoken, nil)
		if err == nil {
			defer tunnel.Close()
			defer func() { fmt.Fprintln(os.Stderr, "public tunnel:", tunnel.URL()) }()
		} else {
			fmt.Fprintln(os.Stderr, "tunnel unavailable:", err)
		}
	}

	return runtime.Ggui(root, opts)
}
