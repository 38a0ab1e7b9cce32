package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nstehr/vimy/vimy-fuzzy/agent"
	"github.com/nstehr/vimy/vimy-fuzzy/ipc"
	"github.com/nstehr/vimy/vimy-fuzzy/objectvalue"
)

var serveFlags struct {
	socketPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve goal scoring on a unix socket",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.socketPath, "socket", "", "socket path (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), banner)

	socketPath := cfg.SocketPath
	if serveFlags.socketPath != "" {
		socketPath = serveFlags.socketPath
	}

	values, closeStore, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	defer closeStore()

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		return fmt.Errorf("clean up socket %s: %w", socketPath, err)
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath, "store", cfg.ObjectStore)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go acceptLoop(ctx, listener, values)

	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}

func acceptLoop(ctx context.Context, listener net.Listener, values objectvalue.Store) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				slog.Error("failed to accept connection", "error", err)
				continue
			}
		}
		s := agent.NewSession(ipc.NewConnection(conn, nil), cfg.Params(), values)
		s.Register()
		slog.Info("new connection accepted", "session", s.ID)
		go s.Conn.ReadLoop()
	}
}
